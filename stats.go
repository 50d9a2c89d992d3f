package main

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"neon-snake/game"
)

// GroupSize is how many single records are folded into one group record
const GroupSize = 100

// SessionStats keeps every session played by this process. Old single
// records are folded into groups so long autopilot runs stay small.
type SessionStats struct {
	Games []GameRecord
}

// GameRecord is one session, or a group of sessions when GamesCount > 1
type GameRecord struct {
	ID               uuid.UUID
	StartTime        time.Time
	EndTime          time.Time
	Score            int
	Level            int
	Ticks            int
	Collision        string
	CompressionIndex int // 0 for single sessions
	GamesCount       int
	AverageScore     float64
	MaxScore         int
	MinScore         int
	AverageDuration  float64
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		Games: make([]GameRecord, 0),
	}
}

// Record implements game.Recorder
func (s *SessionStats) Record(sum game.Summary) {
	duration := sum.EndTime.Sub(sum.StartTime).Seconds()
	s.Games = append(s.Games, GameRecord{
		ID:              sum.ID,
		StartTime:       sum.StartTime,
		EndTime:         sum.EndTime,
		Score:           sum.Score,
		Level:           sum.Level,
		Ticks:           sum.Ticks,
		Collision:       sum.Collision.String(),
		GamesCount:      1,
		AverageScore:    float64(sum.Score),
		MaxScore:        sum.Score,
		MinScore:        sum.Score,
		AverageDuration: duration,
	})
	s.groupGames()
}

// groupGames folds GroupSize records of the same compression level into one
func (s *SessionStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex > s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		var start, count int
		for i, g := range s.Games {
			if g.CompressionIndex == level {
				if count == 0 {
					start = i
				}
				count++
			}
		}
		if count < GroupSize {
			return
		}

		group := s.Games[start : start+GroupSize]
		merged := GameRecord{
			StartTime:        group[0].StartTime,
			EndTime:          group[0].EndTime,
			CompressionIndex: level + 1,
			MaxScore:         group[0].MaxScore,
			MinScore:         group[0].MinScore,
		}
		var totalScore, totalDuration float64
		for _, g := range group {
			if g.MaxScore > merged.MaxScore {
				merged.MaxScore = g.MaxScore
			}
			if g.MinScore < merged.MinScore {
				merged.MinScore = g.MinScore
			}
			if g.StartTime.Before(merged.StartTime) {
				merged.StartTime = g.StartTime
			}
			if g.EndTime.After(merged.EndTime) {
				merged.EndTime = g.EndTime
			}
			totalScore += g.AverageScore * float64(g.GamesCount)
			totalDuration += g.AverageDuration * float64(g.GamesCount)
			merged.GamesCount += g.GamesCount
		}
		merged.AverageScore = totalScore / float64(merged.GamesCount)
		merged.AverageDuration = totalDuration / float64(merged.GamesCount)
		merged.Score = merged.MaxScore

		rest := make([]GameRecord, 0, len(s.Games)-GroupSize+1)
		rest = append(rest, s.Games[:start]...)
		rest = append(rest, merged)
		rest = append(rest, s.Games[start+GroupSize:]...)
		s.Games = rest
	}
}

// Best implements game.Recorder
func (s *SessionStats) Best() int {
	best := 0
	for _, g := range s.Games {
		if g.MaxScore > best {
			best = g.MaxScore
		}
	}
	return best
}

func (s *SessionStats) GamesPlayed() int {
	total := 0
	for _, g := range s.Games {
		total += g.GamesCount
	}
	return total
}

func (s *SessionStats) AverageScore() float64 {
	var total float64
	var games int
	for _, g := range s.Games {
		total += g.AverageScore * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (s *SessionStats) AverageDuration() float64 {
	var total float64
	var games int
	for _, g := range s.Games {
		total += g.AverageDuration * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}
