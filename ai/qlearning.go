package ai

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"

	"neon-snake/game"
	"neon-snake/game/types"
)

const numActions = 4

// Learning parameters
const (
	DefaultLearningRate = 0.1
	DefaultDiscount     = 0.9
	DefaultEpsilon      = 0.1
)

// Rewards
const (
	rewardFood    = 1.0
	rewardDeath   = -1.0
	rewardCloser  = 0.5
	rewardFarther = -0.3
)

// QLearning is a tabular Q-learning pilot. The table lives for the process
// only and carries what it learned from one session into the next.
type QLearning struct {
	table        *tensor.Dense // [NumStates, numActions] float64
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	Seed         uint64

	rng       *rand.Rand
	lastState State
	hasLast   bool
}

// NewQLearning seeds exploration from seed, or from the clock when it is 0
func NewQLearning(seed uint64) *QLearning {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &QLearning{
		table:        tensor.New(tensor.WithShape(NumStates, numActions), tensor.Of(tensor.Float64)),
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
		Epsilon:      DefaultEpsilon,
		Seed:         seed,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Value returns Q(state, action)
func (q *QLearning) Value(s State, a types.Direction) float64 {
	v, err := q.table.At(s.Index(), int(a))
	if err != nil {
		panic(fmt.Sprintf("q-table read %d/%d: %v", s.Index(), a, err))
	}
	return v.(float64)
}

func (q *QLearning) setValue(s State, a types.Direction, v float64) {
	if err := q.table.SetAt(v, s.Index(), int(a)); err != nil {
		panic(fmt.Sprintf("q-table write %d/%d: %v", s.Index(), a, err))
	}
}

// GetAction picks an action epsilon-greedily
func (q *QLearning) GetAction(s State) types.Direction {
	if q.rng.Float64() < q.Epsilon {
		return types.Direction(q.rng.Intn(numActions))
	}
	return q.BestAction(s)
}

// BestAction returns the highest valued action, preferring safe ones on ties
func (q *QLearning) BestAction(s State) types.Direction {
	best := types.Up
	bestValue := math.Inf(-1)
	for a := types.Up; a <= types.Right; a++ {
		v := q.Value(s, a)
		if v > bestValue || (v == bestValue && s.Danger[best] && !s.Danger[a]) {
			best, bestValue = a, v
		}
	}
	return best
}

// Update applies one Q-learning step and returns the reward used
func (q *QLearning) Update(s State, a types.Direction, next State, ateFood, died bool) float64 {
	var reward float64
	switch {
	case died:
		reward = rewardDeath
	case ateFood:
		reward = rewardFood
	case next.FoodDistance < s.FoodDistance:
		reward = rewardCloser
	case next.FoodDistance > s.FoodDistance:
		reward = rewardFarther
	}

	maxNext := 0.0
	if !died {
		maxNext = math.Inf(-1)
		for b := types.Up; b <= types.Right; b++ {
			maxNext = math.Max(maxNext, q.Value(next, b))
		}
	}

	current := q.Value(s, a)
	q.setValue(s, a, current+q.LearningRate*(reward+q.Discount*maxNext-current))
	q.TotalReward += reward
	return reward
}

// Steer implements game.Pilot
func (q *QLearning) Steer(s *game.Session) (types.Direction, bool) {
	st := Sense(s)
	action := q.GetAction(st)
	q.lastState = st
	q.hasLast = true
	return action, true
}

// Observe implements game.Pilot. The session may have ignored a reversal,
// so the update is credited to the direction actually taken.
func (q *QLearning) Observe(s *game.Session, res game.TickResult) {
	if !q.hasLast {
		return
	}
	died := res.State == game.GameOver
	q.Update(q.lastState, s.Direction(), Sense(s), res.Grew, died)
	if died {
		q.GamesPlayed++
		q.hasLast = false
	}
}
