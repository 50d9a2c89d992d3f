package game

import (
	"neon-snake/game/types"
)

var (
	White      = types.Color{R: 255, G: 255, B: 255, A: 255}
	Black      = types.Color{R: 0, G: 0, B: 0, A: 255}
	FoodColor  = types.Color{R: 255, G: 255, B: 0, A: 255}
	LevelColor = types.Color{R: 0, G: 255, B: 0, A: 255}
	AlertColor = types.Color{R: 255, G: 0, B: 0, A: 255}

	// NeonPalette colours the snake, cycling from the head
	NeonPalette = [4]types.Color{
		{R: 0, G: 255, B: 255, A: 255},
		{R: 0, G: 200, B: 255, A: 255},
		{R: 0, G: 150, B: 255, A: 255},
		{R: 50, G: 205, B: 255, A: 255},
	}

	// Background is the vertical gradient, top then bottom
	Background = [2]types.Color{
		{R: 10, G: 10, B: 30, A: 255},
		{R: 30, G: 0, B: 50, A: 255},
	}
)

// SegmentColor returns the palette colour of the i-th segment from the head
func SegmentColor(i int) types.Color {
	return NeonPalette[i%len(NeonPalette)]
}

// GradientAt blends the background for pixel row y of a board of the given height
func GradientAt(y, height int) types.Color {
	if height <= 0 {
		return Background[0]
	}
	ratio := float64(y) / float64(height)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
	}
	top, bottom := Background[0], Background[1]
	return types.Color{
		R: lerp(top.R, bottom.R),
		G: lerp(top.G, bottom.G),
		B: lerp(top.B, bottom.B),
		A: 255,
	}
}

type Segment struct {
	Cell  types.Cell
	Color types.Color
}

type ParticleView struct {
	X, Y   float64
	Radius float64
	Color  types.Color
}

// Frame is everything a renderer needs to draw one tick
type Frame struct {
	Grid      types.Grid
	Segments  []Segment // head first
	Food      types.Cell
	Particles []ParticleView
	Score     int
	Level     int
	Speed     int
	Direction types.Direction
}

// GameOverScreen is drawn once a session ends
type GameOverScreen struct {
	Score     int
	Level     int
	Best      int
	Collision string
}

// Frame snapshots the session for rendering
func (s *Session) Frame() Frame {
	body := s.snake.Body
	segments := make([]Segment, len(body))
	for i, c := range body {
		segments[i] = Segment{Cell: c, Color: SegmentColor(i)}
	}

	particles := s.particleMgr.Particles()
	views := make([]ParticleView, len(particles))
	for i, p := range particles {
		views[i] = ParticleView{X: p.X, Y: p.Y, Radius: p.Radius, Color: FoodColor}
	}

	return Frame{
		Grid:      s.grid,
		Segments:  segments,
		Food:      s.foodMgr.Food(),
		Particles: views,
		Score:     s.Score(),
		Level:     s.Level(),
		Speed:     s.Speed(),
		Direction: s.direction,
	}
}
