package types

import (
	"golang.org/x/exp/rand"
)

// Board defaults
const (
	DefaultWidth    = 600
	DefaultHeight   = 400
	DefaultCellSize = 20
)

// Cell is a grid-aligned pixel coordinate
type Cell struct {
	X, Y int
}

// Color is an RGBA colour shared by every renderer
type Color struct {
	R, G, B, A uint8
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the direction a snake can never turn to in one tick
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step of the direction in cell units
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Grid represents the board dimensions in pixels and the size of one cell
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

func DefaultGrid() Grid {
	return Grid{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
	}
}

// Cols is the number of aligned columns, counting a trailing partial cell
func (g Grid) Cols() int {
	return (g.Width + g.CellSize - 1) / g.CellSize
}

// Rows is the number of aligned rows, counting a trailing partial cell
func (g Grid) Rows() int {
	return (g.Height + g.CellSize - 1) / g.CellSize
}

func (g Grid) CellCount() int {
	return g.Cols() * g.Rows()
}

// InBounds reports whether c lies on the board
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// RandomCell picks a uniformly random grid-aligned cell
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.Cols()) * g.CellSize,
		Y: rng.Intn(g.Rows()) * g.CellSize,
	}
}

// Step moves c one cell in direction d without any bounds check
func (g Grid) Step(c Cell, d Direction) Cell {
	delta := d.Delta()
	return Cell{
		X: c.X + delta.X*g.CellSize,
		Y: c.Y + delta.Y*g.CellSize,
	}
}

// Center returns the pixel centre of c
func (g Grid) Center(c Cell) (float64, float64) {
	half := float64(g.CellSize) / 2
	return float64(c.X) + half, float64(c.Y) + half
}
