package game

import (
	"fmt"

	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"
)

// Config holds everything needed to start a session
type Config struct {
	Grid          types.Grid
	StartHead     types.Cell
	StartDir      types.Direction
	StartLength   int
	BaseSpeed     int // ticks per second at level 1
	SpeedStep     int // ticks per second added per level
	BurstSize     int
	SafeFood      bool   // never spawn food on the snake
	Seed          uint64 // 0 picks a seed from the clock
	MaxSessions   int    // 0 means play until quit
	AutoRestartMs int    // pause on the game over screen when a pilot is driving
}

// startCell is the preferred column and row of the starting head
const startCell = 5

func DefaultConfig() Config {
	grid := types.DefaultGrid()
	return Config{
		Grid:          grid,
		StartHead:     StartHeadFor(grid, types.Right, 3),
		StartDir:      types.Right,
		StartLength:   3,
		BaseSpeed:     manager.DefaultBaseSpeed,
		SpeedStep:     manager.DefaultSpeedStep,
		BurstSize:     manager.BurstSize,
		AutoRestartMs: 500,
	}
}

// Validate rejects boards and speeds the game loop cannot run with
func (c Config) Validate() error {
	g := c.Grid
	if g.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", g.CellSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("board must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0 {
		return fmt.Errorf("board %dx%d is not a multiple of cell size %d", g.Width, g.Height, g.CellSize)
	}
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("base speed must be positive, got %d", c.BaseSpeed)
	}
	if c.SpeedStep < 0 {
		return fmt.Errorf("speed step must not be negative, got %d", c.SpeedStep)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("start length must be at least 1, got %d", c.StartLength)
	}
	if !c.StartDir.Valid() {
		return fmt.Errorf("invalid start direction %d", c.StartDir)
	}
	if !g.InBounds(c.StartHead) || c.StartHead.X%g.CellSize != 0 || c.StartHead.Y%g.CellSize != 0 {
		return fmt.Errorf("start head %v is not an aligned cell on the board", c.StartHead)
	}
	body := entity.NewSnake(c.StartHead, c.StartDir, c.StartLength, g.CellSize)
	for _, seg := range body.Segments() {
		if !g.InBounds(seg) {
			return fmt.Errorf("start body of %d cells from %v does not fit a %dx%d board",
				c.StartLength, c.StartHead, g.Cols(), g.Rows())
		}
	}
	return nil
}

// StartHeadFor picks the head cell for a snake of length cells moving in dir:
// cell (5,5) when the board allows, pulled in so the trailing body stays on
// the board. Boards too small for the body are left to Validate.
func StartHeadFor(g types.Grid, dir types.Direction, length int) types.Cell {
	if g.CellSize <= 0 || g.Width < g.CellSize || g.Height < g.CellSize {
		return types.Cell{}
	}
	col, row := startCell, startCell
	switch dir {
	case types.Right:
		col = clamp(col, length-1, g.Cols()-1)
	case types.Left:
		col = clamp(col, 0, g.Cols()-length)
	case types.Down:
		row = clamp(row, length-1, g.Rows()-1)
	case types.Up:
		row = clamp(row, 0, g.Rows()-length)
	}
	col = clamp(col, 0, g.Cols()-1)
	row = clamp(row, 0, g.Rows()-1)
	return types.Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
