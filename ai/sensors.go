package ai

import (
	"neon-snake/game"
	"neon-snake/game/types"
)

// NumStates is the size of the discrete state space: 9 food directions
// times 16 danger combinations
const NumStates = 9 * 16

// State is what the pilot sees around the head
type State struct {
	FoodDir      [2]int  // sign of food offset on each axis
	FoodDistance int     // Manhattan distance to food in cells
	Danger       [4]bool // next cell is fatal, indexed by types.Direction
}

// Index maps the state onto a row of the Q-table. Distance is not part of
// the key; it only shapes the reward.
func (s State) Index() int {
	idx := (s.FoodDir[0]+1)*3 + (s.FoodDir[1] + 1)
	for i, d := range s.Danger {
		if d {
			idx += 9 << i
		}
	}
	return idx
}

// Sense reads the pilot's view of the session
func Sense(s *game.Session) State {
	grid := s.Grid()
	snake := s.Snake()
	head := snake.Head()
	food := s.Food()

	var st State
	st.FoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}
	st.FoodDistance = (abs(food.X-head.X) + abs(food.Y-head.Y)) / grid.CellSize

	for d := types.Up; d <= types.Right; d++ {
		next := grid.Step(head, d)
		st.Danger[d] = !grid.InBounds(next) || snake.Occupies(next)
	}
	return st
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
