package entity

import (
	"neon-snake/game/types"
)

type Snake struct {
	Body     []types.Cell // head first
	cellSize int
}

// NewSnake lays out length segments trailing behind head, opposite to dir
func NewSnake(head types.Cell, dir types.Direction, length, cellSize int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Delta()
	body := make([]types.Cell, length)
	for i := range body {
		body[i] = types.Cell{
			X: head.X + back.X*cellSize*i,
			Y: head.Y + back.Y*cellSize*i,
		}
	}
	return &Snake{Body: body, cellSize: cellSize}
}

func NewSnakeFromBody(body []types.Cell, cellSize int) *Snake {
	b := make([]types.Cell, len(body))
	copy(b, body)
	return &Snake{Body: b, cellSize: cellSize}
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Cell {
	out := make([]types.Cell, len(s.Body))
	copy(out, s.Body)
	return out
}

// PeekNextHead returns where the head lands after one step in dir
func (s *Snake) PeekNextHead(dir types.Direction) types.Cell {
	d := dir.Delta()
	head := s.Head()
	return types.Cell{
		X: head.X + d.X*s.cellSize,
		Y: head.Y + d.Y*s.cellSize,
	}
}

// Advance prepends newHead and drops the tail unless the snake grew
func (s *Snake) Advance(newHead types.Cell, grew bool) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !grew {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// CollidesWithSelf reports whether cell overlaps the body behind the head.
// Call it after Advance so the vacated tail is already gone.
func (s *Snake) CollidesWithSelf(cell types.Cell) bool {
	for _, part := range s.Body[1:] {
		if part == cell {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head included, sits on cell
func (s *Snake) Occupies(cell types.Cell) bool {
	for _, part := range s.Body {
		if part == cell {
			return true
		}
	}
	return false
}
