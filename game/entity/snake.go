package entity

import (
	"grid-snake/game/types"
)

// Snake is an ordered run of cells. The tail is body[0] and the head is the
// last element; the body never becomes empty.
type Snake struct {
	grid        types.Grid
	body        []types.Point
	growPending bool
}

func NewSnake(grid types.Grid, startPos types.Point) *Snake {
	return &Snake{
		grid: grid,
		body: []types.Point{startPos},
	}
}

// Move pushes newHead and drops the tail, unless a grow is pending, in which
// case the tail is kept once and the body ends up one cell longer.
func (s *Snake) Move(newHead types.Point) {
	s.body = append(s.body, newHead)
	if s.growPending {
		s.growPending = false
		return
	}
	s.RemoveTail()
}

// MoveDirection advances the head one cell in dir, wrapping at the grid edges
func (s *Snake) MoveDirection(dir types.Direction) {
	dx, dy := dir.Delta()
	next := s.GetHead().Add(dx*s.grid.CellSize, dy*s.grid.CellSize)
	s.Move(s.grid.Wrap(next))
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 1 {
		s.body = s.body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.body[len(s.body)-1]
}

// HasSelfCollision reports whether the head shares a cell with any other
// segment of the current body.
func (s *Snake) HasSelfCollision() bool {
	head := s.GetHead()
	for _, part := range s.body[:len(s.body)-1] {
		if part == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// Grow keeps the tail on the next move only
func (s *Snake) Grow() {
	s.growPending = true
}

func (s *Snake) GrowPending() bool {
	return s.growPending
}

// Reset discards the body and leaves a single cell at origin
func (s *Snake) Reset(origin types.Point) {
	s.body = []types.Point{origin}
	s.growPending = false
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, tail first
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}
