package entity

import (
	"grid-snake/game/types"
)

// Source is the random number source food placement draws from
type Source interface {
	Intn(n int) int
}

// Food is a single grid-aligned cell. It is free to land on the snake.
type Food struct {
	Position types.Point
}

func NewFood(pos types.Point) *Food {
	return &Food{Position: pos}
}

// Randomize moves the food to a uniformly chosen cell, drawing the column and
// row independently.
func (f *Food) Randomize(grid types.Grid, rng Source) {
	f.Position = grid.Cell(rng.Intn(grid.Columns()), rng.Intn(grid.Rows()))
}

func (f *Food) IsEatenBy(s *Snake) bool {
	return f.Position == s.GetHead()
}
