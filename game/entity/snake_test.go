package entity

import (
	"testing"

	"grid-snake/game/types"
)

var testGrid = types.Grid{Width: 600, Height: 600, CellSize: 30}

// scripted returns values from a fixed list, cycling when exhausted
type scripted struct {
	values []int
	i      int
}

func (s *scripted) Intn(n int) int {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v % n
}

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(testGrid, types.Point{})
	s.Move(types.Point{X: 30})
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if h := s.GetHead(); h != (types.Point{X: 30}) {
		t.Errorf("head = %v", h)
	}
}

func TestGrowAppliesToNextMoveOnly(t *testing.T) {
	s := NewSnake(testGrid, types.Point{})
	s.Grow()
	if s.Len() != 1 {
		t.Fatalf("grow changed length before moving: %d", s.Len())
	}

	s.MoveDirection(types.Right)
	if s.Len() != 2 {
		t.Fatalf("len after grow+move = %d, want 2", s.Len())
	}
	if s.GrowPending() {
		t.Error("grow should be consumed by one move")
	}

	s.MoveDirection(types.Right)
	if s.Len() != 2 {
		t.Errorf("len after plain move = %d, want 2", s.Len())
	}
	body := s.Body()
	want := []types.Point{{X: 30}, {X: 60}}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
}

func TestMoveDirectionWraps(t *testing.T) {
	tests := []struct {
		name  string
		start types.Point
		dir   types.Direction
		want  types.Point
	}{
		{"right edge", types.Point{X: 570, Y: 60}, types.Right, types.Point{X: 0, Y: 60}},
		{"left edge", types.Point{X: 0, Y: 60}, types.Left, types.Point{X: 570, Y: 60}},
		{"bottom edge", types.Point{X: 60, Y: 570}, types.Down, types.Point{X: 60, Y: 0}},
		{"top edge", types.Point{X: 60, Y: 0}, types.Up, types.Point{X: 60, Y: 570}},
		{"interior", types.Point{X: 60, Y: 60}, types.Up, types.Point{X: 60, Y: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(testGrid, tt.start)
			s.MoveDirection(tt.dir)
			if got := s.GetHead(); got != tt.want {
				t.Errorf("head = %v, want %v", got, tt.want)
			}
			if s.Len() != 1 {
				t.Errorf("wrap changed length to %d", s.Len())
			}
		})
	}
}

func TestHasSelfCollision(t *testing.T) {
	// Grow a five cell snake heading right along the top row
	s := NewSnake(testGrid, types.Point{X: 0, Y: 30})
	for i := 0; i < 4; i++ {
		s.Grow()
		s.MoveDirection(types.Right)
	}
	if s.Len() != 5 {
		t.Fatalf("len = %d, want 5", s.Len())
	}
	if s.HasSelfCollision() {
		t.Fatal("straight body should not collide")
	}

	// Curl back: down, left, up lands on a body cell
	s.MoveDirection(types.Down)
	s.MoveDirection(types.Left)
	if s.HasSelfCollision() {
		t.Fatal("collided before re-entering the body")
	}
	s.MoveDirection(types.Up)
	if !s.HasSelfCollision() {
		t.Errorf("head %v re-entered body %v without collision", s.GetHead(), s.Body())
	}
}

func TestSelfCollisionUsesPostMoveBody(t *testing.T) {
	// A 4 cell square loop: the head moves into the cell the tail just vacated
	s := NewSnake(testGrid, types.Point{X: 30, Y: 30})
	s.Grow()
	s.MoveDirection(types.Right) // (60,30)
	s.Grow()
	s.MoveDirection(types.Down) // (60,60)
	s.Grow()
	s.MoveDirection(types.Left) // (30,60)
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}

	s.MoveDirection(types.Up) // back onto (30,30), which was the tail
	if s.HasSelfCollision() {
		t.Errorf("chasing the tail must not collide: body %v", s.Body())
	}
}

func TestReset(t *testing.T) {
	s := NewSnake(testGrid, types.Point{})
	s.Grow()
	s.MoveDirection(types.Down)
	s.Grow()
	s.Reset(types.Point{X: 90, Y: 90})

	if s.Len() != 1 || s.GetHead() != (types.Point{X: 90, Y: 90}) {
		t.Errorf("after reset body = %v", s.Body())
	}
	s.MoveDirection(types.Right)
	if s.Len() != 1 {
		t.Error("reset should clear a pending grow")
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(testGrid, types.Point{})
	body := s.Body()
	body[0] = types.Point{X: 300}
	if s.GetHead() != (types.Point{}) {
		t.Error("mutating Body() leaked into the snake")
	}
}

func TestFoodRandomizeIsGridAligned(t *testing.T) {
	f := NewFood(types.Point{})
	rng := &scripted{values: []int{3, 7, 19, 0, 25}}
	for i := 0; i < 10; i++ {
		f.Randomize(testGrid, rng)
		p := f.Position
		if p.X%30 != 0 || p.Y%30 != 0 {
			t.Fatalf("food %v is not grid aligned", p)
		}
		if p.X < 0 || p.X >= 600 || p.Y < 0 || p.Y >= 600 {
			t.Fatalf("food %v is outside the grid", p)
		}
	}
}

func TestFoodRandomizeDrawsColumnThenRow(t *testing.T) {
	f := NewFood(types.Point{})
	f.Randomize(testGrid, &scripted{values: []int{4, 9}})
	if f.Position != (types.Point{X: 120, Y: 270}) {
		t.Errorf("position = %v", f.Position)
	}
}

func TestFoodIsEatenBy(t *testing.T) {
	s := NewSnake(testGrid, types.Point{X: 60, Y: 0})
	f := NewFood(types.Point{X: 90, Y: 0})
	if f.IsEatenBy(s) {
		t.Fatal("food eaten before the head reached it")
	}
	s.MoveDirection(types.Right)
	if !f.IsEatenBy(s) {
		t.Error("food not eaten when the head is on it")
	}
}
