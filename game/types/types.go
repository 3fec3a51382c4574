package types

import "time"

// Grid represents the playfield in pixels, partitioned into square cells
type Grid struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	CellSize int `json:"cellSize"`
}

// Point is a grid-aligned pixel coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Columns returns the number of cells along the x axis
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells along the y axis
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cell returns the pixel coordinate of the cell at column col, row row
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Wrap relocates a point that left the grid to the opposite edge.
// A coordinate at or past the far bound becomes 0, a negative one becomes
// the last cell on that axis. Points inside the grid are returned unchanged.
func (g Grid) Wrap(p Point) Point {
	switch {
	case p.X >= g.Width:
		p.X = 0
	case p.X < 0:
		p.X = g.Width - g.CellSize
	}
	switch {
	case p.Y >= g.Height:
		p.Y = 0
	case p.Y < 0:
		p.Y = g.Height - g.CellSize
	}
	return p
}

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y, W, H int
}

// CellInset is the margin between a drawn entity and its cell origin
const CellInset = 2

// Inset returns the filled rectangle an entity at p occupies when drawn.
// The inset leaves a visible gap between neighbouring cells.
func (g Grid) Inset(p Point) Rect {
	return Rect{
		X: p.X + CellInset,
		Y: p.Y + CellInset,
		W: g.CellSize - CellInset,
		H: g.CellSize - CellInset,
	}
}

// Game constants
const (
	DefaultWidth    = 600
	DefaultHeight   = 600
	DefaultCellSize = 30

	DefaultSpeed = 250 * time.Millisecond // Time between ticks
	MinSpeed     = 50 * time.Millisecond
	MaxSpeed     = time.Second
	SpeedStep    = 25 * time.Millisecond

	HighScoreKey = "high-score"
)

// Color is an RGB triple shared by every frontend
type Color struct {
	R, G, B uint8
}

var (
	SnakeColor = Color{R: 0x16, G: 0xA3, B: 0x4A}
	FoodColor  = Color{R: 0xDC, G: 0x26, B: 0x26}
)
