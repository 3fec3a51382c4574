package game

import (
	"errors"
	"fmt"
	"time"

	"grid-snake/game/types"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the playfield geometry and timing of a game
type Config struct {
	Width    int           // Playfield width in pixels
	Height   int           // Playfield height in pixels
	CellSize int           // Edge length of one cell in pixels
	Speed    time.Duration // Time between ticks
	Seed     uint64        // Food RNG seed, 0 picks one from the clock
}

func DefaultConfig() Config {
	return Config{
		Width:    types.DefaultWidth,
		Height:   types.DefaultHeight,
		CellSize: types.DefaultCellSize,
		Speed:    types.DefaultSpeed,
	}
}

// Validate checks that the playfield divides evenly into cells and that the
// speed is within the supported range.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.Width <= 0 || c.Width%c.CellSize != 0 {
		return fmt.Errorf("%w: width %d is not a positive multiple of %d", ErrInvalidConfig, c.Width, c.CellSize)
	}
	if c.Height <= 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("%w: height %d is not a positive multiple of %d", ErrInvalidConfig, c.Height, c.CellSize)
	}
	if c.Speed < types.MinSpeed || c.Speed > types.MaxSpeed {
		return fmt.Errorf("%w: speed %v outside [%v, %v]", ErrInvalidConfig, c.Speed, types.MinSpeed, types.MaxSpeed)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}
