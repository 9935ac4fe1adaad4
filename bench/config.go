package bench

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Config.Validate and Run for unusable settings.
var ErrInvalidConfig = errors.New("bench: invalid config")

// MaxExhaustiveCities bounds MaxCities; 12! tours per instance is already
// minutes of work.
const MaxExhaustiveCities = 12

// Config describes one benchmark sweep.
type Config struct {
	MinCities  int     // smallest instance size, ≥ 1
	MaxCities  int     // largest instance size, ≤ MaxExhaustiveCities
	Iterations int     // fresh instances per size, ≥ 1
	Width      float64 // canvas width handed to tsp.New
	Height     float64 // canvas height handed to tsp.New
	Seed       int64   // parent seed; 0 ⇒ default stream
}

// DefaultConfig mirrors the classic sweep: sizes 4..10, 100 instances each,
// on a 900×700 canvas.
func DefaultConfig() Config {
	return Config{
		MinCities:  4,
		MaxCities:  10,
		Iterations: 100,
		Width:      900,
		Height:     700,
	}
}

// Validate checks the sweep bounds. Canvas dimensions are checked by tsp.New.
func (c Config) Validate() error {
	switch {
	case c.MinCities < 1:
		return fmt.Errorf("min cities %d < 1: %w", c.MinCities, ErrInvalidConfig)
	case c.MaxCities < c.MinCities:
		return fmt.Errorf("max cities %d < min cities %d: %w", c.MaxCities, c.MinCities, ErrInvalidConfig)
	case c.MaxCities > MaxExhaustiveCities:
		return fmt.Errorf("max cities %d > %d: %w", c.MaxCities, MaxExhaustiveCities, ErrInvalidConfig)
	case c.Iterations < 1:
		return fmt.Errorf("iterations %d < 1: %w", c.Iterations, ErrInvalidConfig)
	case math.IsNaN(c.Width) || math.IsNaN(c.Height):
		return fmt.Errorf("canvas %gx%g: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	return nil
}
