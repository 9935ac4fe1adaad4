package cityset

import "math/rand"

// DefaultMargin is the inward inset applied to both axes of the bounding
// rectangle; generated coordinates satisfy margin ≤ x < width.
const DefaultMargin = 120.0

// Options configure random city-set construction.
type Options struct {
	// Margin is the inward inset from the rectangle origin. Must be ≥ 0 and
	// strictly smaller than both width and height.
	Margin float64

	// Seed feeds a deterministic stream when Rand is nil. 0 ⇒ rng.DefaultSeed.
	Seed int64

	// Rand, when non-nil, is used verbatim and takes precedence over Seed.
	// It is not goroutine-safe; do not share it with concurrent constructors.
	Rand *rand.Rand
}

// Option mutates Options; applied in order by New.
type Option func(*Options)

// DefaultOptions returns Options with DefaultMargin and the default seed.
func DefaultOptions() Options {
	return Options{Margin: DefaultMargin}
}

// WithMargin sets the inward inset.
func WithMargin(margin float64) Option {
	return func(o *Options) { o.Margin = margin }
}

// WithSeed selects a deterministic coordinate stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}
