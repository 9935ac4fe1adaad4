package tsp

import (
	"math/rand"

	"github.com/katalvlaran/tourlab/cityset"
	"github.com/katalvlaran/tourlab/internal/rng"
)

// Stream ids for the two random sources a Problem derives from its parent RNG.
const (
	streamCities uint64 = iota + 1
	streamStart
)

// Options configure Problem construction.
type Options struct {
	// Seed selects the deterministic parent stream when Rand is nil.
	// 0 ⇒ the package default seed (same instance every time).
	Seed int64

	// Rand, when non-nil, is the parent stream; it is consumed during New only.
	Rand *rand.Rand

	// Margin is the inward inset of generated cities (see cityset.DefaultMargin).
	Margin float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{Margin: cityset.DefaultMargin}
}

// WithSeed selects a deterministic parent seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned parent stream.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithMargin sets the inward inset for generated cities.
func WithMargin(margin float64) Option {
	return func(o *Options) { o.Margin = margin }
}

func buildOptions(opts []Option) Options {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// parentRand resolves the parent stream: Rand verbatim, else FromSeed(Seed).
func (o Options) parentRand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rng.FromSeed(o.Seed)
}

func defaultRand() *rand.Rand { return rng.FromSeed(0) }
