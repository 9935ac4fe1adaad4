package tsp

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/tourlab/cityset"
	"github.com/katalvlaran/tourlab/internal/rng"
)

// Problem is one TSP instance: a fixed city set, its session state and the
// random stream used to pick nearest-neighbor start cities.
//
// A Problem is not safe for concurrent use; create one per goroutine.
type Problem struct {
	set     *cityset.Set
	session *Session
	rand    *rand.Rand
}

// New generates n random cities inside width×height and returns a Problem
// with a reset session.
//
// City coordinates and start-city choices come from two streams derived from
// the parent RNG (WithSeed / WithRand), so a fixed seed reproduces both.
//
// Errors: ErrInvalidDimensions.
func New(n int, width, height float64, opts ...Option) (*Problem, error) {
	var (
		o      = buildOptions(opts)
		parent = o.parentRand()
	)
	set, err := cityset.New(n, width, height,
		cityset.WithMargin(o.Margin),
		cityset.WithRand(rng.Derive(parent, streamCities)),
	)
	if err != nil {
		return nil, err
	}

	return &Problem{
		set:     set,
		session: NewSession(set.Len()),
		rand:    rng.Derive(parent, streamStart),
	}, nil
}

// NewFromSet wraps an existing city set. Only Seed / Rand options apply.
func NewFromSet(set *cityset.Set, opts ...Option) (*Problem, error) {
	if set == nil {
		return nil, ErrInvalidDimensions
	}
	var o = buildOptions(opts)

	return &Problem{
		set:     set,
		session: NewSession(set.Len()),
		rand:    rng.Derive(o.parentRand(), streamStart),
	}, nil
}

// Len returns the number of cities.
func (p *Problem) Len() int { return p.set.Len() }

// Cities returns the underlying read-only city set.
func (p *Problem) Cities() *cityset.Set { return p.set }

// CityCoordinate returns the coordinates of city i.
// Errors: ErrIndexOutOfRange.
func (p *Problem) CityCoordinate(i int) (cityset.Point, error) {
	return p.set.City(i)
}

// RunExhaustive runs the exhaustive search and returns its elapsed time.
func (p *Problem) RunExhaustive() time.Duration {
	// Table and session are sized from the same set; Exhaustive cannot fail.
	d, _ := Exhaustive(p.set.Table(), p.session)
	return d
}

// RunNearestNeighbor runs the heuristic from a random start city and returns
// its elapsed time.
func (p *Problem) RunNearestNeighbor() time.Duration {
	d, _ := NearestNeighbor(p.set.Table(), p.session, p.rand)
	return d
}

// BestLength returns the best length of the last run, or (UnknownLength, false).
func (p *Problem) BestLength() (float64, bool) { return p.session.BestLength() }

// BestTourIndices returns a copy of the best tour.
func (p *Problem) BestTourIndices() []int { return p.session.BestTour() }

// BestTourString formats the best tour, e.g. "2 0 1 3".
func (p *Problem) BestTourString() string { return p.session.BestTourString() }

// Result returns a snapshot of the last completed run.
// Errors: ErrPrematureRead.
func (p *Problem) Result() (Result, error) { return p.session.Result() }

// Reset restores identity tours and clears the best length.
func (p *Problem) Reset() { p.session.Reset() }
