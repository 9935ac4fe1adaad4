package tsp

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/tourlab/cityset"
)

// UnknownLength is the best-length sentinel before any run has completed.
const UnknownLength = math.MaxFloat64

var (
	// ErrInvalidDimensions is returned by New for an unusable count or rectangle.
	ErrInvalidDimensions = cityset.ErrInvalidDimensions

	// ErrIndexOutOfRange is returned for a city index outside [0, n).
	ErrIndexOutOfRange = cityset.ErrIndexOutOfRange

	// ErrPrematureRead is returned by Result when no run has completed since
	// construction or the last Reset.
	ErrPrematureRead = errors.New("tsp: no completed run")

	// ErrDimensionMismatch is returned when a table, session or tour disagree
	// on the number of cities, or a tour is not a permutation of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// Method identifies the strategy that produced a result.
type Method int

const (
	// MethodNone marks a session with no completed run.
	MethodNone Method = iota
	// MethodExhaustive marks a result of the exhaustive search.
	MethodExhaustive
	// MethodNearestNeighbor marks a result of the nearest-neighbor heuristic.
	MethodNearestNeighbor
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodExhaustive:
		return "exhaustive"
	case MethodNearestNeighbor:
		return "nearest-neighbor"
	default:
		return "none"
	}
}

// Result is an independent snapshot of a completed run.
type Result struct {
	// Method is the strategy that produced Tour.
	Method Method

	// Tour is an open path: a permutation of 0..n-1, len(Tour) == n.
	Tour []int

	// Length is the open-path length of Tour.
	Length float64

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Permutations is the number of complete tours evaluated
	// (n! for Exhaustive, 1 for NearestNeighbor).
	Permutations uint64
}
