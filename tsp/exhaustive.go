package tsp

import (
	"time"

	"github.com/katalvlaran/tourlab/cityset"
	"github.com/katalvlaran/tourlab/permute"
)

// Exhaustive finds a globally shortest open path over all cities of tbl by
// evaluating every permutation of the session's current tour.
//
// Steps:
//  1. Reset s (identity tours, UnknownLength, zero counters).
//  2. Start the timer and run permute.Heap over the current tour.
//  3. At each leaf recompute the open-path length and replace the best tour
//     iff it is strictly shorter. The first leaf always seeds the best tour;
//     ties keep the earlier tour.
//
// The whole enumeration is timed; the returned duration is also recorded in
// the session. The result depends only on tbl, not on wall-clock or RNG state.
//
// Errors: ErrDimensionMismatch when tbl is nil or tbl.Len() != s.Len().
//
// Time complexity:  O(n!·n)
// Memory complexity: O(1) beyond the session
func Exhaustive(tbl *cityset.Table, s *Session) (time.Duration, error) {
	if tbl == nil || s == nil || tbl.Len() != s.Len() {
		return 0, ErrDimensionMismatch
	}
	s.Reset()

	var start = time.Now()
	permute.Heap(s.current, func(tour []int) {
		s.perms++
		s.offer(tour, pathLength(tbl, tour), s.perms == 1)
	})
	var elapsed = time.Since(start)

	s.finish(MethodExhaustive, elapsed)
	return elapsed, nil
}
