// Package tsp - open-path length utilities.
//
// Length is always recomputed from the distance table edge by edge, never
// adjusted incrementally, so repeated evaluation of the same tour yields the
// same value bit for bit.
package tsp

import (
	"github.com/katalvlaran/tourlab/cityset"
)

// PathLength returns the open-path length of tour under tbl: the sum of
// tbl[tour[i]][tour[i+1]] for i in [0, len(tour)-1). No return edge is added.
//
// Contract:
//   - tour is a permutation of {0..n-1} where n == tbl.Len() (see ValidateTour).
//
// Errors: ErrDimensionMismatch.
//
// Complexity: O(n).
func PathLength(tbl *cityset.Table, tour []int) (float64, error) {
	if tbl == nil {
		return 0, ErrDimensionMismatch
	}
	if err := ValidateTour(tour, tbl.Len()); err != nil {
		return 0, err
	}
	return pathLength(tbl, tour), nil
}

// pathLength is the unchecked hot path used at every permutation leaf.
//
// Complexity: O(n), no allocation.
func pathLength(tbl *cityset.Table, tour []int) float64 {
	var (
		sum float64
		i   int
		L   = len(tour) - 1
	)
	for i = 0; i < L; i++ {
		sum += tbl.Row(tour[i])[tour[i+1]]
	}
	return sum
}
