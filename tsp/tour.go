// Package tsp - tour utilities shared by the exhaustive and greedy solvers.
//
// Tours here are open paths: a permutation of {0..n-1} of length n with no
// closing vertex. Helpers:
//   - ValidateTour: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour slice.
//   - FormatTour: space-separated rendering for reports.
//   - fillIdentity: write [0..n-1] in place.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour checks that tour is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Errors: ErrDimensionMismatch (wrong length, out-of-range or duplicate index).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 1 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// FormatTour renders a tour as "0 3 1 2". An empty tour renders as "".
func FormatTour(tour []int) string {
	var (
		b strings.Builder
		i int
	)
	for i = range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	return b.String()
}

func fillIdentity(a []int) {
	var i int
	for i = range a {
		a[i] = i
	}
}
