// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package: fixtures, an independent brute-force oracle and numeric
// assertions.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/cityset"
	"github.com/katalvlaran/tourlab/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the absolute tolerance for length comparisons across strategies.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// frameW and frameH mirror the canvas the benchmark CLI uses.
	frameW = 900.0
	frameH = 700.0
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// squarePoints are the corners of a 10×10 square, counter-clockwise.
func squarePoints() []cityset.Point {
	return []cityset.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

// ripplePoints places n points on a slightly rippled circle to avoid ties.
func ripplePoints(n int) []cityset.Point {
	var (
		pts = make([]cityset.Point, n)
		i   int
		th  float64
		r   float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 100 + 2*float64((i*5)%7)
		pts[i] = cityset.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	return pts
}

// mustSet builds a city set from fixed points.
func mustSet(t testing.TB, pts []cityset.Point) *cityset.Set {
	t.Helper()
	s, err := cityset.NewFromPoints(pts)
	require.NoError(t, err)
	return s
}

// -----------------------------------------------------------------------------
// Oracle
// -----------------------------------------------------------------------------

// bruteForceMin enumerates all tours with a straightforward backtracking search
// (independent of package permute) and returns the minimum open-path length.
func bruteForceMin(t testing.TB, tbl *cityset.Table) float64 {
	t.Helper()
	var (
		n    = tbl.Len()
		used = make([]bool, n)
		path = make([]int, 0, n)
		best = math.Inf(1)
		rec  func()
	)
	rec = func() {
		if len(path) == n {
			l, err := tsp.PathLength(tbl, path)
			require.NoError(t, err)
			if l < best {
				best = l
			}
			return
		}
		var v int
		for v = 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			path = append(path, v)
			rec()
			path = path[:len(path)-1]
			used[v] = false
		}
	}
	rec()
	return best
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts that tour is a permutation of {0..n-1}.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n), "tour %v is not a permutation of 0..%d", tour, n-1)
}

// floatsClose checks relative/absolute closeness of two float64 values.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))

	return diff <= rel*den
}

// mustFloatClose asserts closeness of two float64 values under rel/abs tolerances.
func mustFloatClose(t *testing.T, got, want, rel, abs float64) {
	t.Helper()
	if !floatsClose(got, want, rel, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (rel=%.1e abs=%.1e)", got, want, rel, abs)
	}
}
