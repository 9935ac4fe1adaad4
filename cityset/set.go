// Package cityset holds the cities of one problem instance and their
// precomputed pairwise distance table.
//
// A Set is immutable after construction: coordinates and the Table are written
// only by New / NewFromPoints. Indices 0..n-1 are stable for the lifetime of
// the Set. Several Sets may be used concurrently; each owns its own data.
package cityset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourlab/internal/rng"
)

// Point is a 2-D city coordinate.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// String implements fmt.Stringer, e.g. "(120, 455.5)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Set is an ordered collection of cities plus their distance table.
type Set struct {
	cities []Point
	table  *Table
}

// New draws n cities uniformly at random inside the rectangle
// [margin, width) × [margin, height) and builds their distance table.
//
// Contract:
//   - n ≥ 1 (n == 1 is a valid, trivial instance).
//   - width and height finite, margin finite and ≥ 0, width > margin, height > margin.
//
// Errors: ErrInvalidDimensions (wrapped with the offending arguments), also
// when the rectangle is so large that a tour length could overflow.
//
// Determinism: with the same Seed (or the same Rand state) the layout is identical.
//
// Complexity: O(n²).
func New(n int, width, height float64, opts ...Option) (*Set, error) {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateBounds(n, width, height, o.Margin); err != nil {
		return nil, fmt.Errorf("cityset.New(n=%d, %gx%g, margin=%g): %w", n, width, height, o.Margin, err)
	}

	var r = o.Rand
	if r == nil {
		r = rng.FromSeed(o.Seed)
	}

	var (
		cities = make([]Point, n)
		spanX  = width - o.Margin
		spanY  = height - o.Margin
		i      int
	)
	for i = 0; i < n; i++ {
		cities[i] = Point{
			X: o.Margin + r.Float64()*spanX,
			Y: o.Margin + r.Float64()*spanY,
		}
	}

	tbl, err := buildTable(cities)
	if err != nil {
		return nil, fmt.Errorf("cityset.New(n=%d, %gx%g, margin=%g): %w", n, width, height, o.Margin, err)
	}
	return &Set{cities: cities, table: tbl}, nil
}

// NewFromPoints builds a Set from fixed coordinates. The input is copied.
//
// Errors: ErrInvalidDimensions on empty input, a NaN/Inf coordinate, or
// coordinates so far apart that a distance or a tour length would overflow.
func NewFromPoints(pts []Point) (*Set, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("cityset.NewFromPoints: no points: %w", ErrInvalidDimensions)
	}
	var i int
	for i = range pts {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, fmt.Errorf("cityset.NewFromPoints: point %d %v: %w", i, pts[i], ErrInvalidDimensions)
		}
	}
	cities := make([]Point, len(pts))
	copy(cities, pts)

	tbl, err := buildTable(cities)
	if err != nil {
		return nil, fmt.Errorf("cityset.NewFromPoints: %w", err)
	}
	return &Set{cities: cities, table: tbl}, nil
}

// validateBounds enforces the construction contract of New.
func validateBounds(n int, width, height, margin float64) error {
	if n < 1 {
		return ErrInvalidDimensions
	}
	if !finite(width) || !finite(height) || !finite(margin) || margin < 0 {
		return ErrInvalidDimensions
	}
	if width <= margin || height <= margin {
		return ErrInvalidDimensions
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Len returns the number of cities.
func (s *Set) Len() int { return len(s.cities) }

// City returns the coordinates of city i.
// Errors: ErrIndexOutOfRange.
func (s *Set) City(i int) (Point, error) {
	if i < 0 || i >= len(s.cities) {
		return Point{}, setErrorf(ctxCity, ErrIndexOutOfRange, i)
	}
	return s.cities[i], nil
}

// Distance returns the precomputed distance between cities i and j.
// Errors: ErrIndexOutOfRange.
func (s *Set) Distance(i, j int) (float64, error) {
	d, err := s.table.At(i, j)
	if err != nil {
		return 0, setErrorf(ctxDistance, err, i, j)
	}
	return d, nil
}

// Table exposes the read-only distance table.
func (s *Set) Table() *Table { return s.table }

// Points returns a copy of the coordinates in index order.
func (s *Set) Points() []Point {
	out := make([]Point, len(s.cities))
	copy(out, s.cities)
	return out
}
