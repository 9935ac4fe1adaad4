// Package cityset - dense distance table.
//
// Table stores the N×N Euclidean distances of a city set in a flat row-major
// buffer (offset = i*n + j). It is filled exactly once by the owning Set and is
// read-only afterwards: At is the checked accessor, Row is the hot-path view
// used by the search loops.
//
// Complexity quicksheet:
//   - build: O(n²) with n(n-1)/2 Hypot calls; At/Row: O(1); String: O(n²).
package cityset

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// maxTourLength bounds the length of any tour built from one table.
const maxTourLength = math.MaxFloat64 / 2

// Table is a symmetric, zero-diagonal distance matrix.
type Table struct {
	n    int       // matrix order (number of cities)
	data []float64 // row-major storage, len == n*n
}

// buildTable computes the upper triangle with math.Hypot and mirrors it, so
// table[i][j] == table[j][i] holds bitwise and the diagonal stays 0.
//
// Every open path has n-1 edges, so (n-1)·max(d) bounds every tour length.
// That bound must stay below math.MaxFloat64/2, otherwise a sum could round
// to the "unknown" sentinel or overflow to +Inf.
//
// Errors: ErrInvalidDimensions when a distance is ±Inf/NaN or the bound overflows.
//
// Complexity: O(n²) time and space.
func buildTable(pts []Point) (*Table, error) {
	var (
		n       = len(pts)
		data    = make([]float64, n*n)
		i, j    int
		d       float64
		maxDist float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			if math.IsInf(d, 0) || math.IsNaN(d) {
				return nil, tableErrorf(ctxBuild, i, j, ErrInvalidDimensions)
			}
			if d > maxDist {
				maxDist = d
			}
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}
	if n > 1 && maxDist > maxTourLength/float64(n-1) {
		return nil, tableErrorf(ctxBuild, n, n, ErrInvalidDimensions)
	}
	return &Table{n: n, data: data}, nil
}

// Len returns the matrix order.
func (t *Table) Len() int { return t.n }

// At returns the distance between cities i and j.
// Errors: ErrIndexOutOfRange (wrapped with coordinates).
func (t *Table) At(i, j int) (float64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, tableErrorf(ctxAt, i, j, ErrIndexOutOfRange)
	}
	return t.data[i*t.n+j], nil
}

// Row returns row i as a view into the table's storage, or nil when i is out
// of range. The slice shares memory with the table and must not be modified.
//
// Complexity: O(1), no allocation.
func (t *Table) Row(i int) []float64 {
	if i < 0 || i >= t.n {
		return nil
	}
	var lo = i * t.n
	return t.data[lo : lo+t.n : lo+t.n]
}

// String renders the table one row per line, e.g. "[0, 10]\n[10, 0]\n".
func (t *Table) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < t.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < t.n; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(t.data[i*t.n+j], 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}
