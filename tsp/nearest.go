package tsp

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/tourlab/cityset"
)

// NearestNeighbor builds one tour greedily from a uniformly random start city
// drawn from r, then stores it as both current and best tour of s.
//
// The start city is drawn after the timer starts, so the returned duration
// covers the whole construction. r==nil uses the default deterministic stream.
//
// Errors: ErrDimensionMismatch when tbl is nil or tbl.Len() != s.Len().
//
// Complexity: O(n²) time, no allocation.
func NearestNeighbor(tbl *cityset.Table, s *Session, r *rand.Rand) (time.Duration, error) {
	if tbl == nil || s == nil || tbl.Len() != s.Len() {
		return 0, ErrDimensionMismatch
	}
	if r == nil {
		r = defaultRand()
	}
	s.Reset()

	var start = time.Now()
	s.buildNearest(tbl, r.Intn(s.Len()))
	var elapsed = time.Since(start)

	s.finish(MethodNearestNeighbor, elapsed)
	return elapsed, nil
}

// NearestNeighborFrom is NearestNeighbor with a fixed start city.
//
// Errors: ErrDimensionMismatch, ErrIndexOutOfRange.
func NearestNeighborFrom(tbl *cityset.Table, s *Session, first int) (time.Duration, error) {
	if tbl == nil || s == nil || tbl.Len() != s.Len() {
		return 0, ErrDimensionMismatch
	}
	if first < 0 || first >= s.Len() {
		return 0, fmt.Errorf("NearestNeighborFrom(%d): %w", first, ErrIndexOutOfRange)
	}
	s.Reset()

	var start = time.Now()
	s.buildNearest(tbl, first)
	var elapsed = time.Since(start)

	s.finish(MethodNearestNeighbor, elapsed)
	return elapsed, nil
}

// buildNearest fills current with the greedy tour from first, copies it to
// best and stores its length. Expects a freshly reset session.
func (s *Session) buildNearest(tbl *cityset.Table, first int) {
	var (
		n   = s.Len()
		cur = first
		k   int
	)
	s.visited[cur] = true
	s.current[0] = cur
	for k = 1; k < n; k++ {
		cur = nearestUnvisited(tbl.Row(cur), s.visited)
		s.visited[cur] = true
		s.current[k] = cur
	}

	copy(s.best, s.current)
	s.bestLen = pathLength(tbl, s.best)
	s.perms = 1
}

// nearestUnvisited scans row left to right and keeps the first strictly
// smaller distance among unvisited cities, so ties resolve to the lowest index.
// The first unvisited city is always taken, even at +Inf distance.
// Returns -1 only when every city is visited.
func nearestUnvisited(row []float64, visited []bool) int {
	var (
		best    = -1
		minDist = math.MaxFloat64
		i       int
	)
	for i = range row {
		if visited[i] {
			continue
		}
		if best < 0 || row[i] < minDist {
			minDist = row[i]
			best = i
		}
	}
	return best
}
