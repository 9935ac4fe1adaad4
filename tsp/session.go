package tsp

import "time"

// Session is the run/result tracker of one problem instance: the scratch
// current tour, the best tour found so far, its length and run counters.
//
// The current tour is mutated only by the active search call and holds a valid
// tour only at permutation leaves; read results through BestTour / BestLength.
// A Session is not safe for concurrent use.
type Session struct {
	current []int
	best    []int
	visited []bool // nearest-neighbor scratch

	bestLen float64
	perms   uint64
	method  Method
	elapsed time.Duration
	done    bool
}

// NewSession returns a reset session for n cities.
func NewSession(n int) *Session {
	if n < 0 {
		n = 0
	}
	s := &Session{
		current: make([]int, n),
		best:    make([]int, n),
		visited: make([]bool, n),
	}
	s.Reset()
	return s
}

// Len returns the number of cities the session tracks.
func (s *Session) Len() int { return len(s.current) }

// Reset restores both tours to the identity permutation, clears the best
// length to UnknownLength and zeroes the counters.
//
// Complexity: O(n).
func (s *Session) Reset() {
	fillIdentity(s.current)
	fillIdentity(s.best)
	clear(s.visited)
	s.bestLen = UnknownLength
	s.perms = 0
	s.method = MethodNone
	s.elapsed = 0
	s.done = false
}

// BestLength returns the best open-path length and true, or UnknownLength and
// false when no run has completed since the last Reset.
func (s *Session) BestLength() (float64, bool) {
	if !s.done {
		return UnknownLength, false
	}
	return s.bestLen, true
}

// BestTour returns a copy of the best tour. Before any run it is the identity.
func (s *Session) BestTour() []int { return CopyTour(s.best) }

// BestTourString formats the best tour as space-separated indices, "0 3 1 2".
func (s *Session) BestTourString() string { return FormatTour(s.best) }

// Permutations returns how many complete tours the last run evaluated.
func (s *Session) Permutations() uint64 { return s.perms }

// Done reports whether a run has completed since the last Reset.
func (s *Session) Done() bool { return s.done }

// Result returns a snapshot of the last completed run.
// Errors: ErrPrematureRead.
func (s *Session) Result() (Result, error) {
	if !s.done {
		return Result{}, ErrPrematureRead
	}
	return Result{
		Method:       s.method,
		Tour:         CopyTour(s.best),
		Length:       s.bestLen,
		Elapsed:      s.elapsed,
		Permutations: s.perms,
	}, nil
}

// offer records tour as the new best iff length is strictly smaller. The first
// tour of a run is always recorded, so a completed run never reports the
// UnknownLength sentinel's identity tour by accident.
func (s *Session) offer(tour []int, length float64, first bool) {
	if first || length < s.bestLen {
		copy(s.best, tour)
		s.bestLen = length
	}
}

// finish marks the run complete.
func (s *Session) finish(m Method, elapsed time.Duration) {
	s.method = m
	s.elapsed = elapsed
	s.done = true
}
