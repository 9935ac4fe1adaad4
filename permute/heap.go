package permute

import "math"

// Heap visits all len(a)! orderings of a. For len(a) ≤ 1 it visits exactly once.
//
// For a prefix of length size: recurse on size-1, then swap a[0]↔a[size-1]
// when size is odd, or a[i]↔a[size-1] when size is even, size times over.
func Heap(a []int, visit func([]int)) {
	if len(a) <= 1 {
		visit(a)
		return
	}
	heap(a, len(a), visit)
}

func heap(a []int, size int, visit func([]int)) {
	if size == 1 {
		visit(a)
		return
	}

	var i int
	for i = 0; i < size; i++ {
		heap(a, size-1, visit)
		if size%2 == 1 {
			a[0], a[size-1] = a[size-1], a[0]
		} else {
			a[i], a[size-1] = a[size-1], a[i]
		}
	}
}

// HeapIterative is Heap without recursion. c[s] holds the loop counter of the
// frame permuting the prefix of length s; descending into a child resets the
// child counters, returning from a child performs that frame's swap.
//
// Allocates one []int of len(a)+1 per call.
func HeapIterative(a []int, visit func([]int)) {
	var n = len(a)
	if n <= 1 {
		visit(a)
		return
	}

	var (
		c    = make([]int, n+1)
		size = n
		i    int
	)
	for {
		// Enter frames size..2 fresh, then the leaf.
		for ; size > 1; size-- {
			c[size] = 0
		}
		visit(a)

		// Unwind: swap in the frame we returned to, and either re-enter its
		// child or return further up.
		size = 2
		for {
			i = c[size]
			if size%2 == 1 {
				a[0], a[size-1] = a[size-1], a[0]
			} else {
				a[i], a[size-1] = a[size-1], a[i]
			}
			c[size]++
			if c[size] < size {
				break
			}
			if size == n {
				return
			}
			size++
		}
		size--
	}
}

// Count returns n!, the number of visits Heap makes for a slice of length n.
// Values n ≤ 1 yield 1; results beyond uint64 saturate at math.MaxUint64.
//
// Complexity: O(n).
func Count(n int) uint64 {
	var (
		f uint64 = 1
		k uint64
	)
	for k = 2; k <= uint64(max(n, 0)); k++ {
		if f > math.MaxUint64/k {
			return math.MaxUint64
		}
		f *= k
	}
	return f
}
