// Package permute enumerates every permutation of an index slice exactly once,
// in place, using Heap's algorithm.
//
// Two equivalent drivers are provided:
//
//   - Heap — the classic recursive form.
//   - HeapIterative — an explicit-counter state machine with the identical
//     visit order and swap pattern, for callers that prefer bounded stack use.
//
// Both call visit at every leaf of the recursion (size == 1). At that point the
// slice holds a complete permutation; between visits it is mid-swap and must
// not be read. visit must not retain or modify the slice.
//
// Complexity: O(n!) visits, one swap per visit, no allocation per permutation.
package permute
