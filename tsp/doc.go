// Package tsp solves the open-path Euclidean Travelling Salesperson Problem
// on small city sets and compares two strategies:
//
//   - Exhaustive — enumerates every tour with Heap's algorithm (package
//     permute) and keeps the strictly shortest one.
//
//   - Complexity: O(n!·n)
//
//   - Memory:     O(n), no allocation per permutation
//
//   - NearestNeighbor — greedy construction from a random start city,
//     always stepping to the closest unvisited city.
//
//   - Complexity: O(n²)
//
// Tour length is the open-path length: the sum of consecutive edge distances
// WITHOUT a return edge from the last city back to the first.
//
// A Problem bundles a cityset.Set, its Session (current/best tour state) and a
// random source. Runs are synchronous and not cancellable; pick n small enough
// (n≲10) for Exhaustive to finish in acceptable time. Problems share nothing,
// so independent instances may run on different goroutines.
package tsp
