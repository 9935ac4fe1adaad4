// Package tourlab compares an exact and a greedy solver for the open-path
// Euclidean Travelling Salesperson Problem on small city sets.
//
// What is inside:
//
//	cityset/ — random or fixed 2-D cities + precomputed symmetric distance table
//	permute/ — Heap's algorithm, recursive and iterative, in place
//	tsp/     — exhaustive search, nearest-neighbor heuristic, session tracker, Problem facade
//	bench/   — sweeps instance sizes and aggregates runtimes and percent gaps
//	cmd/tspbench — command-line benchmark and single-instance solver
//
// Tour length is an open path: the last city does not connect back to the
// first. Exhaustive search is O(n!·n) and exists as the comparison baseline;
// keep n≲10.
//
// Quick ASCII example:
//
//	3───2
//	    │
//	0───1
//
// is the shortest open path (length 30) through the corners of a 10×10 square.
//
//	go get github.com/katalvlaran/tourlab
package tourlab
