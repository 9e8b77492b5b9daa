// Package kruskalbench benchmarks Kruskal's minimum spanning tree algorithm
// over synthetic graphs of increasing size.
//
// Pipeline per scenario: generate a graph → sort edges → union-find merge →
// print one tab-separated row (label, vertices, edges, MST weight, ms, note).
//
// Under the hood, everything is organized under these subpackages:
//
//	core/    — Edge triple, validation, checked weight sums, stable weight sort
//	dsu/     — Disjoint-Set with union-by-rank and iterative path compression
//	kruskal/ — FindMST (minimum spanning forest) plus checked/option entry points
//	builder/ — seeded graph generators: tree, random, complete, cycle
//	bfs/     — breadth-first search and connected-component counting
//	bench/   — scenarios, timing histograms, report writer
//	cmd/kruskalbench — the command-line entry point
//
// Quick example (the classic cycle-breaking square):
//
//	0 ──5── 1
//	│ ╲     │
//	4   2   3
//	│     ╲ │
//	3 ──1── 2
//
// FindMST keeps 2—3, 0—2 and 1—2: three edges, total weight 6.
//
//	go run github.com/katalvlaran/kruskalbench/cmd/kruskalbench --seed 42
package kruskalbench
