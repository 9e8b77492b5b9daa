// Package bfs runs breadth-first search over an undirected edge list and
// counts its connected components.
//
// The MST benchmark uses it to cross-check Kruskal: a minimum spanning forest
// over n vertices always holds n − Components(n, edges) edges.
//
// Input is the same shape Kruskal consumes: a vertex count n and a []core.Edge
// whose endpoints lie in [0, n). Edges are treated as undirected and weights
// are ignored. Adjacency lists keep edge input order, so traversal order is
// deterministic for a fixed edge list.
//
// API:
//
//	– BFS(n, edges, start, opts...)  visit order, depth and parent per vertex.
//	– Components(n, edges)           number of connected components.
//	– Labels(n, edges)               component label per vertex (labels 0..k-1 in order of first vertex).
//
// Options: WithContext, WithOnVisit, WithMaxDepth.
//
// Complexity: O(V + E) time and space for every entry point.
package bfs
