// Package kruskal computes a Minimum Spanning Tree (or forest) with Kruskal's
// algorithm over a plain edge list of dense integer vertex IDs.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with the minimum possible sum of weights.
//     For a disconnected graph the same procedure yields a minimum spanning forest:
//     one MST per connected component, |V| − components edges in total.
//
// Algorithm
//
//   - Strategy: stable-sort a copy of the edges by ascending weight, then scan them from lightest
//     to heaviest. A dsu.DisjointSet tracks components; an edge whose endpoints already share a root
//     would close a cycle and is skipped, any other edge is accepted and its endpoints merged.
//     The scan stops as soon as |V|−1 edges were accepted.
//
//   - Complexity:
//
//   - Time: O(E log E + α(V)·E) — sorting dominates.
//
//   - Space: O(V + E) for the parent/rank slices and the sorted copy.
//
//   - Determinism: the sort is stable, so equal-weight edges are considered in input order and the
//     same input always yields the same edge set. The total weight is invariant under any tie-break.
//
// API
//
//   - FindMST(edges, n) ([]core.Edge, int64)
//     Unchecked fast path used by the benchmark driver. Inputs must satisfy 0 ≤ From, To < n;
//     a violation panics in dsu.
//
//   - Kruskal(edges, n) ([]core.Edge, int64, error)
//     Validates the input (core.ErrNegativeVertexCount, core.ErrVertexOutOfRange) and sums weights
//     with overflow detection (core.ErrWeightOverflow).
//
//   - Compute(edges, n, opts...) ([]core.Edge, int64, error)
//     Options façade: WithMethod selects the algorithm (only MethodKruskal exists;
//     anything else is ErrUnknownMethod), WithSpanningTree(true) rejects forests with ErrDisconnected.
package kruskal
