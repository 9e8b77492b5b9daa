// Package core holds the data model of kruskalbench: a weighted Edge between
// dense integer vertex IDs in [0, vertexCount).
//
// There is no Graph type: every algorithm in this module consumes a plain
// []Edge plus a vertex count, the shape a generator produces and Kruskal's
// algorithm sorts.
//
// Helpers:
//
//	– Validate(edges, n)   rejects negative n and endpoints outside [0, n).
//	– TotalWeight(edges)   sums weights exactly, reporting int64 overflow.
//	– SortByWeight(edges)  stable ascending sort (ties keep input order).
//	– Edge.Key()           unordered pair, used to deduplicate undirected edges.
//
// Errors are sentinels (ErrNegativeVertexCount, ErrVertexOutOfRange,
// ErrWeightOverflow); wrapped errors keep them reachable through errors.Is.
package core
