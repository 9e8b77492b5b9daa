// Package core defines the Edge triple shared by every kruskalbench package,
// together with sentinel errors and the small edge-list helpers (validation,
// checked summation, stable weight ordering) the MST builder relies on.
//
// Errors:
//
//	ErrNegativeVertexCount - vertex count below zero.
//	ErrVertexOutOfRange    - an edge endpoint outside [0, vertexCount).
//	ErrWeightOverflow      - int64 overflow while summing edge weights.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list operations.
var (
	// ErrNegativeVertexCount indicates a vertex count below zero.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, vertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrWeightOverflow indicates that a weight sum does not fit into int64.
	ErrWeightOverflow = errors.New("core: weight sum overflows int64")
)

// Edge represents a weighted connection between two dense integer vertex IDs.
//
// Edges are stored and compared as directed triples (From, To, Weight) but
// generated and interpreted as undirected: Key() identifies the unordered pair.
type Edge struct {
	// From is the source vertex ID in [0, vertexCount).
	From int

	// To is the destination vertex ID in [0, vertexCount).
	To int

	// Weight is the cost of the edge; it determines the MST ordering.
	Weight int64
}

// PairKey identifies an unordered vertex pair {Lo, Hi} with Lo <= Hi.
type PairKey struct {
	Lo, Hi int
}

// NewEdge returns the edge From→To with the given weight.
func NewEdge(from, to int, weight int64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// Key returns the unordered pair this edge connects.
// Complexity: O(1).
func (e Edge) Key() PairKey {
	if e.From <= e.To {
		return PairKey{Lo: e.From, Hi: e.To}
	}

	return PairKey{Lo: e.To, Hi: e.From}
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool {
	return e.From == e.To
}

// String renders the edge as "from-to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Weight)
}
