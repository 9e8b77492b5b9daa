package kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kruskalbench/core"
)

// ErrDisconnected indicates that a spanning tree was required but the input
// graph has more than one connected component.
var ErrDisconnected = errors.New("kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodKruskal.
var ErrUnknownMethod = errors.New("kruskal: unknown MST method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures Compute.
//
// Fields:
//
//	Method       string — algorithm name; only MethodKruskal is supported.
//	SpanningTree bool   — when true, a forest result is reported as ErrDisconnected.
type MSTOptions struct {
	Method       string
	SpanningTree bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithSpanningTree requires the result to span every vertex.
func WithSpanningTree(required bool) Option {
	return func(opts *MSTOptions) {
		opts.SpanningTree = required
	}
}

// DefaultOptions returns Kruskal with forests allowed.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:       MethodKruskal,
		SpanningTree: false,
	}
}

// Compute resolves opts over DefaultOptions and runs the selected algorithm
// through the checked Kruskal entry point.
//
// Returns:
//
//	[]core.Edge — accepted edges in acceptance (ascending weight) order.
//	int64       — their total weight.
//	error       — ErrUnknownMethod, ErrDisconnected or a core validation error.
func Compute(edges []core.Edge, vertexCount int, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Method != MethodKruskal {
		return nil, 0, fmt.Errorf("Compute: method %q: %w", o.Method, ErrUnknownMethod)
	}

	mst, total, err := Kruskal(edges, vertexCount)
	if err != nil {
		return nil, 0, err
	}
	if o.SpanningTree && vertexCount > 0 && len(mst) < vertexCount-1 {
		return nil, 0, fmt.Errorf("Compute: %d of %d tree edges found: %w",
			len(mst), vertexCount-1, ErrDisconnected)
	}

	return mst, total, nil
}
