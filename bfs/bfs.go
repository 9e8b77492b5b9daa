package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kruskalbench/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// adjacency builds undirected adjacency lists in edge input order.
// Self-loops are dropped; they never change reachability.
func adjacency(n int, edges []core.Edge) ([][]int, error) {
	if err := core.Validate(edges, n); err != nil {
		return nil, err
	}
	adj := make([][]int, n)
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj, nil
}

// BFS runs breadth-first search from start over the undirected graph given
// by edges on n vertices.
// Returns core validation errors for bad input, ErrStartVertexNotFound,
// ErrOptionViolation, the context error on cancellation, or a wrapped OnVisit error.
func BFS(n int, edges []core.Edge, start int, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj, err := adjacency(n, edges)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	res := newResult(n)

	return res, walk(adj, start, o, res)
}

// walk runs one traversal from start into res. Vertices already marked in
// res are treated as visited, so repeated walks over the same res cover
// each vertex once.
func walk(adj [][]int, start int, o BFSOptions, res *BFSResult) error {
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, len(adj)),
		res:   res,
	}
	w.enqueue(start, 0, Unreached)

	return w.loop()
}

func newResult(n int) *BFSResult {
	r := &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.Depth[i] = Unreached
		r.Parent[i] = Unreached
	}

	return r
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if w.res.Depth[nbr] == Unreached {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}
