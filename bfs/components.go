package bfs

import "github.com/katalvlaran/kruskalbench/core"

// Labels assigns each vertex the index of its connected component.
// Components are numbered 0..k-1 in order of their smallest vertex.
// Returns the labels and k.
// Complexity: O(V + E).
func Labels(n int, edges []core.Edge) ([]int, int, error) {
	adj, err := adjacency(n, edges)
	if err != nil {
		return nil, 0, err
	}

	labels := make([]int, n)
	var k int
	o := DefaultOptions()
	WithOnVisit(func(id, _ int) error {
		labels[id] = k
		return nil
	})(&o)

	// One shared result: each walk skips vertices earlier walks reached.
	res := newResult(n)
	for s := 0; s < n; s++ {
		if res.Reached(s) {
			continue
		}
		if err := walk(adj, s, o, res); err != nil {
			return nil, 0, err
		}
		k++
	}

	return labels, k, nil
}

// Components returns the number of connected components; isolated vertices
// count as one component each, and n == 0 yields 0.
func Components(n int, edges []core.Edge) (int, error) {
	_, k, err := Labels(n, edges)

	return k, err
}

// Reachable returns the vertices reachable from start, start first, in BFS
// order. Errors are those of BFS.
func Reachable(n int, edges []core.Edge, start int) ([]int, error) {
	res, err := BFS(n, edges, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
