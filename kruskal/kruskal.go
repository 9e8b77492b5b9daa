package kruskal

import (
	"github.com/katalvlaran/kruskalbench/core"
	"github.com/katalvlaran/kruskalbench/dsu"
)

// FindMST computes a minimum spanning forest of the undirected graph given by
// edges over vertexCount vertices.
//
// Steps:
//  1. Copy edges and stable-sort the copy by ascending weight (caller's slice is untouched).
//  2. Initialise a dsu.DisjointSet of vertexCount singletons.
//  3. For each edge (u,v): if Find(u) != Find(v), accept it, add its weight and Union(u,v).
//  4. Stop once vertexCount-1 edges are accepted.
//
// The result is a true MST when the input is connected, otherwise one tree per
// component; its length is always vertexCount − components. Self-loops are
// never accepted. A negative vertexCount or an endpoint outside
// [0, vertexCount) panics; use Kruskal for validated input.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func FindMST(edges []core.Edge, vertexCount int) ([]core.Edge, int64) {
	// 1. Sort a copy by ascending weight; the stable sort keeps input order on ties.
	sorted := core.Clone(edges)
	core.SortByWeight(sorted)

	// 2. Initialize the disjoint set and the result buffer.
	var (
		uf          = dsu.New(vertexCount)
		mst         = make([]core.Edge, 0, maxTreeEdges(vertexCount, len(sorted)))
		totalWeight int64
	)

	// 3. Accept every edge joining two components (self-loops never do).
	for _, e := range sorted {
		// 4. A spanning tree is complete at |V|-1 edges.
		if len(mst) == vertexCount-1 {
			break
		}
		if uf.Find(e.From) == uf.Find(e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		uf.Union(e.From, e.To)
	}

	// 5. A short result is a forest, one tree per component.
	return mst, totalWeight
}

// Kruskal is the checked form of FindMST.
//
// Error Conditions:
//   - core.ErrNegativeVertexCount : vertexCount < 0.
//   - core.ErrVertexOutOfRange    : an endpoint outside [0, vertexCount).
//   - core.ErrWeightOverflow      : the MST weight does not fit into int64.
//
// On error the returned slice is nil and the weight is zero.
func Kruskal(edges []core.Edge, vertexCount int) ([]core.Edge, int64, error) {
	if err := core.Validate(edges, vertexCount); err != nil {
		return nil, 0, err
	}

	mst, _ := FindMST(edges, vertexCount)
	// Recompute with overflow detection; FindMST wraps silently.
	total, err := core.TotalWeight(mst)
	if err != nil {
		return nil, 0, err
	}

	return mst, total, nil
}

// maxTreeEdges bounds the MST capacity by both |V|-1 and |E|.
func maxTreeEdges(vertexCount, edgeCount int) int {
	n := vertexCount - 1
	if n < 0 {
		return 0
	}
	if edgeCount < n {
		return edgeCount
	}

	return n
}
