// SPDX-License-Identifier: MIT
// Package: kruskalbench/builder
//
// impl_tree.go — implementation of the Tree(n) constructor.
//
// Canonical model: random recursive tree. For i = 1..n-1 vertex i is joined to
// a uniformly chosen j ∈ [0, i). The result is connected and acyclic, so its
// MST is the whole edge list.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n ∈ {0,1} yields no edges.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Emits exactly n-1 edges as (i, j, w), i ascending.
//
// Complexity: O(n) time, O(n) space for the result.

package builder

import "github.com/katalvlaran/kruskalbench/core"

// Tree returns a Constructor that builds a random spanning tree over n vertices.
func Tree(n int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if err := validateMin(MethodTree, "n", n, MinTreeNodes); err != nil {
			return nil, err
		}
		if err := requireRand(MethodTree, cfg); err != nil {
			return nil, err
		}

		edges := make([]core.Edge, 0, max(n-1, 0))
		for i := 1; i < n; i++ {
			// Parent first, then weight: keeps the draw order stable per seed.
			j := cfg.rng.Intn(i)
			edges = append(edges, core.NewEdge(i, j, cfg.weightFn(cfg.rng)))
		}

		return edges, nil
	}
}
