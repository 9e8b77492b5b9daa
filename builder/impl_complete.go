// SPDX-License-Identifier: MIT
// Package: kruskalbench/builder
//
// impl_complete.go — implementation of the Complete(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, as (i, j, w).
//   • Weights come from cfg.weightFn(cfg.rng); rng may be nil for
//     non-random weight functions.
//
// Complexity: O(n²) time and space.

package builder

import "github.com/katalvlaran/kruskalbench/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return nil, err
		}

		edges := make([]core.Edge, 0, maxSimpleEdges(n))
		// Lexicographic pair order (i,j), i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, core.NewEdge(i, j, cfg.weightFn(cfg.rng)))
			}
		}

		return edges, nil
	}
}
