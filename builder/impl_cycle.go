// SPDX-License-Identifier: MIT
// Package: kruskalbench/builder
//
// impl_cycle.go — implementation of the Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Emits (i, (i+1) mod n, w) for i ascending; the last edge closes the ring.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/kruskalbench/core"

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return nil, err
		}

		edges := make([]core.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, core.NewEdge(i, (i+1)%n, cfg.weightFn(cfg.rng)))
		}

		return edges, nil
	}
}
