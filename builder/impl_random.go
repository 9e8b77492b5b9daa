// SPDX-License-Identifier: MIT
// Package: kruskalbench/builder
//
// impl_random.go — implementation of the Random(n, m) constructor.
//
// Canonical model: rejection sampling. Draw ordered pairs (u, v) uniformly,
// discard self-loops and pairs whose unordered key {min,max} was already
// emitted, until min(m, n(n-1)/2) edges exist.
//
// Contract:
//   - n ≥ 0, m ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil whenever at least one edge is requested
//     (else ErrNeedRandSource).
//   - No self-loops, no duplicate undirected pairs.
//   - Edges keep the orientation they were drawn with (u, v).
//
// Complexity:
//   - Expected O(m) draws while m is well below n(n-1)/2; approaching the cap
//     the coupon-collector tail costs O(M log M) with M = n(n-1)/2.
//   - Space: O(m) for the result and the seen-pair set.

package builder

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/kruskalbench/core"
)

// Random returns a Constructor that samples m distinct undirected edges over
// n vertices, capping m at the simple-graph maximum n(n-1)/2.
func Random(n, m int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if err := validateMin(MethodRandom, "n", n, MinRandomNodes); err != nil {
			return nil, err
		}
		if err := validateMin(MethodRandom, "m", m, 0); err != nil {
			return nil, err
		}

		target := min(m, maxSimpleEdges(n))
		if target == 0 {
			return []core.Edge{}, nil
		}
		if err := requireRand(MethodRandom, cfg); err != nil {
			return nil, err
		}

		var (
			edges = make([]core.Edge, 0, target)
			seen  = mapset.NewThreadUnsafeSetWithSize[core.PairKey](target)
		)
		for len(edges) < target {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			e := core.NewEdge(u, v, 0)
			if !seen.Add(e.Key()) {
				continue
			}
			e.Weight = cfg.weightFn(cfg.rng)
			edges = append(edges, e)
		}

		return edges, nil
	}
}
