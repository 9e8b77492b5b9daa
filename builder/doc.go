// SPDX-License-Identifier: MIT
// Package: kruskalbench/builder
//
// Package builder generates weighted edge lists over dense vertex IDs
// [0, n) for the MST benchmark and its tests.
//
// The package offers the following key components:
//
//   - Topologies (Constructor factories, impl_*.go):
//     – Tree(n):        random recursive tree, vertex i joins a random j < i; n-1 edges.
//     – Random(n, m):   m distinct undirected pairs by rejection sampling, no self-loops,
//     m capped at n(n-1)/2.
//     – Complete(n):    every unordered pair {i,j}, i<j, in lexicographic order.
//     – Cycle(n):       ring 0—1—…—(n-1)—0.
//   - Mode dispatch:
//     – Generate(mode, n, m, opts...) selects the constructor for a Mode.
//     – ParseMode("tree") → ModeTree; unknown strings fall through to ModeRandom.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the random source (required by Tree and Random).
//     – WithWeightFn / WithWeightRange / WithConstantWeight: edge weights,
//     uniform in [DefaultMinWeight, DefaultMaxWeight] = [1,19] by default.
//
// Guarantees:
//
//   - Determinism: same constructor, parameters and seed ⇒ identical edge list.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Runtime validation returns sentinel errors wrapped with the method name
//     (ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed); never panics.
package builder
