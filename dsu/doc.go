// Package dsu provides a fixed-size Disjoint-Set (Union-Find) over dense
// integer IDs in [0, size).
//
// Representation: two parallel slices, parent (self-initialised) and rank
// (initialised to 0). Every parent chain ends at a root r with parent[r] == r.
//
//   - Find compresses paths: after the root is located, every node visited on
//     the way is re-pointed directly at it. The walk is iterative (two passes),
//     so very deep chains cannot exhaust the stack.
//   - Union merges by rank: the root with strictly smaller rank is attached
//     under the other; on equal ranks y's root goes under x's root and x's root
//     rank grows by one. Merging an already-merged pair changes nothing.
//
// Together these give amortised O(α(n)) per operation.
//
// An ID outside [0, size) is a programmer error and panics, like an
// out-of-range slice index would.
package dsu
