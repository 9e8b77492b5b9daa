package core

import (
	"fmt"
	"math"
	"sort"
)

// Validate checks that vertexCount is non-negative and that every endpoint
// of every edge lies in [0, vertexCount). The first violation is returned,
// wrapped with the offending edge index so callers can branch via errors.Is.
// Complexity: O(E).
func Validate(edges []Edge, vertexCount int) error {
	if vertexCount < 0 {
		return fmt.Errorf("Validate: vertexCount=%d: %w", vertexCount, ErrNegativeVertexCount)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return fmt.Errorf("Validate: edge #%d %s with vertexCount=%d: %w",
				i, e, vertexCount, ErrVertexOutOfRange)
		}
	}

	return nil
}

// AddWeight returns sum+w, or ErrWeightOverflow if the result does not fit.
// Complexity: O(1).
func AddWeight(sum, w int64) (int64, error) {
	if (w > 0 && sum > math.MaxInt64-w) || (w < 0 && sum < math.MinInt64-w) {
		return 0, fmt.Errorf("AddWeight: %d + %d: %w", sum, w, ErrWeightOverflow)
	}

	return sum + w, nil
}

// TotalWeight sums edge weights exactly, failing on int64 overflow.
// Complexity: O(E).
func TotalWeight(edges []Edge) (int64, error) {
	var (
		total int64
		err   error
	)
	for _, e := range edges {
		if total, err = AddWeight(total, e.Weight); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// SortByWeight orders edges ascending by Weight in place.
// The sort is stable: equal-weight edges keep their input order, which makes
// the MST edge set deterministic for a fixed input ordering.
// Complexity: O(E log E).
func SortByWeight(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
}

// Clone returns a copy of edges that shares no backing array with the input.
func Clone(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}
