package builder

import "fmt"

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices with the
// method name and parameter otherwise.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// requireRand reports ErrNeedRandSource for stochastic constructors.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// maxSimpleEdges returns n(n-1)/2, the edge count of K_n.
func maxSimpleEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
