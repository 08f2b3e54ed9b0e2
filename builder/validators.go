// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// validators.go - parameter contracts shared by constructors.
//
// Each function returns a sentinel-wrapped error with the method prefix when
// its precondition is violated, and nil otherwise. O(1) time and space.

package builder

import "fmt"

// validateNodeCount ensures n ≥ MinRoadNetworkNodes.
func validateNodeCount(method string, n int) error {
	if n < MinRoadNetworkNodes {
		return fmt.Errorf("%s: nodeCount=%d < min=%d: %w", method, n, MinRoadNetworkNodes, ErrTooFewVertices)
	}

	return nil
}

// validateCanvas ensures the canvas leaves a non-empty area inside the margin.
func validateCanvas(method string, width, height, margin float64) error {
	if width <= 2*margin || height <= 2*margin {
		return fmt.Errorf("%s: canvas %gx%g with margin %g: %w", method, width, height, margin, ErrBadDimensions)
	}

	return nil
}

// validateRand ensures a stochastic constructor received a random source.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
