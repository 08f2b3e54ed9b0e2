// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Usage hints:
//   - Use WithSeed(...) to freeze RoadNetwork placement in tests and examples.
//   - Compose Layout(...) constructors to assemble hand-made fixtures deterministically.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routenav/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core invariants (no loops, no duplicate roads, positive weights).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately; the
// partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrBadDimensions, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// RoadNetwork places nodeCount junctions uniformly at random inside the
// canvas (minus the margin) and joins each to its k nearest neighbors.
// Requires cfg.rng != nil. Complexity: O(n² log n).
//func RoadNetwork(nodeCount int, width, height float64) Constructor

// Layout adds the given nodes verbatim and a road for every pair, weighted by
// Euclidean length. Complexity: O(V + P·d).
//func Layout(nodes []core.Node, pairs ...[2]core.NodeID) Constructor
