// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil               (stochastic constructors require WithSeed/WithRand)
//   • names    = DefaultNamePool
//   • nearest  = DefaultNearest    (4)
//   • margin   = DefaultMargin     (50)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/routenav/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Display names assigned in id order; exhausted pool falls back to "Node <id>".
	names []string
	// k in the k-nearest-neighbor road rule.
	nearest int
	// Keep-out border on every side of the canvas.
	margin float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		names:   DefaultNamePool,
		nearest: DefaultNearest,
		margin:  DefaultMargin,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nameFor returns the display name of node id: the pool entry at the same
// index, or the synthetic fallback once the pool is exhausted.
func (c builderConfig) nameFor(id core.NodeID) string {
	if int(id) < len(c.names) && c.names[id] != "" {
		return c.names[id]
	}

	return fmt.Sprintf(fallbackNameFormat, id)
}
