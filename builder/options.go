// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNamePool sets the display names assigned to nodes in id order.
// An empty pool is allowed: every node then gets the "Node <id>" fallback.
// The slice is copied.
func WithNamePool(names []string) BuilderOption {
	pool := append([]string(nil), names...)
	return func(c *builderConfig) {
		c.names = pool
	}
}

// WithNearest sets k, the number of nearest neighbors each node is joined to.
// Panics if k < 1.
func WithNearest(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithNearest(k<1)")
	}
	return func(c *builderConfig) {
		c.nearest = k
	}
}

// WithMargin sets the keep-out border around the canvas.
// Panics if m < 0.
func WithMargin(m float64) BuilderOption {
	if m < 0 {
		panic("builder: WithMargin(m<0)")
	}
	return func(c *builderConfig) {
		c.margin = m
	}
}
