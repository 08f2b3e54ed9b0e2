// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrBadDimensions → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric size parameter (e.g. nodeCount)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadDimensions indicates that the canvas is too small to hold any node
// once the margin is removed on both sides.
var ErrBadDimensions = errors.New("builder: canvas smaller than twice the margin")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not produce a graph
// without breaking core invariants (unknown node in a Layout pair, coincident
// endpoints, nil constructor, ...).
var ErrConstructFailed = errors.New("builder: construction failed")
