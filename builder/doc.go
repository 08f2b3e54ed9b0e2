// Package builder constructs road networks for the core package using a
// "functional-options" configuration and composable constructors.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph and applies constructors in order.
//     – Constructor:       a closure that populates a graph from builderConfig.
//   - Constructors:
//     – RoadNetwork:       random junctions joined to their k nearest neighbors.
//     – Layout:            fixed placement with explicit roads (fixtures, tests).
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithNamePool:      display names assigned in id order.
//     – WithNearest:       k in the k-nearest-neighbor rule.
//     – WithMargin:        keep-out border around the canvas.
//   - Shared constants and sentinel errors (constants.go, errors.go).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name ("RoadNetwork: ...: builder: parameter too small").
//   - Every generated road satisfies the core invariants: symmetric, weighted
//     by Euclidean length, no self-loops, no duplicates.
//
// Connectivity is NOT guaranteed: with uniform placement and k ≥ 4 a
// disconnected result is rare but possible. Use core.Graph.Connected to check.
package builder
