package core

import "math"

// Euclidean returns the straight-line distance between a and b in canvas units.
// It is the road weight used by the builder and the A* heuristic.
func Euclidean(a, b Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
