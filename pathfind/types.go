// Package pathfind defines core types and configuration options for the
// point-to-point shortest-path searches over a core.Graph road network.
//
// Two algorithms share one search loop:
//
//   - Dijkstra: priority = cost from the start (g).
//   - A*:       priority = g + h(node, end), with h the straight-line distance
//     by default. Euclidean distance never overestimates a road length, so the
//     heuristic is admissible and consistent and A* returns the same optimal
//     cost as Dijkstra while finalizing fewer nodes.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each node is finalized at most once.
//	   • Each successful relaxation pushes one queue entry (lazy decrease-key).
//	– Space: O(V + E)
//	   • O(V) for cost and predecessor maps.
//	   • O(E) queue entries in the worst case.
//
// Unknown ids are not errors. A start id absent from the graph yields a Result
// in which every node is unreachable; an absent end id simply never gets
// finalized. Callers that need "invalid selection" errors validate ids first
// (see navigator).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrUnknownAlgorithm if Find receives an Algorithm it does not know.
package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/routenav/core"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value or name that is not supported.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// AlgorithmDijkstra orders the frontier by accumulated cost.
	AlgorithmDijkstra Algorithm = iota
	// AlgorithmAStar orders the frontier by accumulated cost plus heuristic estimate.
	AlgorithmAStar
)

// String returns the short machine name ("dijkstra", "astar").
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmAStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// DisplayName returns the human-readable name shown next to route statistics.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmDijkstra:
		return "Dijkstra's Algorithm"
	case AlgorithmAStar:
		return "A* Search"
	default:
		return a.String()
	}
}

// ParseAlgorithm maps "dijkstra" / "astar" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "astar":
		return AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Heuristic estimates the remaining cost from one node to the goal.
// It must never overestimate the true road distance for A* to stay optimal.
type Heuristic func(from, goal core.Node) float64

// Euclidean is the default A* heuristic: straight-line distance.
func Euclidean(from, goal core.Node) float64 { return core.Euclidean(from, goal) }

// Options configures a search.
//
// Heuristic – A* estimate; ignored by Dijkstra. Default Euclidean.
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic overrides the A* heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("pathfind: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultOptions returns Options with the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Euclidean}
}

// Result is the outcome of one search.
//
// Dist   – best-known cost per node; nodes never reached are absent or +Inf.
// Prev   – predecessor on the best path found; core.NoNode when none.
// Visited – node ids in the order they were finalized.
// Found  – true when End was finalized.
type Result struct {
	Algorithm Algorithm
	Start     core.NodeID
	End       core.NodeID
	Dist      map[core.NodeID]float64
	Prev      map[core.NodeID]core.NodeID
	Visited   []core.NodeID
	Found     bool
}

// Cost returns the best-known cost of id, +Inf if unreachable or unknown.
func (r *Result) Cost(id core.NodeID) float64 {
	if d, ok := r.Dist[id]; ok {
		return d
	}
	return math.Inf(1)
}

// Predecessor returns the predecessor of id, core.NoNode if none.
func (r *Result) Predecessor(id core.NodeID) core.NodeID {
	if p, ok := r.Prev[id]; ok {
		return p
	}
	return core.NoNode
}

// Reachable reports whether id has a finite cost.
func (r *Result) Reachable(id core.NodeID) bool {
	return !math.IsInf(r.Cost(id), 1)
}
