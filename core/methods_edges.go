// File: methods_edges.go
// Role: Road lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns one entry per road, From < To, sorted by (From, To) asc.
// Concurrency:
//   - AddEdge under mu write lock; queries under mu read lock.
// Notes:
//   - AddEdge always stores both half-edges; HasEdge(a,b) == HasEdge(b,a).
//   - Duplicates are rejected with ErrMultiEdgeNotAllowed regardless of direction.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects from and to with a road of the given weight and label.
//
// Steps:
//  1. Reject self-loops, then validate weight (finite, > 0).
//  2. Lock mu; both endpoints must exist (ErrNodeNotFound).
//  3. Reject an existing road between the pair in either direction.
//  4. Append the half-edge from→to to from's list and the mirror to→from to to's list.
//
// Complexity: O(deg(from)) for the duplicate scan; graphs here are sparse.
// Concurrency: write lock on mu.
func (g *Graph) AddEdge(from, to NodeID, weight float64, label string) error {
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("%w: %d-%d weight=%g", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, from, to)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight, Label: label})
	g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight, Label: label})
	g.edgeCount++

	return nil
}

// HasEdge reports whether a road joins from and to (direction is irrelevant).
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to NodeID) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Edges returns every road once, oriented From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		for _, e := range list {
			if e.From < e.To {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of roads (not half-edges).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
