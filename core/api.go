// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only graph-wide queries: Stats, Components, Connected.
// Policy:
//   - No mutation here; every call takes a consistent snapshot under mu.
//   - Every exported function documents complexity.

package core

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Under mu read lock, count nodes, roads and isolated nodes.
//   - Stage 2: Count connected components with the same lock held.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
	}
	for id := range g.nodes {
		if len(g.adjacency[id]) == 0 {
			stats.IsolatedCount++
		}
	}
	stats.ComponentCount = len(g.componentsLocked())

	return stats
}

// Components partitions the nodes into connected components.
//
// Determinism:
//   - Components are ordered by their smallest node ID; IDs inside a component
//     appear in breadth-first discovery order starting from that smallest ID.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func (g *Graph) Components() [][]NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.componentsLocked()
}

// Connected reports whether every node can reach every other node.
// An empty graph is considered connected.
// Complexity: O(V log V + E).
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}

func (g *Graph) componentsLocked() [][]NodeID {
	seen := make(map[NodeID]bool, len(g.nodes))
	var out [][]NodeID
	for _, root := range g.sortedIDsLocked() {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []NodeID{root}
		// comp doubles as the BFS queue
		for head := 0; head < len(comp); head++ {
			for _, e := range g.adjacency[comp[head]] {
				if !seen[e.To] {
					seen[e.To] = true
					comp = append(comp, e.To)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}
