// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors() keeps insertion order of the adjacency list.
//   - NeighborIDs() follows the same order.
// Concurrency:
//   - Read operations hold the mu read lock and return copies.

package core

// Neighbors returns the outgoing half-edges of id in insertion order.
//
// Behavior highlights:
//   - Never fails: an unknown or isolated id yields an empty (nil) slice.
//   - The result is a copy; callers may keep or modify it freely.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[id]
	if len(list) == 0 {
		return nil
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out
}

// NeighborIDs returns the IDs adjacent to id, in adjacency order.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id NodeID) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[id]
	out := make([]NodeID, 0, len(list))
	for _, e := range list {
		out = append(out, e.To)
	}

	return out
}

// Degree returns the number of roads incident to id (0 for unknown ids).
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
