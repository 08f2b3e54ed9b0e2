// Package core defines the central Graph, Node and Edge types of a road
// network and provides thread-safe primitives for building and querying it.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: every road is stored as two half-edges (a→b, b→a)
//     sharing one weight and one label.
//   - Weighted only: weights must be finite and strictly positive.
//   - Simple: self-loops and parallel roads are rejected.
//   - Nodes carry canvas coordinates (X, Y), a display name and synthetic
//     geographic coordinates (Lat, Lon).
//
// Why a dedicated type?
//
//   - Deterministic iteration: Nodes(), NodeIDs() and Edges() are sorted by id;
//     Neighbors() preserves insertion order, which fixes search tie-breaking.
//   - Read-mostly concurrency: a single sync.RWMutex guards the maps. The
//     builder writes once, then any number of searches read concurrently.
//   - No failure on reads: Neighbors of an unknown or isolated node is empty.
//
// Mutation:
//
//	AddNode(n)                       – ErrInvalidNodeID, ErrDuplicateNode
//	AddEdge(from, to, weight, label) – ErrNodeNotFound, ErrLoopNotAllowed,
//	                                   ErrMultiEdgeNotAllowed, ErrBadWeight
//
// Queries:
//
//	HasNode, Node, Nodes, NodeIDs, NodeCount
//	HasEdge, Edges, EdgeCount
//	Neighbors, NeighborIDs, Degree
//	Stats, Components, Connected
//
// Geometry:
//
//	Euclidean(a, b) – straight-line distance between two nodes; used both as
//	                  road weight and as the A* heuristic.
//
// Complexity:
//
//   - AddNode, HasNode, Node: O(1).
//   - AddEdge, HasEdge: O(deg) for the duplicate check.
//   - Nodes, NodeIDs, Edges: O(V log V) / O(E log E) for sorting.
//   - Components, Stats: O(V log V + E).
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddNode(core.Node{ID: 0, X: 0, Y: 0, Name: "A"})
//	_ = g.AddNode(core.Node{ID: 1, X: 3, Y: 4, Name: "B"})
//	_ = g.AddEdge(0, 1, 5, "Road 0-1")
//	for _, e := range g.Neighbors(1) {
//		fmt.Println(e.To, e.Weight) // 0 5
//	}
package core
