// Package routenav generates synthetic road networks and finds, compares and
// narrates shortest routes across them.
//
// What is inside?
//
//	A small, thread-safe toolkit that brings together:
//		• Road network model: undirected weighted graph with positioned nodes
//		• Generation: random k-nearest-neighbor networks or fixed layouts
//		• Shortest paths: Dijkstra and A* (Euclidean heuristic) on one search loop
//		• Narration: turn-by-turn instructions from bearing changes
//		• Session + API: a navigator behind a JSON HTTP server and a CLI
//
// Under the hood, everything is organized in subpackages:
//
//	core/      — Graph, Node, Edge types and thread-safe primitives
//	pqueue/    — generic min-priority queue with FIFO tie-breaking
//	builder/   — BuildGraph with RoadNetwork and Layout constructors
//	pathfind/  — Dijkstra, AStar, Find and the shared search Result
//	narrate/   — ReconstructPath, Bearing, TurnAngle, Classify, Narrate
//	config/    — YAML configuration with defaults and validation
//	metrics/   — Prometheus instruments for routes, graphs and HTTP
//	navigator/ — session context: Regenerate, FindRoute, Clear
//	server/    — gorilla/mux JSON API over a navigator
//	cmd/routenav — command-line entry point
//
// Quick example:
//
//	g, _ := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RoadNetwork(20, 800, 500),
//	)
//	res, _ := pathfind.AStar(g, 0, 7)
//	path := narrate.ReconstructPath(res.Prev, 0, 7)
//	n, _ := narrate.Narrate(path, g)
//	for _, ins := range n.Instructions {
//		fmt.Println(ins.Text)
//	}
//
// See the package docs for complexity notes and error contracts.
package routenav
