// File: pathfind.go
// Role: shared search loop behind Dijkstra and AStar.
//
// Notes on implementation choices:
//
//   - Each node is Unvisited, Frontier (queued, cost known) or Finalized.
//     A node becomes Finalized the first time it is extracted from the queue.
//   - We use a “lazy” decrease-key strategy: an improved cost pushes a new
//     queue entry and stale entries are discarded when extracted.
//   - Relaxation never touches Finalized neighbors, which bounds queue growth.
//   - The loop halts as soon as the end node is Finalized.
//   - Every call allocates fresh state; a Graph may be searched concurrently.

package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/pqueue"
)

// Dijkstra finds the cheapest route from start to end ordering the frontier
// by accumulated cost.
//
// Returns:
//
//   - *Result with costs, predecessors and visitation order.
//   - ErrNilGraph if g is nil.
//
// Unknown start or end ids produce an "unreachable" Result, not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start, end core.NodeID) (*Result, error) {
	return run(g, start, end, AlgorithmDijkstra, DefaultOptions())
}

// AStar finds the cheapest route from start to end ordering the frontier by
// cost plus heuristic estimate (Euclidean unless WithHeuristic is given).
// Same return contract as Dijkstra.
func AStar(g *core.Graph, start, end core.NodeID, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return run(g, start, end, AlgorithmAStar, cfg)
}

// Find dispatches to Dijkstra or AStar.
func Find(g *core.Graph, start, end core.NodeID, algo Algorithm, opts ...Option) (*Result, error) {
	switch algo {
	case AlgorithmDijkstra:
		return Dijkstra(g, start, end)
	case AlgorithmAStar:
		return AStar(g, start, end, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
}

func run(g *core.Graph, start, end core.NodeID, algo Algorithm, cfg Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	r := &runner{
		g:         g,
		algo:      algo,
		heuristic: cfg.Heuristic,
		res: &Result{
			Algorithm: algo,
			Start:     start,
			End:       end,
		},
	}
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g         *core.Graph // read-only within the search
	algo      Algorithm
	heuristic Heuristic
	goal      core.Node
	hasGoal   bool
	res       *Result
	finalized map[core.NodeID]bool
	pq        *pqueue.Queue[core.NodeID]
}

// init sets every cost to +Inf and every predecessor to NoNode, then queues
// the start node with cost 0 when it exists.
func (r *runner) init() {
	ids := r.g.NodeIDs()
	n := len(ids)

	r.res.Dist = make(map[core.NodeID]float64, n)
	r.res.Prev = make(map[core.NodeID]core.NodeID, n)
	r.finalized = make(map[core.NodeID]bool, n)
	r.pq = pqueue.NewWithCapacity[core.NodeID](n)

	for _, id := range ids {
		r.res.Dist[id] = math.Inf(1)
		r.res.Prev[id] = core.NoNode
	}

	if goal, err := r.g.Node(r.res.End); err == nil {
		r.goal, r.hasGoal = goal, true
	}

	if !r.g.HasNode(r.res.Start) {
		return // nothing is reachable from an unknown start
	}
	r.res.Dist[r.res.Start] = 0
	r.pq.Insert(r.res.Start, r.priority(r.res.Start, 0))
}

// process is the main loop: extract the lowest-priority node, discard it if
// stale, finalize it, stop at the end node, otherwise relax its roads.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		u, _ := r.pq.ExtractMin()
		if r.finalized[u] {
			continue // stale entry
		}
		r.finalized[u] = true
		r.res.Visited = append(r.res.Visited, u)

		if u == r.res.End {
			r.res.Found = true
			return
		}
		r.relax(u)
	}
}

// relax offers every road out of u to its far end.
// Assumes r.res.Dist[u] is final.
func (r *runner) relax(u core.NodeID) {
	du := r.res.Dist[u]
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.finalized[v] {
			continue
		}

		// strict "<" so equal-cost alternatives keep the first predecessor found
		candidate := du + e.Weight
		if candidate >= r.res.Cost(v) {
			continue
		}
		r.res.Dist[v] = candidate
		r.res.Prev[v] = u
		r.pq.Insert(v, r.priority(v, candidate))
	}
}

// priority is g for Dijkstra and g + h(v, end) for A*.
func (r *runner) priority(v core.NodeID, cost float64) float64 {
	if r.algo != AlgorithmAStar || !r.hasGoal {
		return cost
	}
	node, err := r.g.Node(v)
	if err != nil {
		return cost
	}

	return cost + r.heuristic(node, r.goal)
}
