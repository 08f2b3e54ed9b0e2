package navigator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/metrics"
	"github.com/katalvlaran/routenav/narrate"
	"github.com/katalvlaran/routenav/pathfind"
)

var validate = validator.New()

// RouteRequest selects the endpoints and, optionally, the algorithm.
// Start and End are pointers so a missing JSON field is rejected instead of
// decoding to node 0. An empty Algorithm falls back to the configured default.
type RouteRequest struct {
	Start     *core.NodeID `json:"start" validate:"required,min=0"`
	End       *core.NodeID `json:"end" validate:"required,min=0"`
	Algorithm string       `json:"algorithm,omitempty" validate:"omitempty,oneof=dijkstra astar"`
}

// NewRouteRequest builds a request with both endpoints set.
func NewRouteRequest(start, end core.NodeID, algorithm string) RouteRequest {
	return RouteRequest{Start: &start, End: &end, Algorithm: algorithm}
}

// Route is the outcome of FindRoute. Found is false (and Path empty) when the
// end node cannot be reached; that is a normal result, not an error.
type Route struct {
	Generation    string                `json:"generation"`
	Algorithm     string                `json:"algorithm"`
	AlgorithmName string                `json:"algorithmName"`
	Start         core.NodeID           `json:"start"`
	End           core.NodeID           `json:"end"`
	Found         bool                  `json:"found"`
	Path          []core.NodeID         `json:"path"`
	Visited       []core.NodeID         `json:"visited"`
	Instructions  []narrate.Instruction `json:"instructions"`
	TotalDistance float64               `json:"totalDistance"`
	NodesVisited  int                   `json:"nodesVisited"`
	Elapsed       time.Duration         `json:"elapsedNs"`
}

// FindRoute searches the current graph, narrates the result and stores it as
// the current route.
//
// Errors:
//   - ErrInvalidSelection for malformed requests.
//   - ErrUnknownNode when an endpoint is not in the graph.
//   - ErrNoGraph before the first generation.
//   - ctx.Err() when ctx is already done.
func (n *Navigator) FindRoute(ctx context.Context, req RouteRequest) (*Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, selectionError(err)
	}
	start, end := *req.Start, *req.End
	if start == end {
		return nil, fmt.Errorf("%w: start and end must differ", ErrInvalidSelection)
	}

	algo := n.defaultAlgo
	if req.Algorithm != "" {
		var err error
		if algo, err = pathfind.ParseAlgorithm(req.Algorithm); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
		}
	}

	g, generation, err := n.Graph()
	if err != nil {
		return nil, err
	}
	for _, id := range []core.NodeID{start, end} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
		}
	}

	began := time.Now()
	res, err := pathfind.Find(g, start, end, algo)
	elapsed := time.Since(began)
	if err != nil {
		n.metrics.RecordRoute(algo.String(), metrics.StatusError, elapsed, 0)
		return nil, fmt.Errorf("navigator: find route: %w", err)
	}

	route := &Route{
		Generation:    generation,
		Algorithm:     algo.String(),
		AlgorithmName: algo.DisplayName(),
		Start:         start,
		End:           end,
		Visited:       res.Visited,
		NodesVisited:  len(res.Visited),
		Elapsed:       elapsed,
	}
	if res.Found {
		route.Path = narrate.ReconstructPath(res.Prev, start, end)
	}
	route.Found = len(route.Path) > 0

	status := metrics.StatusNotFound
	if route.Found {
		status = metrics.StatusFound
		narration, err := narrate.Narrate(route.Path, g)
		if err != nil {
			n.metrics.RecordRoute(route.Algorithm, metrics.StatusError, elapsed, route.NodesVisited)
			return nil, fmt.Errorf("navigator: narrate route: %w", err)
		}
		route.Instructions = narration.Instructions
		route.TotalDistance = narration.TotalDistance
	}
	n.metrics.RecordRoute(route.Algorithm, status, elapsed, route.NodesVisited)

	n.store(route)

	if route.Found {
		n.logger.Info("route found",
			"generation", generation,
			"algorithm", route.Algorithm,
			"start", route.Start,
			"end", route.End,
			"hops", len(route.Path)-1,
			"distance", route.TotalDistance,
			"visited", route.NodesVisited,
			"elapsed", elapsed,
		)
	} else {
		n.logger.Info("no route",
			"generation", generation,
			"algorithm", route.Algorithm,
			"start", route.Start,
			"end", route.End,
			"visited", route.NodesVisited,
		)
	}

	return route, nil
}

// store keeps route as current unless the graph changed during the search.
func (n *Navigator) store(route *Route) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.generation == route.Generation {
		n.route = route
	}
}

// Route returns the current route, if any.
func (n *Navigator) Route() (*Route, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.route, n.route != nil
}

// Clear drops the current route; the graph is kept.
func (n *Navigator) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.route = nil
}

// selectionError reports the first failing request field.
func selectionError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidSelection, e.Field())
	case "min":
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidSelection, e.Field())
	case "oneof":
		return fmt.Errorf("%w: algorithm must be one of [%s]", ErrInvalidSelection, e.Param())
	default:
		return fmt.Errorf("%w: %s: %s", ErrInvalidSelection, e.Field(), e.Tag())
	}
}
