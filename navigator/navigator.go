// Package navigator holds one route-planning session: the current road
// network, the last computed route, and the collaborators (logger, metrics)
// every operation reports to.
//
// A Navigator is safe for concurrent use. The graph itself is immutable once
// generated, so searches run without holding the session lock; only the
// swap of the current graph or route is serialized.
package navigator

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/routenav/builder"
	"github.com/katalvlaran/routenav/config"
	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/metrics"
	"github.com/katalvlaran/routenav/pathfind"
)

// Sentinel errors.
var (
	// ErrInvalidSelection reports a malformed route request
	// (negative ids, start equal to end, unknown algorithm name).
	ErrInvalidSelection = errors.New("navigator: invalid selection")

	// ErrUnknownNode reports a route endpoint absent from the current graph.
	ErrUnknownNode = errors.New("navigator: unknown node")

	// ErrNoGraph reports an operation that needs a graph before one exists.
	ErrNoGraph = errors.New("navigator: no graph generated")
)

// Navigator is the session context behind the CLI and the HTTP API.
type Navigator struct {
	mu sync.RWMutex

	graphCfg    config.GraphConfig
	defaultAlgo pathfind.Algorithm
	constructor builder.Constructor // nil: RoadNetwork from graphCfg

	logger  *slog.Logger
	metrics *metrics.Registry
	rng     *rand.Rand

	graph       *core.Graph
	generation  string
	generatedAt time.Time
	route       *Route
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("navigator: WithLogger(nil)")
	}
	return func(n *Navigator) { n.logger = l }
}

// WithMetrics sets the metrics registry. Panics on nil.
func WithMetrics(m *metrics.Registry) Option {
	if m == nil {
		panic("navigator: WithMetrics(nil)")
	}
	return func(n *Navigator) { n.metrics = m }
}

// WithRand overrides the random source used for generation. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("navigator: WithRand(nil)")
	}
	return func(n *Navigator) { n.rng = r }
}

// WithConstructor replaces random generation with a fixed constructor,
// e.g. builder.Layout for a hand-drawn network. Panics on nil.
func WithConstructor(c builder.Constructor) Option {
	if c == nil {
		panic("navigator: WithConstructor(nil)")
	}
	return func(n *Navigator) { n.constructor = c }
}

// New validates cfg, applies opts and generates the first road network.
//
// Defaults: logger discards, a private metrics registry, rng seeded from
// cfg.Graph.Seed (or the clock when the seed is 0).
func New(cfg config.Config, opts ...Option) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algo, err := pathfind.ParseAlgorithm(cfg.Route.Algorithm)
	if err != nil {
		return nil, err
	}

	n := &Navigator{
		graphCfg:    cfg.Graph,
		defaultAlgo: algo,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if n.metrics == nil {
		n.metrics = metrics.NewRegistry()
	}
	if n.rng == nil {
		seed := cfg.Graph.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		n.rng = rand.New(rand.NewSource(seed))
	}

	if _, err = n.regenerate(); err != nil {
		return nil, err
	}

	return n, nil
}

// Metrics returns the registry the navigator records to.
func (n *Navigator) Metrics() *metrics.Registry {
	return n.metrics
}

// Graph returns the current road network and its generation id.
func (n *Navigator) Graph() (*core.Graph, string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.graph == nil {
		return nil, "", ErrNoGraph
	}
	return n.graph, n.generation, nil
}
