package navigator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/routenav/builder"
	"github.com/katalvlaran/routenav/core"
)

// Snapshot is a read-only view of the current road network.
type Snapshot struct {
	Generation  string          `json:"generation"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Nodes       []core.Node     `json:"nodes"`
	Edges       []core.Edge     `json:"edges"`
	Stats       core.GraphStats `json:"stats"`
}

// Regenerate replaces the road network with a freshly generated one and drops
// the current route.
func (n *Navigator) Regenerate(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	return n.regenerate()
}

func (n *Navigator) regenerate() (Snapshot, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	cons := n.constructor
	if cons == nil {
		cons = builder.RoadNetwork(n.graphCfg.Nodes, n.graphCfg.Width, n.graphCfg.Height)
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithRand(n.rng),
		builder.WithNamePool(n.graphCfg.Names),
		builder.WithNearest(n.graphCfg.Nearest),
		builder.WithMargin(n.graphCfg.Margin),
	}, cons)
	if err != nil {
		n.logger.Error("graph generation failed", "error", err)
		return Snapshot{}, fmt.Errorf("navigator: regenerate: %w", err)
	}

	n.graph = g
	n.generation = uuid.NewString()
	n.generatedAt = time.Now().UTC()
	n.route = nil

	stats := g.Stats()
	n.metrics.RecordRegeneration(stats.NodeCount, stats.EdgeCount)
	n.logger.Info("graph regenerated",
		"generation", n.generation,
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
	)
	if stats.ComponentCount > 1 {
		n.logger.Warn("graph is disconnected",
			"generation", n.generation,
			"components", stats.ComponentCount,
			"isolated", stats.IsolatedCount,
		)
	}

	return n.snapshotLocked(stats), nil
}

// Snapshot returns the current road network.
func (n *Navigator) Snapshot() (Snapshot, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.graph == nil {
		return Snapshot{}, ErrNoGraph
	}
	return n.snapshotLocked(n.graph.Stats()), nil
}

func (n *Navigator) snapshotLocked(stats core.GraphStats) Snapshot {
	return Snapshot{
		Generation:  n.generation,
		GeneratedAt: n.generatedAt,
		Width:       n.graphCfg.Width,
		Height:      n.graphCfg.Height,
		Nodes:       n.graph.Nodes(),
		Edges:       n.graph.Edges(),
		Stats:       stats,
	}
}
