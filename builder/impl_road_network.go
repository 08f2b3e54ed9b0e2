// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// impl_road_network.go - implementation of RoadNetwork(nodeCount, width, height).
//
// Canonical model:
//   - Node i sits at (U[m, width-m], U[m, height-m]), drawn x then y, i ascending.
//   - Node i is named cfg.names[i], or "Node i" once the pool is exhausted.
//   - For each node i ascending: rank every other node by Euclidean distance
//     (ties by id), then join i to the first min(k, n-1) of them, skipping
//     pairs already joined from the other side.
//
// Contract:
//   - nodeCount ≥ 1 (else ErrTooFewVertices).
//   - width, height > 2·margin (else ErrBadDimensions).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Coincident nodes (distance 0) are never joined; the pair is skipped.
//
// Complexity:
//   - Time: O(n² log n) for the per-node distance ranking.
//   - Space: O(n) scratch for one ranking at a time.
//
// Determinism:
//   - Fixed draw order and a stable ranking make the graph a pure function of the seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routenav/core"
)

// RoadNetwork returns a Constructor that generates a random road network of
// nodeCount junctions on a width×height canvas.
func RoadNetwork(nodeCount int, width, height float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateNodeCount(MethodRoadNetwork, nodeCount); err != nil {
			return err
		}
		if err := validateCanvas(MethodRoadNetwork, width, height, cfg.margin); err != nil {
			return err
		}
		if err := validateRand(MethodRoadNetwork, cfg); err != nil {
			return err
		}

		// 2) Place nodes.
		spanX := width - 2*cfg.margin
		spanY := height - 2*cfg.margin
		nodes := make([]core.Node, nodeCount)
		for i := range nodes {
			x := cfg.rng.Float64()*spanX + cfg.margin
			y := cfg.rng.Float64()*spanY + cfg.margin
			id := core.NodeID(i)
			nodes[i] = core.Node{
				ID:   id,
				X:    x,
				Y:    y,
				Name: cfg.nameFor(id),
				Lat:  originLat + (y/height-0.5)*geoSpan,
				Lon:  originLon + (x/width-0.5)*geoSpan,
			}
			if err := g.AddNode(nodes[i]); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", MethodRoadNetwork, id, err)
			}
		}

		// 3) Wire each node to its k nearest neighbors.
		k := cfg.nearest
		if k > nodeCount-1 {
			k = nodeCount - 1
		}
		ranked := make([]candidate, 0, nodeCount-1)
		for _, from := range nodes {
			ranked = rankByDistance(from, nodes, ranked)
			for _, c := range ranked[:k] {
				if c.dist == 0 || g.HasEdge(from.ID, c.id) {
					continue
				}
				if err := addRoad(g, from, nodes[c.id]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", MethodRoadNetwork, from.ID, c.id, c.dist, err)
				}
			}
		}

		return nil
	}
}
