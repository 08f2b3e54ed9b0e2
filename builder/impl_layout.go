// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// impl_layout.go - implementation of Layout(nodes, pairs...).
//
// Contract:
//   - Nodes are added verbatim, in slice order (IDs must be unique and ≥ 0).
//   - Every pair becomes one road weighted by the Euclidean distance of its
//     endpoints and labelled "Road a-b".
//   - Unknown ids, self-pairs, duplicate pairs and coincident endpoints are
//     reported as ErrConstructFailed wrapping the core sentinel.
//   - Deterministic; does not consult cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routenav/core"
)

// Layout returns a Constructor that reproduces a fixed road network.
func Layout(nodes []core.Node, pairs ...[2]core.NodeID) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, n := range nodes {
			if err := g.AddNode(n); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w: %w", MethodLayout, n.ID, ErrConstructFailed, err)
			}
		}

		for _, p := range pairs {
			a, err := g.Node(p[0])
			if err != nil {
				return fmt.Errorf("%s: pair %v: %w: %w", MethodLayout, p, ErrConstructFailed, err)
			}
			b, err := g.Node(p[1])
			if err != nil {
				return fmt.Errorf("%s: pair %v: %w: %w", MethodLayout, p, ErrConstructFailed, err)
			}
			if err = addRoad(g, a, b); err != nil {
				return fmt.Errorf("%s: pair %v: %w: %w", MethodLayout, p, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
