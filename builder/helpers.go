// SPDX-License-Identifier: MIT
// Package: routenav/builder
//
// helpers.go - small building blocks shared by RoadNetwork and Layout.
//
// Helpers return raw core errors; callers add the method context.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/routenav/core"
)

// candidate is one ranked neighbor of the node being wired.
type candidate struct {
	id   core.NodeID
	dist float64
}

// addRoad joins a and b with a road weighted by their Euclidean distance and
// labelled "Road <a>-<b>".
// Complexity: O(deg(a)) for the duplicate check inside core.
func addRoad(g *core.Graph, a, b core.Node) error {
	return g.AddEdge(a.ID, b.ID, core.Euclidean(a, b), fmt.Sprintf(roadLabelFormat, a.ID, b.ID))
}

// rankByDistance fills buf with every node except from, ordered by distance
// from it. The sort is stable, so equal distances keep the id order of nodes.
// Complexity: O(n log n) time, no allocation when cap(buf) ≥ n-1.
func rankByDistance(from core.Node, nodes []core.Node, buf []candidate) []candidate {
	buf = buf[:0]
	for _, to := range nodes {
		if to.ID != from.ID {
			buf = append(buf, candidate{id: to.ID, dist: core.Euclidean(from, to)})
		}
	}
	sort.SliceStable(buf, func(a, b int) bool { return buf[a].dist < buf[b].dist })

	return buf
}
