// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in the undirected storage invariants (mirrored half-edges, no loops, no duplicates).
//   - Validate that lookups never fail for unknown ids except Node(), which reports ErrNodeNotFound.
//   - Provide anchors for ordering guarantees (Nodes/NodeIDs/Edges sorted, Neighbors in insertion order).

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenav/core"
)

// squareGraph builds A(0,0) B(10,0) C(10,10) D(0,10) with the four sides.
func squareGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: 0, X: 0, Y: 0, Name: "A"},
		{ID: 1, X: 10, Y: 0, Name: "B"},
		{ID: 2, X: 10, Y: 10, Name: "C"},
		{ID: 3, X: 0, Y: 10, Name: "D"},
	} {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge(0, 1, 10, "AB"))
	require.NoError(t, g.AddEdge(1, 2, 10, "BC"))
	require.NoError(t, g.AddEdge(2, 3, 10, "CD"))
	require.NoError(t, g.AddEdge(3, 0, 10, "DA"))

	return g
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddNode(core.Node{ID: -1}), core.ErrInvalidNodeID)
	require.NoError(t, g.AddNode(core.Node{ID: 7, Name: "Harbor"}))
	require.ErrorIs(t, g.AddNode(core.Node{ID: 7}), core.ErrDuplicateNode)

	assert.True(t, g.HasNode(7))
	assert.False(t, g.HasNode(8))
	assert.Equal(t, 1, g.NodeCount())

	n, err := g.Node(7)
	require.NoError(t, err)
	assert.Equal(t, "Harbor", n.Name)

	_, err = g.Node(8)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := squareGraph(t)

	tests := []struct {
		name     string
		from, to core.NodeID
		weight   float64
		want     error
	}{
		{"self-loop", 0, 0, 1, core.ErrLoopNotAllowed},
		{"self-loop with zero weight", 2, 2, 0, core.ErrLoopNotAllowed},
		{"duplicate same direction", 0, 1, 10, core.ErrMultiEdgeNotAllowed},
		{"duplicate reverse direction", 1, 0, 10, core.ErrMultiEdgeNotAllowed},
		{"unknown endpoint", 0, 42, 1, core.ErrNodeNotFound},
		{"zero weight", 0, 2, 0, core.ErrBadWeight},
		{"negative weight", 0, 2, -3, core.ErrBadWeight},
		{"NaN weight", 0, 2, math.NaN(), core.ErrBadWeight},
		{"infinite weight", 0, 2, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.from, tc.to, tc.weight, "x")
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 4, g.EdgeCount(), "failed inserts must not change the catalog")
}

func TestGraph_EdgesAreMirrored(t *testing.T) {
	g := squareGraph(t)

	for _, id := range g.NodeIDs() {
		for _, e := range g.Neighbors(id) {
			assert.Equal(t, id, e.From)
			var mirrored bool
			for _, back := range g.Neighbors(e.To) {
				if back.To == id {
					mirrored = true
					assert.Equal(t, e.Weight, back.Weight)
					assert.Equal(t, e.Label, back.Label)
				}
			}
			assert.True(t, mirrored, "missing mirror of %d->%d", id, e.To)
		}
	}
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
}

func TestGraph_NeighborsNeverFail(t *testing.T) {
	g := squareGraph(t)
	require.NoError(t, g.AddNode(core.Node{ID: 9, Name: "Island"}))

	assert.Empty(t, g.Neighbors(42), "unknown id")
	assert.Empty(t, g.Neighbors(9), "isolated id")
	assert.Equal(t, 0, g.Degree(42))

	// insertion order: AB first, then DA
	assert.Equal(t, []core.NodeID{1, 3}, g.NeighborIDs(0))

	// returned slices are copies
	nb := g.Neighbors(0)
	nb[0].Weight = 999
	assert.Equal(t, 10.0, g.Neighbors(0)[0].Weight)
}

func TestGraph_EdgesOncePerRoad(t *testing.T) {
	g := squareGraph(t)

	edges := g.Edges()
	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.Less(t, e.From, e.To)
	}
	assert.Equal(t, core.NodeID(0), edges[0].From)
	assert.Equal(t, core.NodeID(1), edges[0].To)
}

func TestGraph_ComponentsAndStats(t *testing.T) {
	g := squareGraph(t)
	assert.True(t, g.Connected())

	require.NoError(t, g.AddNode(core.Node{ID: 10, X: 100, Y: 100}))
	require.NoError(t, g.AddNode(core.Node{ID: 11, X: 110, Y: 100}))
	require.NoError(t, g.AddNode(core.Node{ID: 12, X: 500, Y: 500}))
	require.NoError(t, g.AddEdge(11, 10, 10, "far"))

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []core.NodeID{0, 1, 2, 3}, comps[0])
	assert.Equal(t, []core.NodeID{10, 11}, comps[1])
	assert.Equal(t, []core.NodeID{12}, comps[2])
	assert.False(t, g.Connected())

	assert.Equal(t, core.GraphStats{
		NodeCount:      7,
		EdgeCount:      5,
		IsolatedCount:  1,
		ComponentCount: 3,
	}, g.Stats())
}

func TestEuclidean(t *testing.T) {
	a := core.Node{X: 0, Y: 0}
	b := core.Node{X: 3, Y: 4}
	assert.InDelta(t, 5.0, core.Euclidean(a, b), 1e-12)
	assert.InDelta(t, 5.0, core.Euclidean(b, a), 1e-12)
	assert.Zero(t, core.Euclidean(a, a))
}
