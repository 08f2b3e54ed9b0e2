// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph and GraphStats types plus the sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeID indicates that the provided Node has a negative ID.
	ErrInvalidNodeID = errors.New("core: node ID must be non-negative")

	// ErrDuplicateNode indicates an attempt to add a node whose ID is taken.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a zero, negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second road between the same pair of nodes.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NodeID identifies a Node within one Graph instance.
type NodeID int

// NoNode is the "none" sentinel used for missing predecessors.
const NoNode NodeID = -1

// Node is a junction or landmark of the road network.
//
// X and Y are planar coordinates in canvas units. Lat and Lon are synthetic
// geographic coordinates derived from X and Y by the builder; they carry no
// routing meaning. Nodes are immutable once added.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID `json:"id"`

	// X, Y are planar coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Lat, Lon are informational geographic coordinates.
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Edge is one direction of a road.
//
// For every Edge{From: a, To: b} stored in a's adjacency, the Graph also stores
// Edge{From: b, To: a} with the same Weight and Label.
type Edge struct {
	// From is the node whose adjacency list holds this half-edge.
	From NodeID `json:"from"`

	// To is the neighboring node.
	To NodeID `json:"to"`

	// Weight is the road length (Euclidean distance between endpoints).
	Weight float64 `json:"weight"`

	// Label is the road name, e.g. "Road 3-7".
	Label string `json:"label"`
}

// Graph is the in-memory road network.
//
// mu guards nodes, adjacency and edgeCount. Adjacency lists keep insertion
// order, which makes neighbor iteration (and therefore tie-breaking in the
// search algorithms) deterministic.
type Graph struct {
	mu sync.RWMutex

	nodes     map[NodeID]*Node
	adjacency map[NodeID][]Edge
	edgeCount int // undirected roads, not half-edges
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	NodeCount      int `json:"nodes"`
	EdgeCount      int `json:"edges"`
	IsolatedCount  int `json:"isolated"`
	ComponentCount int `json:"components"`
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]*Node),
		adjacency: make(map[NodeID][]Edge),
	}
}
