// File: types.go
// Role: Edge and Graph declarations, sentinel errors, NewGraph constructor.
// Determinism:
//   - nodes remembers first-seen order for stable NodeNames().
//   - adjacency rows are append-only, preserving edge insertion order.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates that a node name is the empty string.
	ErrEmptyNodeID = errors.New("core: node name is empty")

	// ErrSelfLoop indicates an edge whose endpoints name the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight; the graph contract
	// is non-negative integer distances.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrDuplicateEdge indicates that an edge between the two nodes already
	// exists (checked in either direction). The wrapped message carries both
	// node names.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Edge is one directed adjacency entry From→To with a non-negative Weight.
// Undirected edges are represented as two mirrored Edge values.
type Edge struct {
	// From is the node this entry departs from.
	From string

	// To is the neighboring node.
	To string

	// Weight is the distance between the two nodes.
	Weight int64
}

// Graph is the in-memory adjacency structure.
//
// adjacency maps a node name to its outgoing edges in insertion order.
// nodes lists node names in first-seen order for stable enumeration.
// edgePairs counts unordered node pairs (each undirected edge once).
type Graph struct {
	mu sync.RWMutex

	adjacency map[string][]Edge
	nodes     []string
	edgePairs int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Edge),
	}
}
