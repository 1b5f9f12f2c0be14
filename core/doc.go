// Package core provides the in-memory city Graph: named nodes connected by
// undirected, non-negative, integer-weighted edges.
//
// The Graph G = (V,E) enforces a small set of invariants:
//
//   - Symmetric insertion — an edge between A and B is stored as two
//     adjacency entries, A→B and B→A, carrying the same weight.
//   - Duplicate-free — at most one edge may exist between any two distinct
//     nodes; a second insertion (in either argument order) is rejected with
//     ErrDuplicateEdge.
//   - No self-loops — AddEdge(A, A, w) is rejected with ErrSelfLoop.
//   - Non-negative weights — AddEdge with weight < 0 is rejected with
//     ErrNegativeWeight, so downstream shortest-path searches never need to
//     re-validate.
//   - Deterministic iteration — NodeNames() returns nodes in first-seen
//     order and Neighbors() preserves per-node edge insertion order, keeping
//     all-pairs enumeration and tie-breaking reproducible.
//
// The graph only grows: nodes appear lazily as edges mention them, and there
// are no removal or weight-update operations. Construction and querying are
// intended as strictly sequential phases; all methods are nonetheless guarded
// by a sync.RWMutex so an embedding system that interleaves them does not
// observe a partially inserted edge pair.
//
// Errors (sentinel, gate with errors.Is):
//
//	ErrEmptyNodeID    - a node name is the empty string.
//	ErrSelfLoop       - both endpoints name the same node.
//	ErrNegativeWeight - the weight is negative.
//	ErrDuplicateEdge  - an edge between the two nodes already exists.
package core
