// File: graph.go
// Role: Edge insertion and read queries: AddEdge/HasEdge/Neighbors/NodeNames,
//       plus membership and size probes.
// Concurrency:
//   - Mutations under the write lock; both mirrored entries are inserted in
//     one critical section, so readers never observe half an edge.
//   - Read queries under the read lock; slice results are copies.

package core

import "fmt"

// AddEdge inserts an undirected edge between nodes a and b with the given
// weight, lazily creating adjacency rows for unknown nodes.
//
// Steps:
//  1. Validate names, self-loop, weight.
//  2. Reject if an edge a–b already exists in either direction.
//  3. Ensure both nodes are registered (first-seen order).
//  4. Append a→b and b→a carrying the same weight.
//
// Complexity: O(deg(a)) for the duplicate check, O(1) amortized insertion.
func (g *Graph) AddEdge(a, b string, weight int64) error {
	// 1) Input validation.
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s - %s weight=%d", ErrNegativeWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Duplicate check. Scanning a's row alone suffices: edges are always
	//    inserted as mirrored pairs, so b's row is consistent with a's.
	if g.edgeExistsLocked(a, b) {
		return fmt.Errorf("%w: %s - %s", ErrDuplicateEdge, a, b)
	}

	// 3) Register endpoints on first sight.
	g.ensureNodeLocked(a)
	g.ensureNodeLocked(b)

	// 4) Symmetric insertion.
	g.adjacency[a] = append(g.adjacency[a], Edge{From: a, To: b, Weight: weight})
	g.adjacency[b] = append(g.adjacency[b], Edge{From: b, To: a, Weight: weight})
	g.edgePairs++

	return nil
}

// ensureNodeLocked creates an adjacency row for name if absent and records
// the name in first-seen order. Caller holds the write lock.
func (g *Graph) ensureNodeLocked(name string) {
	if _, ok := g.adjacency[name]; ok {
		return
	}
	g.adjacency[name] = nil
	g.nodes = append(g.nodes, name)
}

// edgeExistsLocked reports whether an edge a–b is already present.
// Caller holds at least the read lock.
func (g *Graph) edgeExistsLocked(a, b string) bool {
	for _, e := range g.adjacency[a] {
		if e.To == b {
			return true
		}
	}

	return false
}

// HasEdge reports whether an edge exists between a and b, in either
// argument order.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeExistsLocked(a, b)
}

// HasNode reports whether the graph knows a node with the given name.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[name]

	return ok
}

// Neighbors returns the outgoing edges of name in insertion order.
// Unknown nodes yield an empty slice, not an error; callers needing
// existence must check HasNode separately.
// Complexity: O(deg(name)); the result is a copy.
func (g *Graph) Neighbors(name string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := g.adjacency[name]
	out := make([]Edge, len(row))
	copy(out, row)

	return out
}

// NodeNames returns all known node names in first-seen order.
// The order is stable across calls, keeping all-pairs enumeration
// reproducible.
// Complexity: O(V); the result is a copy.
func (g *Graph) NodeNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of known nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges (unordered node pairs).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgePairs
}
