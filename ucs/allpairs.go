// File: allpairs.go
// Role: batch mode — one independent search per unordered node pair.

package ucs

import (
	"github.com/dmkhr/cityway/core"
)

// AllPairs runs FindPath for every unordered pair of distinct known nodes
// and reports each result independently; one pair's outcome does not affect
// another's. Pairs are enumerated i<j over the graph's first-seen node
// snapshot, so a graph with N nodes yields exactly N·(N−1)/2 results in a
// reproducible order.
//
// Returns ErrNilGraph for a nil graph; an empty or single-node graph yields
// an empty slice.
//
// Complexity: O(N² · (V² + E)) time in the worst case.
func AllPairs(g *core.Graph, opts ...Option) ([]PairResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Snapshot once: pair enumeration must not see nodes added mid-run.
	nodes := g.NodeNames()
	out := make([]PairResult, 0, len(nodes)*(len(nodes)-1)/2)

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			res, err := FindPath(g, nodes[i], nodes[j], opts...)
			if err != nil {
				return nil, err
			}
			out = append(out, PairResult{Start: nodes[i], Goal: nodes[j], Result: res})
		}
	}

	return out, nil
}
