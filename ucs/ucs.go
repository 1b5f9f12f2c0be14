// File: ucs.go
// Role: single-pair uniform-cost search: FindPath plus the runner holding
//       per-search state (frontier set, best costs, predecessors).
// Determinism:
//   - selection tie-break is lexicographic on node name, so identical
//     graphs and arguments always produce identical paths.

package ucs

import (
	"github.com/dmkhr/cityway/core"
)

// FindPath computes the minimum-cost path from start to goal in g.
//
// Returns:
//
//   - Result with Found=true, the start→goal node sequence and its total
//     cost, when the goal is reachable within the configured cost cap.
//   - Result with Found=false when start or goal is unknown to the graph
//     or no connecting path exists — a negative outcome, not an error.
//   - ErrNilGraph when g is nil; no other error conditions exist.
//
// Complexity: O(V² + E) time, O(V) space.
func FindPath(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph pointer.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 3) Unknown endpoints are a negative result: the input layer may hand
	//    us stale or free-form names, and the search stays total over them.
	if !g.HasNode(start) || !g.HasNode(goal) {
		return Result{}, nil
	}

	// 4) Initialize per-search state and run the main loop.
	r := &runner{
		g:        g,
		options:  cfg,
		frontier: map[string]struct{}{start: {}},
		bestCost: map[string]int64{start: 0},
		prev:     map[string]string{},
	}
	r.process(goal)

	// 5) Reconstruct the route if the goal was ever selected.
	return r.result(start, goal), nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *core.Graph // read-only within the search
	options Options

	frontier map[string]struct{} // discovered but not yet finalized nodes
	bestCost map[string]int64    // node → minimum known cost from start
	prev     map[string]string   // node → predecessor on its best path

	goalSeen bool  // goal selected at least once
	goalCost int64 // cheapest cost at which the goal was selected
}

// process drains the frontier, finalizing one node per iteration.
//
// The goal test happens at selection time, not at relaxation time, and the
// loop keeps running after the first goal selection: a later, cheaper
// rediscovery is taken if one exists (only possible through zero-weight
// ties), unless EarlyExit is set.
func (r *runner) process(goal string) {
	for len(r.frontier) > 0 {
		// 1) Select the frontier node with the smallest known cost;
		//    ties go to the lexicographically smallest name.
		current, cost := r.selectMin()

		// 2) Everything still on the frontier costs at least this much,
		//    so once the cap is exceeded nothing reachable remains.
		if cost > r.options.MaxCost {
			break
		}

		// 3) Goal test and best-goal bookkeeping.
		if current == goal {
			if !r.goalSeen || cost < r.goalCost {
				r.goalSeen = true
				r.goalCost = cost
			}
			if r.options.EarlyExit {
				break
			}
		}

		// 4) Finalize: remove from the frontier, relax outgoing edges.
		delete(r.frontier, current)
		r.relax(current, cost)
	}
}

// selectMin scans the frontier for the minimum-cost node.
// Ties break lexicographically on the node name, independent of map
// iteration order. Caller guarantees a non-empty frontier.
func (r *runner) selectMin() (string, int64) {
	var current string
	var currentCost int64
	first := true
	for name := range r.frontier {
		cost := r.bestCost[name]
		if first || cost < currentCost || (cost == currentCost && name < current) {
			current = name
			currentCost = cost
			first = false
		}
	}

	return current, currentCost
}

// relax examines each edge current→neighbor and records any strictly
// cheaper route, re-adding the neighbor to the frontier so it remains
// eligible for reselection.
func (r *runner) relax(current string, cost int64) {
	for _, e := range r.g.Neighbors(current) {
		newCost := cost + e.Weight

		// Weights are non-negative, so a sum below the running cost means
		// int64 wrap-around; such a route is effectively infinite.
		if newCost < cost {
			continue
		}

		// Routes beyond the cap are never reported; skip the bookkeeping.
		if newCost > r.options.MaxCost {
			continue
		}

		old, known := r.bestCost[e.To]
		if known && newCost >= old {
			continue
		}

		r.bestCost[e.To] = newCost
		r.prev[e.To] = current
		r.frontier[e.To] = struct{}{}
	}
}

// result rebuilds the start→goal node sequence from the predecessor map.
// Predecessor links always strictly decrease bestCost, so the chain is
// acyclic and terminates at start.
func (r *runner) result(start, goal string) Result {
	if !r.goalSeen {
		return Result{}
	}

	path := []string{goal}
	for cur := goal; cur != start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	// Reverse into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Cost: r.goalCost, Found: true}
}
