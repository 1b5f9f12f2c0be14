// Package ucs implements uniform-cost search over a core.Graph: the
// minimum-cost path between two named nodes with non-negative edge weights.
//
// Overview:
//
//   - FindPath explores nodes in order of increasing accumulated cost from
//     the start node, relaxing edges until the frontier drains, then
//     reconstructs the cheapest route via the predecessor map.
//   - AllPairs runs the single-pair search over every unordered pair of
//     known nodes in a stable snapshot order.
//
// The frontier is a plain set scanned linearly for the minimum-cost node
// (Dijkstra with a frontier list, O(V²) per search). City graphs built by
// hand are small; the linear scan keeps the state trivially inspectable and
// makes the deterministic tie-break explicit: among equal-cost frontier
// nodes, the lexicographically smallest name is selected, so repeated
// searches over the same graph always return the same path.
//
// The search does not stop at the first arrival at the goal. It keeps
// draining the frontier, recording the best goal cost observed at selection
// time. With strictly positive weights the first selection of the goal is
// already optimal; WithEarlyExit opts into stopping there.
//
// Failure semantics:
//
//   - An unknown start or goal node, or a genuinely disconnected pair, is a
//     negative result (Result.Found == false), never an error. The
//     surrounding input layer may hand the search free-form text; the search
//     stays total over any two strings.
//   - The only error is ErrNilGraph for a nil graph pointer.
//
// Complexity:
//
//   - Time:  O(V² + E) per search — each selection scans the frontier.
//   - Space: O(V) for the cost, predecessor, and frontier structures.
package ucs
