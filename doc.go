// Package cityway models an undirected weighted graph of named locations
// and finds minimum-cost routes between them.
//
// What's inside?
//
//	A small, focused toolkit built from three layers:
//		• core/   — the Graph: nodes, symmetric weighted edges, duplicate-free invariant
//		• ucs/    — uniform-cost search: single-pair and all-pairs cheapest routes
//		• ingest/ — input collaborators: interactive lines, TOML and YAML edge files
//
// A graph is built incrementally from (nodeA, nodeB, weight) triples; once
// construction ends, the search reports the cheapest path and its total cost,
// or a "no way found" outcome for unreachable pairs.
//
// Quick ASCII example:
//
//	    A──5──B
//	     \    │
//	    10\   │3
//	       \  │
//	          C
//
//	the cheapest route A→C is A→B→C with cost 8, not the direct edge.
//
// The interactive front-end lives in cmd/cityway: a build phase accepting
// edge triples, then a query phase answering "start goal" and "all" requests.
//
//	go get github.com/dmkhr/cityway
package cityway
