// Package ingest supplies validated (nodeA, nodeB, weight) triples to the
// graph layer, decoupling it from any particular input medium.
//
// A Source is a lazy, finite stream of triples:
//
//   - LineSource reads whitespace-separated "nodeA nodeB weight" lines from
//     an io.Reader; the stop word "exit" (case-insensitive) ends the stream,
//     blank lines are skipped, and a malformed line surfaces its error while
//     the stream keeps going — the caller reports and reads on.
//   - SliceSource replays in-memory triples; tests drive the core with it
//     directly, never through text parsing.
//   - LoadFile parses a whole TOML or YAML edge document into triples for
//     preloading a graph before the interactive phase.
//
// Build feeds a Source into a core.Graph, counting insertions and
// collecting recoverable errors (malformed lines, duplicate edges) without
// aborting the run.
//
// Errors (sentinel, gate with errors.Is):
//
//	ErrMalformedLine  - wrong token count in a line.
//	ErrBadWeight      - non-numeric or negative weight token.
//	ErrUnknownFormat  - file extension is neither TOML nor YAML.
package ingest
