// File: types.go
// Role: Triple value, Source interface, sentinel errors, stop word.

package ingest

import "errors"

// StopWord ends an interactive line stream (matched case-insensitively).
const StopWord = "exit"

// Sentinel errors for input validation.
var (
	// ErrMalformedLine indicates a line that does not split into exactly
	// three tokens. The wrapped message carries the offending line.
	ErrMalformedLine = errors.New("ingest: expected format: nodeA nodeB weight")

	// ErrBadWeight indicates a weight token that is not a non-negative
	// integer.
	ErrBadWeight = errors.New("ingest: weight must be a non-negative integer")

	// ErrUnknownFormat indicates a file whose extension maps to no
	// supported edge-document format.
	ErrUnknownFormat = errors.New("ingest: unknown edge file format")
)

// Triple is one validated edge insertion request.
type Triple struct {
	A      string
	B      string
	Weight int64
}

// Source yields triples one at a time. Next returns io.EOF once the stream
// is exhausted; any other error describes the current item only, and the
// caller may keep reading.
type Source interface {
	Next() (Triple, error)
}
