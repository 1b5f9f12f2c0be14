// File: line.go
// Role: line-based triple parsing: ParseLine, LineSource, SliceSource, and
//       the Build helper feeding a Source into a Graph.

package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmkhr/cityway/core"
)

// ParseLine validates one "nodeA nodeB weight" line.
//
// Steps:
//  1. Split on whitespace; exactly three tokens required.
//  2. Parse the weight as a base-10 integer.
//  3. Reject negative weights.
func ParseLine(line string) (Triple, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Triple{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	weight, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || weight < 0 {
		return Triple{}, fmt.Errorf("%w: %q", ErrBadWeight, fields[2])
	}

	return Triple{A: fields[0], B: fields[1], Weight: weight}, nil
}

// LineSource streams triples from line-oriented input, one validated triple
// per Next call. The stream ends at EOF or at the stop word; malformed
// lines surface their error without ending the stream.
type LineSource struct {
	sc   *bufio.Scanner
	done bool
}

// NewLineSource wraps r in a line-oriented triple source.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{sc: bufio.NewScanner(r)}
}

// Next returns the next validated triple, io.EOF at end of stream, or a
// recoverable parse error for the current line.
func (s *LineSource) Next() (Triple, error) {
	if s.done {
		return Triple{}, io.EOF
	}
	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, StopWord) {
			s.done = true

			return Triple{}, io.EOF
		}

		return ParseLine(line)
	}

	s.done = true
	if err := s.sc.Err(); err != nil {
		return Triple{}, err
	}

	return Triple{}, io.EOF
}

// SliceSource replays a fixed set of triples. It is the test driver: cores
// are exercised with in-memory triples, never through text parsing.
type SliceSource struct {
	triples []Triple
	next    int
}

// NewSliceSource returns a Source over the given triples.
func NewSliceSource(triples ...Triple) *SliceSource {
	return &SliceSource{triples: triples}
}

// Next returns the next triple or io.EOF once exhausted.
func (s *SliceSource) Next() (Triple, error) {
	if s.next >= len(s.triples) {
		return Triple{}, io.EOF
	}
	t := s.triples[s.next]
	s.next++

	return t, nil
}

// Build drains src into g. It returns the number of edges inserted and the
// recoverable errors encountered along the way (malformed items, duplicate
// edges); no single bad item aborts the run.
func Build(g *core.Graph, src Source) (int, []error) {
	var added int
	var errs []error
	for {
		t, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = g.AddEdge(t.A, t.B, t.Weight); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}

	return added, errs
}
