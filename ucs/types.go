// Package ucs defines result types, configuration options, and error
// definitions for the uniform-cost search.
package ucs

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("ucs: graph is nil")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative cap,
	// which is not meaningful for a non-negative cost budget.
	ErrBadMaxCost = errors.New("ucs: MaxCost must be non-negative")
)

// Result is the outcome of a single-pair search.
//
// When Found is true, Path holds the node names from start to goal inclusive
// and Cost is the total accumulated weight along it. When Found is false the
// goal is unreachable (or either endpoint is unknown to the graph); Path is
// nil and Cost is zero. Formatting — joining names with an arrow separator,
// printing "no way found" messages — is the caller's concern.
type Result struct {
	Path  []string
	Cost  int64
	Found bool
}

// PairResult couples one unordered pair from an all-pairs run with its
// independently computed Result.
type PairResult struct {
	Start string
	Goal  string
	Result
}

// Options configures a search invocation.
//
// EarlyExit – stop at the first selection of the goal instead of draining
// the frontier. Observably equivalent for strictly positive weights; with
// zero-weight edges the drained search may still only tie, never improve,
// so the optimization is safe either way.
//
// MaxCost – cap on explored cost. Nodes selected with accumulated cost
// above the cap are not expanded; a goal beyond the cap yields a negative
// result. Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	EarlyExit bool
	MaxCost   int64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithEarlyExit stops the search at the first selection of the goal.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithMaxCost caps the accumulated cost the search will explore.
// Callers needing bounded latency treat expiry as a "no way found" outcome.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: drain-to-empty search with no cost cap.
func DefaultOptions() Options {
	return Options{
		EarlyExit: false,
		MaxCost:   math.MaxInt64,
	}
}
