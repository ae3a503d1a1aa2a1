// Package paths defines the options and error sentinels used by Count and
// Enumerate.
package paths

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cavepaths/cave"
)

var (
	// ErrGraphNil is returned when a nil *cave.Graph is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrUnknownPolicy is returned for a Policy outside the defined set or an
	// unrecognized policy name.
	ErrUnknownPolicy = errors.New("paths: unknown policy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")

	// ErrSearchBound is returned when recursion goes deeper than any valid path
	// can be. Only an input violating the no Big↔Big edge precondition (or a
	// defect) gets there.
	ErrSearchBound = fmt.Errorf("%w: search depth bound exceeded", cave.ErrInternal)
)

// Option configures optional behavior of Count and Enumerate.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Workers > 1 runs the subtrees below start's neighbors concurrently,
	// at most Workers at a time. Default is 1 (sequential).
	Workers int

	// OnPath, if non-nil, receives every counted path from start to end.
	// The slice is reused after the call returns; copy it to keep it.
	// Calls are serialized even when Workers > 1.
	// Returning an error aborts the search with that error.
	OnPath func(path []cave.NodeID) error

	// CheckReachability answers 0 without searching when end cannot be
	// reached from start at all. Default is true.
	CheckReachability bool

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - sequential search (Workers = 1)
//   - no path hook
//   - reachability pre-check enabled
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Workers:           1,
		OnPath:            nil,
		CheckReachability: true,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that bounds first-level parallelism.
// n < 1 is recorded and surfaced as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnPath returns an Option that installs fn as the per-path hook.
func WithOnPath(fn func(path []cave.NodeID) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithoutReachabilityCheck disables the BFS pre-check, forcing a full search
// even when end is unreachable.
func WithoutReachabilityCheck() Option {
	return func(o *Options) {
		o.CheckReachability = false
	}
}
