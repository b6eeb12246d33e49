// Package bfs provides tunable options and error definitions for the
// breadth-first route searches over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// OnEnqueue is called when a node is first discovered and enqueued,
	// with its depth (hops) from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before a node is expanded.
	OnDequeue func(id string, depth int)

	// MaxDepth, if > 0, bounds the number of hops of any returned path.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// FirstPredecessorOnly keeps only the first-discovered predecessor of
	// every node (and the first closing edge of a cycle), so at most one
	// path is returned.
	FirstPredecessorOnly bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering,
// no-op hooks and full all-shortest-paths enumeration.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth bounds returned paths to at most d hops.
//
//	d > 0: limit to d hops
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFirstPredecessorOnly marks each node visited once and remembers only
// the predecessor that discovered it. Tied minimal paths through a shared
// intermediate node then collapse to the first one found.
func WithFirstPredecessorOnly() Option {
	return func(o *Options) { o.FirstPredecessorOnly = true }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
