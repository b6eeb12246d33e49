// Package dfs defines types and options for depth-first traversal over the
// outgoing edges of a core.Graph, including cancellation, pre-/post-order
// hooks, depth limiting, neighbor filtering and forest traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node is unknown to the
	// graph (neither declared nor referenced by any edge).
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before the node is appended to Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides per neighbor whether to descend.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from every unvisited declared node.
	FullTraversal bool

	skipped int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filter and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context checked before each node; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit; 0 visits only the start.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips every neighbor for which fn returns false.
// Skipped neighbors are counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every declared node, restarting from each
// unvisited one in declaration order.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []string

	// Discovery records nodes in the sequence they were first reached (pre-order).
	Discovery []string

	// Depth maps each visited node to its distance (#edges) from its tree root.
	Depth map[string]int

	// Parent maps each visited node to the node it was discovered from.
	// Tree roots are absent.
	Parent map[string]string

	// Visited flags every node reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
