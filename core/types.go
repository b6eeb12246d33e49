// File: types.go
// Role: Edge, Graph, GraphOption and the sentinel errors of graph construction.

package core

import (
	"errors"
)

// Sentinel errors for core graph construction.
var (
	// ErrEmptyNodeID indicates that a node or edge endpoint has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrBadProbability indicates an edge probability outside the half-open interval (0,1].
	ErrBadProbability = errors.New("core: probability must be in (0,1]")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBuilderSealed indicates the Builder was used after Build.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// Edge is a directed, probability-weighted transition From→To.
//
// Probability is the chance this transition is offered when leaving From.
// It is a factor multiplied along a path, never a cost to be summed.
type Edge struct {
	// From is the source node ID.
	From string `json:"from"`

	// To is the destination node ID.
	To string `json:"to"`

	// Probability lies in (0,1].
	Probability float64 `json:"probability"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the immutable directed weighted graph searched by the engine.
//
// nodes keeps declaration order; adjacency keeps per-source insertion order,
// which is the order every search expands neighbors in. Edge endpoints are
// not required to be declared: endpoint closure is checked by the validator.
type Graph struct {
	allowLoops bool // allow self-loops

	nodes    []string            // declared node IDs, declaration order
	declared map[string]struct{} // declared node set

	// referenced holds every edge endpoint, first-reference order.
	referenced []string
	refSet     map[string]struct{}

	// adjacency[from] = outgoing edges in insertion order.
	adjacency map[string][]Edge
	edgeCount int
}

// GraphStats is a read-only summary of a built Graph.
type GraphStats struct {
	NodeCount       int  // declared nodes
	EdgeCount       int  // directed edges
	ReferencedCount int  // distinct edge endpoints
	SinkCount       int  // declared nodes without outgoing edges
	LoopCount       int  // self-loops
	AllowsLoops     bool // loop policy
}

// newGraph allocates an empty Graph and applies options left-to-right.
func newGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		declared:  make(map[string]struct{}),
		refSet:    make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
