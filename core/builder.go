// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: One-shot construction of an immutable Graph: AddNode/AddEdge/Build.
// Determinism:
//   - Nodes() returns declaration order; Neighbors() returns insertion order.
// Concurrency:
//   - A Builder is not safe for concurrent use; the Graph it returns is.

package core

import "fmt"

// Builder accumulates nodes and edges and seals them into a Graph.
//
// Builder never rejects an edge because an endpoint is undeclared: a graph
// with dangling endpoints is bad data, reported by the validator, not an
// exceptional construction failure.
type Builder struct {
	g     *Graph
	built bool
}

// NewBuilder returns a Builder for a graph configured with opts.
// By default self-loops are rejected.
// Complexity: O(len(opts)).
func NewBuilder(opts ...GraphOption) *Builder {
	return &Builder{g: newGraph(opts...)}
}

// AddNode declares id. Declaring the same id twice is a no-op.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrBuilderSealed if Build was already called.
//
// Complexity: O(1).
func (b *Builder) AddNode(id string) error {
	if b.built {
		return ErrBuilderSealed
	}
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := b.g.declared[id]; ok {
		return nil
	}
	b.g.declared[id] = struct{}{}
	b.g.nodes = append(b.g.nodes, id)

	return nil
}

// AddNodes declares every id in order, stopping at the first error.
func (b *Builder) AddNodes(ids ...string) error {
	for _, id := range ids {
		if err := b.AddNode(id); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge appends the directed edge from→to with probability p to the
// outgoing list of from.
//
// Steps:
//  1. Validate IDs, probability and loop policy.
//  2. Reject a second edge for the same ordered pair.
//  3. Append to adjacency[from] and record both endpoints as referenced.
//
// Errors:
//   - ErrEmptyNodeID, ErrBadProbability, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
//     ErrBuilderSealed.
//
// Complexity: O(deg(from)) for the multi-edge check.
func (b *Builder) AddEdge(from, to string, p float64) error {
	if b.built {
		return ErrBuilderSealed
	}
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	// NaN fails both comparisons, so it is rejected here as well.
	if !(p > 0 && p <= 1) {
		return fmt.Errorf("%w: %s→%s p=%v", ErrBadProbability, from, to, p)
	}
	if from == to && !b.g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	for _, e := range b.g.adjacency[from] {
		if e.To == to {
			return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
		}
	}

	b.g.adjacency[from] = append(b.g.adjacency[from], Edge{From: from, To: to, Probability: p})
	b.g.edgeCount++
	b.g.reference(from)
	b.g.reference(to)

	return nil
}

// Build seals the Builder and returns the Graph. Subsequent mutations
// return ErrBuilderSealed; calling Build again returns the same Graph.
func (b *Builder) Build() *Graph {
	b.built = true

	return b.g
}

// reference records id as an edge endpoint once.
func (g *Graph) reference(id string) {
	if _, ok := g.refSet[id]; ok {
		return
	}
	g.refSet[id] = struct{}{}
	g.referenced = append(g.referenced, id)
}
