// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Nodes() in declaration order, Referenced() in first-reference order,
//     Neighbors()/Edges() in insertion order.
// Concurrency:
//   - The Graph is immutable after Build; no locks are taken and every
//     returned slice is an independent copy.

package core

// Nodes returns the declared node IDs in declaration order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// HasNode reports whether id was declared.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.declared[id]

	return ok
}

// Contains reports whether id is known to the graph at all: declared, or
// referenced by any edge. Searches return empty results for unknown IDs.
// Complexity: O(1).
func (g *Graph) Contains(id string) bool {
	if _, ok := g.declared[id]; ok {
		return true
	}
	_, ok := g.refSet[id]

	return ok
}

// Referenced returns every node that appears as an edge endpoint (either
// side), in order of first reference.
// Complexity: O(R).
func (g *Graph) Referenced() []string {
	out := make([]string, len(g.referenced))
	copy(out, g.referenced)

	return out
}

// Neighbors returns the outgoing edges of id in insertion order.
// Unknown IDs and sinks yield nil.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Edge {
	src := g.adjacency[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// OutDegree returns the number of outgoing edges of id.
func (g *Graph) OutDegree(id string) int {
	return len(g.adjacency[id])
}

// Edges returns every edge grouped by source. Sources appear in declaration
// order first, then undeclared sources in first-reference order.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	seen := make(map[string]struct{}, len(g.adjacency))
	for _, id := range g.nodes {
		seen[id] = struct{}{}
		out = append(out, g.adjacency[id]...)
	}
	for _, id := range g.referenced {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// NodeCount returns the number of declared nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool { return g.allowLoops }

// Stats produces a read-only snapshot of counts for diagnostics.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		NodeCount:       len(g.nodes),
		EdgeCount:       g.edgeCount,
		ReferencedCount: len(g.referenced),
		AllowsLoops:     g.allowLoops,
	}
	for _, id := range g.nodes {
		if len(g.adjacency[id]) == 0 {
			stats.SinkCount++
		}
	}
	for _, edges := range g.adjacency {
		for _, e := range edges {
			if e.From == e.To {
				stats.LoopCount++
			}
		}
	}

	return stats
}
