// Package core provides the immutable, probability-weighted directed graph
// that every search in this module runs over, plus the Path value the
// searches return.
//
// The Graph G = (V,E):
//
//   - V is the declared node set, kept in declaration order.
//   - E is a per-source ordered list of edges From→To with Probability in (0,1].
//   - Probabilities multiply along a path; they are never summed as costs.
//   - Edges are directed; A→B says nothing about B→A.
//
// Why a Builder?
//
//   - The graph is static game data: built once, validated once, searched many times.
//   - Build seals the data, so searches may share one *Graph across goroutines
//     without locks (no shared mutable state).
//   - Edge endpoints need not be declared at construction. A dangling endpoint
//     is a data-quality defect that the validate package reports, rather than
//     a construction error that would hide the rest of the diagnostics.
//
// Construction rules (Builder):
//
//	AddNode(id string) error                       // O(1), idempotent
//	AddEdge(from, to string, p float64) error      // O(deg(from))
//	Build() *Graph                                 // seals the builder
//
// Queries (Graph):
//
//	Nodes() []string           // declaration order
//	HasNode(id) bool           // declared?
//	Contains(id) bool          // declared or referenced by an edge?
//	Referenced() []string      // every edge endpoint, first-reference order
//	Neighbors(id) []Edge       // outgoing edges, insertion order
//	Edges() []Edge             // grouped by source
//	Stats() GraphStats
//
// Errors:
//
//	ErrEmptyNodeID         – zero-length node ID
//	ErrBadProbability      – probability outside (0,1] (NaN included)
//	ErrLoopNotAllowed      – self-loop without WithLoops()
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
//	ErrBuilderSealed       – AddNode/AddEdge after Build
//
// Rejecting probabilities above 1 keeps every relaxation-based search
// terminating: no cycle can raise a cumulative probability.
package core
