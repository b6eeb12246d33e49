package core

import (
	"strings"
)

// Path is an ordered node sequence with the probability of every edge
// taken: Probabilities[i] belongs to the edge Nodes[i]→Nodes[i+1].
//
// Paths are values created fresh per query; Extend copies, so prefixes
// shared during path reconstruction are never aliased.
type Path struct {
	Nodes         []string  `json:"nodes"`
	Probabilities []float64 `json:"probabilities"`
}

// NewPath returns the zero-hop path [start].
func NewPath(start string) Path {
	return Path{Nodes: []string{start}, Probabilities: []float64{}}
}

// Extend returns a new Path with the edge End()→to appended.
func (p Path) Extend(to string, probability float64) Path {
	nodes := make([]string, len(p.Nodes), len(p.Nodes)+1)
	copy(nodes, p.Nodes)
	probs := make([]float64, len(p.Probabilities), len(p.Probabilities)+1)
	copy(probs, p.Probabilities)

	return Path{
		Nodes:         append(nodes, to),
		Probabilities: append(probs, probability),
	}
}

// Len is the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Hops is the number of edges on the path.
func (p Path) Hops() int { return len(p.Probabilities) }

// Start returns the first node, or "" for an empty path.
func (p Path) Start() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[0]
}

// End returns the last node, or "" for an empty path.
func (p Path) End() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[len(p.Nodes)-1]
}

// Probability is the cumulative probability: the product of all edge
// probabilities, multiplied left to right. A zero-hop path has probability 1.
func (p Path) Probability() float64 {
	cum := 1.0
	for _, x := range p.Probabilities {
		cum *= x
	}

	return cum
}

// IsCycle reports whether the path returns to its start after at least one hop.
func (p Path) IsCycle() bool {
	return p.Hops() >= 1 && p.Start() == p.End()
}

// Equal reports whether p and q visit the same nodes with the same probabilities.
func (p Path) Equal(q Path) bool {
	if len(p.Nodes) != len(q.Nodes) || len(p.Probabilities) != len(q.Probabilities) {
		return false
	}
	for i := range p.Nodes {
		if p.Nodes[i] != q.Nodes[i] {
			return false
		}
	}
	for i := range p.Probabilities {
		if p.Probabilities[i] != q.Probabilities[i] {
			return false
		}
	}

	return true
}

// String renders the node sequence as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p.Nodes, " -> ")
}
