// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"log/slog"

	"github.com/kevinlinxc/pokerogue-biomes/core"
	"github.com/kevinlinxc/pokerogue-biomes/dfs"
)

// ErrGraphNil is returned when Validate receives a nil graph.
var ErrGraphNil = errors.New("validate: graph is nil")

// Kind classifies a single validation finding.
type Kind int

const (
	// KindUndeclared marks a node referenced by an edge but never declared.
	KindUndeclared Kind = iota + 1
	// KindUnreferenced marks a declared node no edge touches.
	KindUnreferenced
	// KindUnknownRoot marks a root the graph does not know.
	KindUnknownRoot
	// KindUnreachable marks a declared node not reachable from the root.
	KindUnreachable
)

// String returns the lower-case name used in logs and JSON output.
func (k Kind) String() string {
	switch k {
	case KindUndeclared:
		return "undeclared"
	case KindUnreferenced:
		return "unreferenced"
	case KindUnknownRoot:
		return "unknown_root"
	case KindUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind render by name in JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Violation is one offending node.
type Violation struct {
	Kind Kind   `json:"kind"`
	Node string `json:"node"`
}

// Report is the outcome of Validate. Valid is true iff Violations is empty.
type Report struct {
	Root       string      `json:"root"`
	Valid      bool        `json:"valid"`
	Visited    int         `json:"visited"`
	Violations []Violation `json:"violations"`
}

// OK reports whether the graph passed both checks.
func (r *Report) OK() bool { return r != nil && r.Valid }

// Nodes returns the offending nodes of kind k in report order.
func (r *Report) Nodes(k Kind) []string {
	var out []string
	for _, v := range r.Violations {
		if v.Kind == k {
			out = append(out, v.Node)
		}
	}

	return out
}

// LogValue groups offending nodes by kind so a single log line carries the
// whole report.
func (r *Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("root", r.Root),
		slog.Bool("valid", r.Valid),
		slog.Int("visited", r.Visited),
	}
	for _, k := range []Kind{KindUndeclared, KindUnreferenced, KindUnknownRoot, KindUnreachable} {
		if nodes := r.Nodes(k); len(nodes) > 0 {
			attrs = append(attrs, slog.Any(k.String(), nodes))
		}
	}

	return slog.GroupValue(attrs...)
}

// Validate checks endpoint closure and reachability from root.
//
// Both checks always run, so a single report lists every defect:
//  1. Closure: every edge endpoint is declared (KindUndeclared, first-reference
//     order) and every declared node is an edge endpoint (KindUnreferenced,
//     declaration order).
//  2. Reachability: a depth-first traversal from root over outgoing edges; every
//     declared node not visited is KindUnreachable (declaration order). An
//     unknown root yields KindUnknownRoot and leaves every declared node unreachable.
//
// Cycles, dead ends and probability values are not inspected.
// A failed validation is not an error; the only error is ErrGraphNil.
//
// Complexity: O(V+E).
func Validate(g *core.Graph, root string) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	rep := &Report{Root: root, Violations: []Violation{}}

	// 1) closure
	for _, id := range g.Referenced() {
		if !g.HasNode(id) {
			rep.Violations = append(rep.Violations, Violation{Kind: KindUndeclared, Node: id})
		}
	}
	referenced := make(map[string]struct{})
	for _, id := range g.Referenced() {
		referenced[id] = struct{}{}
	}
	for _, id := range g.Nodes() {
		if _, ok := referenced[id]; !ok {
			rep.Violations = append(rep.Violations, Violation{Kind: KindUnreferenced, Node: id})
		}
	}

	// 2) reachability
	visited := map[string]bool{}
	res, err := dfs.DFS(g, root)
	switch {
	case errors.Is(err, dfs.ErrStartNodeNotFound):
		rep.Violations = append(rep.Violations, Violation{Kind: KindUnknownRoot, Node: root})
	case err != nil:
		return nil, err
	default:
		visited = res.Visited
		rep.Visited = len(res.Discovery)
	}
	for _, id := range g.Nodes() {
		if !visited[id] {
			rep.Violations = append(rep.Violations, Violation{Kind: KindUnreachable, Node: id})
		}
	}

	rep.Valid = len(rep.Violations) == 0

	return rep, nil
}
