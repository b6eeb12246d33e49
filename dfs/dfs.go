// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID following outgoing
// edges in insertion order. With WithFullTraversal it also covers every
// declared node not reached from startID; startID may then be empty.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrStartNodeNotFound if startID is unknown in single-source mode.
//   - ctx.Err() if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped with the node ID.
//
// Complexity: O(V+E) time, O(V) memory for the recursion stack and maps.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.Contains(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	res := &Result{
		Order:     make([]string, 0, n),
		Discovery: make([]string, 0, n),
		Depth:     make(map[string]int, n),
		Parent:    make(map[string]string, n),
		Visited:   make(map[string]bool, n),
	}
	w := &walker{graph: g, opts: o, res: res}

	if g.Contains(startID) {
		if err := w.traverse(startID, 0); err != nil {
			return res, err
		}
	}
	if o.FullTraversal {
		for _, id := range g.Nodes() {
			if res.Visited[id] {
				continue
			}
			if err := w.traverse(id, 0); err != nil {
				return res, err
			}
		}
	}
	res.SkippedNeighbors = w.opts.skipped

	return res, nil
}

// traverse visits id at depth, then recurses into unvisited neighbors.
func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Discovery = append(w.res.Discovery, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	for _, e := range w.graph.Neighbors(id) {
		if e.To == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.opts.skipped++
			continue
		}
		if w.res.Visited[e.To] {
			continue
		}
		w.res.Parent[e.To] = id
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
