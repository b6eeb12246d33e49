// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// predecessor is one incoming edge on a minimal path: the node it comes
// from and the probability of the edge.
type predecessor struct {
	id          string
	probability float64
}

// walker encapsulates mutable BFS state for a single search.
type walker struct {
	graph *core.Graph
	opts  Options
	start string
	queue []queueItem
	depth map[string]int
	preds map[string][]predecessor
	memo  map[string][]core.Path
}

func newWalker(g *core.Graph, o Options, start string) *walker {
	n := g.NodeCount()

	return &walker{
		graph: g,
		opts:  o,
		start: start,
		queue: make([]queueItem, 0, n),
		depth: make(map[string]int, n),
		preds: make(map[string][]predecessor, n),
		memo:  make(map[string][]core.Path),
	}
}

// ShortestPaths returns every minimum-hop path from source to destination,
// each carrying the probability of every edge taken.
//
// Nodes are marked visited on first enqueue. A node reached again at the
// same depth from a different parent gains that parent as an additional
// predecessor, so all tied minimal paths are enumerated; see
// WithFirstPredecessorOnly for the single-path variant. The walk stops once
// the destination's layer is complete.
//
// source == destination yields the single zero-hop path [source]. Unknown
// endpoints or an unreachable destination yield an empty, non-nil slice.
//
// Errors: ErrGraphNil, ErrOptionViolation.
//
// Complexity: O(V+E) for the walk, plus the size of the output.
func ShortestPaths(g *core.Graph, source, destination string, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.Contains(source) || !g.Contains(destination) {
		return []core.Path{}, nil
	}
	if source == destination {
		return []core.Path{core.NewPath(source)}, nil
	}

	w := newWalker(g, o, source)
	w.enqueue(source, 0)
	found := -1
	for len(w.queue) > 0 {
		item := w.dequeue()
		// level order: once the destination's layer is reached nothing
		// shorter or equal can follow.
		if found >= 0 && item.depth >= found {
			break
		}
		if w.atLimit(item) {
			continue
		}
		for _, e := range w.graph.Neighbors(item.id) {
			if !w.opts.FilterNeighbor(item.id, e.To) {
				continue
			}
			w.relax(item, e)
			if e.To == destination && found < 0 {
				found = item.depth + 1
			}
		}
	}
	if found < 0 {
		return []core.Path{}, nil
	}

	return w.pathsTo(destination), nil
}

// enqueue records depth d for id, calls OnEnqueue and appends to the queue.
func (w *walker) enqueue(id string, d int) {
	w.depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// atLimit reports whether expanding item would exceed MaxDepth.
func (w *walker) atLimit(item queueItem) bool {
	return w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth
}

// relax handles the edge item→e.To: first discovery enqueues the node,
// a rediscovery at the same depth adds a tied predecessor.
func (w *walker) relax(item queueItem, e core.Edge) {
	next := item.depth + 1
	d, seen := w.depth[e.To]
	switch {
	case !seen:
		w.preds[e.To] = []predecessor{{id: item.id, probability: e.Probability}}
		w.enqueue(e.To, next)
	case d == next && !w.opts.FirstPredecessorOnly:
		w.preds[e.To] = append(w.preds[e.To], predecessor{id: item.id, probability: e.Probability})
	}
}

// pathsTo enumerates every minimal path from the start to id by walking the
// predecessor sets in discovery order. Results are memoized per node;
// Extend copies, so shared prefixes are never aliased.
func (w *walker) pathsTo(id string) []core.Path {
	if id == w.start {
		return []core.Path{core.NewPath(id)}
	}
	if cached, ok := w.memo[id]; ok {
		return cached
	}
	var out []core.Path
	for _, p := range w.preds[id] {
		for _, prefix := range w.pathsTo(p.id) {
			out = append(out, prefix.Extend(id, p.probability))
		}
	}
	w.memo[id] = out

	return out
}
