package bfs

import (
	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// ShortestCycles returns every minimum-hop cycle start → … → start with at
// least one hop.
//
// The start is exempt from the visited set: an edge back to it is recorded
// as a closing edge instead of a revisit. All closing edges at the minimal
// length are kept in discovery order and the walk stops before any longer
// cycle could be produced. A self-loop yields [start, start] when the graph
// allows loops.
//
// An unknown start, or a start on no cycle, yields an empty, non-nil slice.
//
// Errors: ErrGraphNil, ErrOptionViolation.
func ShortestCycles(g *core.Graph, start string, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.Contains(start) {
		return []core.Path{}, nil
	}

	w := newWalker(g, o, start)
	w.enqueue(start, 0)
	best := -1
	var closers []predecessor
	for len(w.queue) > 0 {
		item := w.dequeue()
		if best >= 0 && item.depth+1 > best {
			break
		}
		if w.atLimit(item) {
			continue
		}
		for _, e := range w.graph.Neighbors(item.id) {
			if !w.opts.FilterNeighbor(item.id, e.To) {
				continue
			}
			if e.To != start {
				w.relax(item, e)
				continue
			}
			if best < 0 {
				best = item.depth + 1
			}
			if w.opts.FirstPredecessorOnly && len(closers) > 0 {
				continue
			}
			closers = append(closers, predecessor{id: item.id, probability: e.Probability})
		}
	}

	cycles := []core.Path{}
	for _, c := range closers {
		for _, prefix := range w.pathsTo(c.id) {
			cycles = append(cycles, prefix.Extend(start, c.probability))
		}
	}

	return cycles, nil
}
