// SPDX-License-Identifier: MIT

package likeliest

import (
	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// candidate is one queued partial path. Paths share prefixes through
// parent links and are materialized only for the winner.
type candidate struct {
	id          string
	probability float64 // probability of the edge into id
	cum         float64
	hops        int
	parent      *candidate
}

// stateKey identifies the relaxation state of a node. hops stays 0 unless a
// hop limit is set.
type stateKey struct {
	id   string
	hops int
}

// runner holds the mutable state of one search.
type runner struct {
	g       *core.Graph
	options Options
	target  string
	best    map[stateKey]float64
	queue   []*candidate
	result  *candidate
}

// LikeliestPath returns at most one path from source to destination that
// maximizes the product of edge probabilities. Ties on probability go to the
// path with fewer hops, then to the first one discovered.
//
// Candidates are processed in FIFO order. A node is re-enqueued whenever a
// strictly higher cumulative probability reaches it; candidates that were
// overtaken while queued are skipped on dequeue. The destination is recorded
// but never expanded. Termination follows from probabilities in (0,1]: no
// cycle can raise a cumulative probability, so every node improves finitely often.
//
// source == destination yields [source] (probability 1 beats any cycle).
// Unknown endpoints or an unreachable destination yield an empty slice.
//
// Errors: ErrGraphNil, ErrOptionViolation.
//
// Complexity: O(V·E) relaxations in the worst case; tiny on configuration-sized graphs.
func LikeliestPath(g *core.Graph, source, destination string, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.Contains(source) || !g.Contains(destination) {
		return []core.Path{}, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		target:  destination,
		best:    make(map[stateKey]float64, g.NodeCount()),
		queue:   make([]*candidate, 0, g.NodeCount()),
	}
	r.init(source)
	r.process()

	if r.result == nil {
		return []core.Path{}, nil
	}

	return []core.Path{r.result.path()}, nil
}

// init seeds the queue with the zero-hop candidate at source.
func (r *runner) init(source string) {
	start := &candidate{id: source, cum: 1}
	r.best[r.key(start.id, 0)] = 1
	r.queue = append(r.queue, start)
}

// process drains the queue; there is no early exit because a later, longer
// path may still be likelier.
func (r *runner) process() {
	for len(r.queue) > 0 {
		c := r.queue[0]
		r.queue = r.queue[1:]

		if c.cum < r.best[r.key(c.id, c.hops)] {
			continue
		}
		if c.id == r.target {
			r.record(c)
			continue
		}
		if r.options.MaxHops > 0 && c.hops >= r.options.MaxHops {
			continue
		}
		r.relax(c)
	}
}

// record keeps c if it beats the current result.
func (r *runner) record(c *candidate) {
	switch {
	case r.result == nil:
	case c.cum > r.result.cum:
	case c.cum == r.result.cum && c.hops < r.result.hops:
	default:
		return
	}
	r.result = c
}

// relax enqueues every neighbor whose best cumulative probability improves.
func (r *runner) relax(c *candidate) {
	for _, e := range r.g.Neighbors(c.id) {
		next := c.cum * e.Probability
		if next < r.options.MinProbability {
			continue
		}
		k := r.key(e.To, c.hops+1)
		if prev, seen := r.best[k]; seen && next <= prev {
			continue
		}
		r.best[k] = next
		r.options.OnRelax(e.To, next, c.hops+1)
		r.queue = append(r.queue, &candidate{
			id:          e.To,
			probability: e.Probability,
			cum:         next,
			hops:        c.hops + 1,
			parent:      c,
		})
	}
}

func (r *runner) key(id string, hops int) stateKey {
	if r.options.MaxHops == 0 {
		return stateKey{id: id}
	}

	return stateKey{id: id, hops: hops}
}

// path materializes the candidate chain from the source.
func (c *candidate) path() core.Path {
	n := c.hops + 1
	nodes := make([]string, n)
	probs := make([]float64, n-1)
	for cur, i := c, n-1; cur != nil; cur, i = cur.parent, i-1 {
		nodes[i] = cur.id
		if i > 0 {
			probs[i-1] = cur.probability
		}
	}

	return core.Path{Nodes: nodes, Probabilities: probs}
}
