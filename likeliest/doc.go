// Package likeliest implements the maximum-probability route search.
//
// What:
//
//   - LikeliestPath(g, source, destination, opts...) returns the path whose
//     product of edge probabilities is highest, ties going to fewer hops.
//   - Breadth-first relaxation: a FIFO queue of candidates, a node re-enqueued
//     on every strict improvement of its best cumulative probability, stale
//     candidates skipped on dequeue, the destination never expanded.
//
// Why not Dijkstra on -log(p)?
//
//   - The search must break exact probability ties by hop count and report the
//     raw per-edge probabilities. Working directly on products keeps both exact
//     for the small discrete probability set of the game data (1, 0.5, 0.33),
//     where equal products are reproducible bit for bit.
//
// Options:
//
//   - WithMaxHops(n)          at most n edges (0 = none); exact under the limit.
//   - WithMinProbability(p)   prune candidates below p.
//   - WithOnRelax(fn)         hook on every strict improvement.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrOptionViolation   invalid option value
//
// Unknown nodes and unreachable destinations are not errors: the result is empty.
package likeliest
