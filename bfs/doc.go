// Package bfs implements the minimum-hop searches of the route engine:
// ShortestPaths between two nodes and ShortestCycles through a start node.
//
// What:
//
//   - Level-order traversal of outgoing edges in insertion order; nodes are
//     marked visited on first enqueue.
//   - Every node keeps an ordered predecessor set: the parent that discovered
//     it plus every later parent at the same depth. Backtracking through these
//     sets enumerates every tied minimal path, in discovery order.
//   - WithFirstPredecessorOnly keeps only the discovering parent, which yields
//     at most one path (the first one found).
//   - Probabilities are carried along for display; they never influence the search.
//
// Why:
//
//   - "How do I get there in the fewest biome transitions?" is a pure hop-count
//     question; probability is the business of the likeliest package.
//
// Options:
//
//   - WithMaxDepth(d)            limit returned paths to d hops (0 = none).
//   - WithOnEnqueue(fn)          hook on first discovery.
//   - WithOnDequeue(fn)          hook before expansion.
//   - WithFilterNeighbor(fn)     skip edges curr→neighbor.
//   - WithFirstPredecessorOnly() single-path mode.
//
// Complexity:
//
//   - Time O(V+E) for the walk plus O(k·L) to materialize k paths of length L.
//   - Memory O(V+E) for depths and predecessor sets.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrOptionViolation    invalid option (e.g. negative MaxDepth)
//
// Unknown nodes and unsatisfiable queries are not errors: they yield an empty slice.
package bfs
