// Package dfs implements recursive depth-first traversal over the outgoing
// edges of a core.Graph. The validator uses it for the reachability check.
//
// What:
//
//   - DFS(g, startID, opts...) explores as far as possible along each branch
//     before backtracking, following Neighbors() in insertion order.
//   - Pre-order (OnVisit) and post-order (OnExit) hooks; a hook error aborts.
//   - Depth limiting, neighbor filtering, forest traversal, cancellation.
//
// Why:
//
//   - Reachability from a root is the second half of graph validation: every
//     declared node not visited from the root is unreachable.
//   - Probabilities play no part in reachability; any edge with p > 0 is traversable.
//
// Key Types:
//
//   - Option / Options: functional options (DefaultOptions, WithContext,
//     WithOnVisit, WithOnExit, WithMaxDepth, WithFilterNeighbor, WithFullTraversal)
//   - Result: post-order, pre-order, Depth, Parent, Visited, SkippedNeighbors
//
// Complexity:
//
//   - Time O(V+E), Memory O(V). Recursion depth is bounded by the longest
//     simple path, which is tiny for configuration-sized graphs.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrStartNodeNotFound  start node unknown to the graph
//   - context.Canceled      traversal canceled via context
//   - hook errors           propagated from OnVisit or OnExit
package dfs
