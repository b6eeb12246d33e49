// Package route is the query façade over the biome searches.
//
// A Query names a Mode (route or cycle), a Criterion (shortest or likeliest),
// a Source and, in route mode, a Destination. Query.Strategy resolves it:
//
//	mode   criterion  strategy
//	-----  ---------  ----------------------------------------------
//	any    any        StrategyNone when Source is empty, or Destination
//	                  is empty in route mode; nothing runs
//	route  shortest   StrategyShortestRoute   (bfs.ShortestPaths)
//	route  likeliest  StrategyLikeliestRoute  (likeliest.LikeliestPath)
//	cycle  shortest   StrategyShortestCycle   (bfs.ShortestCycles)
//	cycle  likeliest  StrategyUnsupported     (runs as shortest cycle)
//
// No likeliest-cycle search exists. The engine substitutes the shortest cycle
// and flags it with Result.Substituted; Strategy.Supported lets a caller
// relabel the option up front.
//
// Unsatisfiable queries are not errors: Execute returns an empty, non-nil
// Result.Paths. Errors mean misuse: ErrUnknownMode or ErrUnknownCriterion for
// enum values out of range, or an option error from the underlying search.
//
// Each Execute call gets a uuid (Result.ID) that tags its "route.Execute"
// span and its debug log lines. Metrics: route_queries_total and
// route_query_duration_seconds, both labelled by effective strategy and
// outcome (found, empty, error).
package route
