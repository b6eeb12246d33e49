// Package biomes is the root of the biome route engine: a small library for
// answering "how do I get there" over a fixed, directed, probability-weighted
// graph of game-world biomes.
//
// What is in here?
//
//	core/      - immutable Graph, Builder, Edge and Path values
//	validate/  - endpoint closure and reachability from a root
//	dfs/       - depth-first traversal used by the validator
//	bfs/       - all fewest-hop routes, and fewest-hop cycles
//	likeliest/ - the most probable route, fewer hops on ties
//	route/     - query façade: mode + criterion -> strategy -> search
//	catalog/   - YAML graph documents, with the Pokerogue dataset embedded
//	builder/   - synthetic topologies for tests and benchmarks
//
//	cmd/biomeroute - command line front end
//
// Probabilities are factors in (0,1] multiplied along a path, never costs to
// be summed. Searches are synchronous and pure: they allocate their own
// bookkeeping per call and only read the graph, so one Graph can serve any
// number of concurrent queries.
//
// Quick start:
//
//	c, _ := catalog.Default(ctx)
//	e, _ := route.NewEngine(c.Graph)
//	res, _ := e.Execute(ctx, route.Query{
//		Mode:        route.ModeRoute,
//		Criterion:   route.CriterionLikeliest,
//		Source:      "Town",
//		Destination: "Volcano",
//	})
//	fmt.Println(res.Paths[0]) // Town -> Plains -> ... -> Volcano
package biomes
