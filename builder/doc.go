// Package builder generates deterministic directed, probability-weighted
// topologies for tests, examples and benchmarks of the route searches.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator. It creates a
//     core.Builder, runs every Constructor in order and seals the graph.
//   - Constructors: Path, Cycle, Star, Complete, RandomSparse.
//   - Node-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, PrefixIDFn.
//   - Edge-probability distributions (ProbabilityFn): DefaultProbabilityFn,
//     ConstantProbabilityFn, UniformProbabilityFn, DiscreteProbabilityFn.
//     All of them stay inside (0,1].
//   - Options: WithIDScheme, WithSeed, WithRand, WithProbabilityFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on programmer errors (nil functions, bad bounds).
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7),
//			builder.WithProbabilityFn(builder.DiscreteProbabilityFn(1, 0.5, 0.33))},
//		builder.RandomSparse(12, 0.2))
package builder
