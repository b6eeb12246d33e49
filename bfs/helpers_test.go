package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kevinlinxc/pokerogue-biomes/builder"
	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// randomGraph returns a seeded 12-node random digraph whose probabilities
// come from the game's discrete set, so ties are common.
func randomGraph(t testing.TB, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithPrefixIDs("N"),
			builder.WithProbabilityFn(builder.DiscreteProbabilityFn(1, 0.5, 0.33)),
		},
		builder.RandomSparse(12, 0.2))
	require.NoError(t, err)

	return g
}
