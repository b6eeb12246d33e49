package likeliest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinlinxc/pokerogue-biomes/builder"
	"github.com/kevinlinxc/pokerogue-biomes/catalog"
	"github.com/kevinlinxc/pokerogue-biomes/core"
	"github.com/kevinlinxc/pokerogue-biomes/likeliest"
)

type edge struct {
	from, to string
	p        float64
}

func buildGraph(t testing.TB, edges ...edge) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddNodes(e.from, e.to))
		require.NoError(t, b.AddEdge(e.from, e.to, e.p))
	}

	return b.Build()
}

// scenario: A→B 1.0, B→C 0.5, B→D 1.0, D→C 1.0.
func scenario(t testing.TB) *core.Graph {
	return buildGraph(t,
		edge{"A", "B", 1.0},
		edge{"B", "C", 0.5},
		edge{"B", "D", 1.0},
		edge{"D", "C", 1.0},
	)
}

func biomes(t testing.TB) *core.Graph {
	t.Helper()
	c, err := catalog.Default(context.Background())
	require.NoError(t, err)

	return c.Graph
}

func TestLikeliestPath_Errors(t *testing.T) {
	_, err := likeliest.LikeliestPath(nil, "A", "B")
	assert.ErrorIs(t, err, likeliest.ErrGraphNil)

	_, err = likeliest.LikeliestPath(scenario(t), "A", "C", likeliest.WithMaxHops(-1))
	assert.ErrorIs(t, err, likeliest.ErrOptionViolation)

	_, err = likeliest.LikeliestPath(scenario(t), "A", "C", likeliest.WithMinProbability(1.5))
	assert.ErrorIs(t, err, likeliest.ErrOptionViolation)
}

func TestLikeliestPath_Scenario(t *testing.T) {
	paths, err := likeliest.LikeliestPath(scenario(t), "A", "C")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "B", "D", "C"}, paths[0].Nodes)
	assert.Equal(t, []float64{1, 1, 1}, paths[0].Probabilities)
	assert.Equal(t, 1.0, paths[0].Probability())
}

func TestLikeliestPath_TieGoesToFewerHops(t *testing.T) {
	g := buildGraph(t,
		edge{"A", "B", 1},
		edge{"B", "C", 1},
		edge{"A", "C", 1},
	)
	paths, err := likeliest.LikeliestPath(g, "A", "C")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "C"}, paths[0].Nodes)
}

func TestLikeliestPath_ZeroHop(t *testing.T) {
	g := buildGraph(t, edge{"A", "B", 1}, edge{"B", "A", 1})
	paths, err := likeliest.LikeliestPath(g, "A", "A")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A"}, paths[0].Nodes)
	assert.Empty(t, paths[0].Probabilities)
}

func TestLikeliestPath_EmptyResults(t *testing.T) {
	g := scenario(t)
	for _, q := range [][2]string{{"Z", "C"}, {"A", "Z"}, {"C", "A"}} {
		paths, err := likeliest.LikeliestPath(g, q[0], q[1])
		require.NoError(t, err)
		assert.NotNil(t, paths)
		assert.Empty(t, paths, q)
	}
}

func TestLikeliestPath_LowProbabilityCycleTerminates(t *testing.T) {
	g := buildGraph(t,
		edge{"A", "B", 0.5},
		edge{"B", "A", 0.5},
		edge{"B", "C", 0.33},
	)
	paths, err := likeliest.LikeliestPath(g, "A", "C")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "B", "C"}, paths[0].Nodes)
}

func TestLikeliestPath_CertainCycleTerminates(t *testing.T) {
	g := buildGraph(t,
		edge{"A", "B", 1},
		edge{"B", "C", 1},
		edge{"C", "A", 1},
		edge{"C", "D", 0.5},
	)
	paths, err := likeliest.LikeliestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, paths[0].Nodes)
}

func TestLikeliestPath_MaxHops(t *testing.T) {
	g := scenario(t)

	paths, err := likeliest.LikeliestPath(g, "A", "C", likeliest.WithMaxHops(2))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "B", "C"}, paths[0].Nodes)

	paths, err = likeliest.LikeliestPath(g, "A", "C", likeliest.WithMaxHops(1))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLikeliestPath_MinProbability(t *testing.T) {
	g := buildGraph(t, edge{"A", "B", 0.5}, edge{"B", "C", 0.5})

	paths, err := likeliest.LikeliestPath(g, "A", "C", likeliest.WithMinProbability(0.3))
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = likeliest.LikeliestPath(g, "A", "C", likeliest.WithMinProbability(0.25))
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestLikeliestPath_OnRelax(t *testing.T) {
	var relaxed []string
	_, err := likeliest.LikeliestPath(scenario(t), "A", "C",
		likeliest.WithOnRelax(func(id string, _ float64, _ int) { relaxed = append(relaxed, id) }))
	require.NoError(t, err)
	// C is first reached at 0.5, then improved to 1.0 via D.
	assert.Equal(t, []string{"B", "C", "D", "C"}, relaxed)
}

func TestLikeliestPath_Biomes(t *testing.T) {
	g := biomes(t)
	cases := []struct {
		src, dst string
		want     []string
		prob     float64
	}{
		{"Town", "Volcano", []string{"Town", "Plains", "Grassy Field", "Tall Grass", "Cave", "Badlands", "Mountain", "Volcano"}, 1},
		{"Town", "Temple", []string{"Town", "Plains", "Grassy Field", "Tall Grass", "Forest", "Jungle", "Temple"}, 1},
		{"Town", "Space", []string{"Town", "Plains", "Lake", "Swamp", "Graveyard", "Abyss", "Space"}, 0.5},
		{"Town", "Island", []string{"Town", "Plains", "Lake", "Beach", "Island"}, 0.5},
		{"Town", "Town", []string{"Town"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.src+"->"+tc.dst, func(t *testing.T) {
			paths, err := likeliest.LikeliestPath(g, tc.src, tc.dst)
			require.NoError(t, err)
			require.Len(t, paths, 1)
			assert.Equal(t, tc.want, paths[0].Nodes)
			assert.Equal(t, tc.prob, paths[0].Probability())
		})
	}
}

// TestLikeliestPath_MatchesBruteForce compares against exhaustive enumeration
// of simple paths on seeded random graphs.
func TestLikeliestPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithProbabilityFn(builder.DiscreteProbabilityFn(1, 0.5, 0.33)),
			},
			builder.RandomSparse(9, 0.3))
		require.NoError(t, err)

		for _, maxHops := range []int{0, 3} {
			for _, dst := range g.Nodes()[1:] {
				wantProb, wantHops, ok := bruteForce(g, "0", dst, maxHops)
				paths, err := likeliest.LikeliestPath(g, "0", dst, likeliest.WithMaxHops(maxHops))
				require.NoError(t, err)
				if !ok {
					assert.Empty(t, paths, "seed=%d dst=%s", seed, dst)
					continue
				}
				require.Len(t, paths, 1, "seed=%d dst=%s", seed, dst)
				assert.Equal(t, wantProb, paths[0].Probability(), "seed=%d dst=%s", seed, dst)
				assert.Equal(t, wantHops, paths[0].Hops(), "seed=%d dst=%s", seed, dst)
			}
		}
	}
}

// bruteForce returns the best (probability, hops) over all simple paths.
func bruteForce(g *core.Graph, src, dst string, maxHops int) (float64, int, bool) {
	bestP, bestH, found := 0.0, 0, false
	onPath := map[string]bool{src: true}
	var walk func(id string, cum float64, hops int)
	walk = func(id string, cum float64, hops int) {
		if id == dst {
			if !found || cum > bestP || (cum == bestP && hops < bestH) {
				bestP, bestH, found = cum, hops, true
			}
			return
		}
		if maxHops > 0 && hops >= maxHops {
			return
		}
		for _, e := range g.Neighbors(id) {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			walk(e.To, cum*e.Probability, hops+1)
			onPath[e.To] = false
		}
	}
	walk(src, 1, 0)

	return bestP, bestH, found
}
