package likeliest_test

import (
	"testing"

	"github.com/kevinlinxc/pokerogue-biomes/builder"
	"github.com/kevinlinxc/pokerogue-biomes/likeliest"
)

// BenchmarkLikeliestPath_Biomes measures a query that needs several relaxations.
func BenchmarkLikeliestPath_Biomes(b *testing.B) {
	g := biomes(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = likeliest.LikeliestPath(g, "Town", "Volcano")
	}
}

// BenchmarkLikeliestPath_Random200 measures a sparse random digraph.
func BenchmarkLikeliestPath_Random200(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(3),
			builder.WithProbabilityFn(builder.UniformProbabilityFn(0.1, 1)),
		},
		builder.RandomSparse(200, 0.02))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = likeliest.LikeliestPath(g, "0", "199")
	}
}
