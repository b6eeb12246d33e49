package bfs_test

import (
	"testing"

	"github.com/kevinlinxc/pokerogue-biomes/bfs"
	"github.com/kevinlinxc/pokerogue-biomes/builder"
)

// BenchmarkShortestPaths_Biomes measures a typical route query on the
// embedded biome graph.
func BenchmarkShortestPaths_Biomes(b *testing.B) {
	g := biomes(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPaths(g, "Town", "Space")
	}
}

// BenchmarkShortestCycles_Biomes measures a cycle query with two tied answers.
func BenchmarkShortestCycles_Biomes(b *testing.B) {
	g := biomes(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestCycles(g, "Mountain")
	}
}

// BenchmarkShortestPaths_Complete64 measures enumeration on a dense digraph.
func BenchmarkShortestPaths_Complete64(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(64))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPaths(g, "0", "63")
	}
}
