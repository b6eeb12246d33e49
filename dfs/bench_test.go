package dfs_test

import (
	"testing"

	"github.com/kevinlinxc/pokerogue-biomes/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,000 nodes.
// Complexity: each traversal is O(V+E).
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}
