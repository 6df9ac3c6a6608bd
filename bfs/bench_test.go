package bfs_test

import (
	"testing"

	"github.com/katalvlaran/spanner/bfs"
	"github.com/katalvlaran/spanner/core"
)

// BenchmarkDistances_Chain measures BFS on a linear chain graph of size N.
func BenchmarkDistances_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N)
	for i := 0; i+1 < N; i++ {
		_ = g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, 0)
	}
}

// BenchmarkDistances_BinaryTree runs BFS on a complete binary tree of depth D.
func BenchmarkDistances_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1

	g, _ := core.NewGraph(nodeCount)
	for i := 0; 2*i+2 < nodeCount; i++ {
		_ = g.AddEdge(i, 2*i+1)
		_ = g.AddEdge(i, 2*i+2)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, 0)
	}
}
