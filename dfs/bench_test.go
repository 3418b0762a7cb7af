package dfs_test

import (
	"testing"

	"github.com/katalvlaran/grough/dfs"
)

// BenchmarkComponent_Tree walks a complete binary tree of depth 12.
func BenchmarkComponent_Tree(b *testing.B) {
	g := buildBinaryTree(12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Component(g, 1)
	}
}
