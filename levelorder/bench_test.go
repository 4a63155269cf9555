package levelorder_test

import (
	"testing"

	"github.com/katalvlaran/lvltree/levelorder"
	"github.com/katalvlaran/lvltree/tree"
)

// benchComplete builds a perfect binary tree of the given height.
func benchComplete(levels int) *tree.Node {
	n := (1 << levels) - 1
	nodes := make([]*tree.Node, n+1)
	for i := 1; i <= n; i++ {
		nodes[i] = tree.NewNode(int64(i))
	}
	for i := 1; 2*i+1 <= n; i++ {
		nodes[i].Left = nodes[2*i]
		nodes[i].Right = nodes[2*i+1]
	}

	return nodes[1]
}

// benchSpine builds a degenerate left-only chain of n nodes — the worst
// case for RescanPerLevel (h == n).
func benchSpine(n int) *tree.Node {
	root := tree.NewNode(1)
	cur := root
	for i := 2; i <= n; i++ {
		cur.Left = tree.NewNode(int64(i))
		cur = cur.Left
	}

	return root
}

// BenchmarkLevelOrder_Rescan_Complete measures the per-level rescan on a
// bushy tree, where h = log n keeps the rescan overhead mild.
func BenchmarkLevelOrder_Rescan_Complete(b *testing.B) {
	root := benchComplete(10) // 1023 nodes, height 10

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = levelorder.LevelOrder(root)
	}
}

// BenchmarkLevelOrder_Queue_Complete measures the FIFO pass on the same tree.
func BenchmarkLevelOrder_Queue_Complete(b *testing.B) {
	root := benchComplete(10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = levelorder.LevelOrder(root, levelorder.WithStrategy(levelorder.QueueScan))
	}
}

// BenchmarkLevelOrder_Rescan_Spine exposes the O(n·h) cost of the rescan
// strategy on a chain, where every level re-walks the whole prefix.
func BenchmarkLevelOrder_Rescan_Spine(b *testing.B) {
	root := benchSpine(512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = levelorder.LevelOrder(root)
	}
}

// BenchmarkLevelOrder_Queue_Spine shows the queue strategy staying O(n)
// on the same degenerate chain.
func BenchmarkLevelOrder_Queue_Spine(b *testing.B) {
	root := benchSpine(512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = levelorder.LevelOrder(root, levelorder.WithStrategy(levelorder.QueueScan))
	}
}
