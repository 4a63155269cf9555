// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// impl_complete.go - implementation of Complete(levels) constructor.
//
// Contract:
//   - levels ≥ 1 (else ErrTooFewNodes); the result holds 2^levels - 1 nodes.
//   - Node indices follow heap order: node i (1-based) has children 2i, 2i+1.
//   - Values come from cfg.valueFn(i-1), so the default scheme yields 1..n.
//
// Complexity:
//   - Time: O(2^levels), Space: O(2^levels).
//
// Determinism:
//   - Creation order is strictly ascending heap index; no randomness.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

const (
	methodComplete    = "Complete"
	minCompleteLevels = 1
)

// Complete returns a Constructor that builds a perfect binary tree of
// the given height. Complete(4) with default options is the canonical
// 15-node tree carrying values 1..15.
func Complete(levels int) Constructor {
	return func(cfg builderConfig) (*tree.Node, error) {
		// Validate parameter domain early.
		if levels < minCompleteLevels {
			return nil, fmt.Errorf("%s: levels=%d < min=%d: %w", methodComplete, levels, minCompleteLevels, ErrTooFewNodes)
		}

		n := (1 << levels) - 1
		// 1-based heap index keeps the parent/child arithmetic clean.
		nodes := make([]*tree.Node, n+1)
		for i := 1; i <= n; i++ {
			nodes[i] = tree.NewNode(cfg.valueFn(i - 1))
		}
		for i := 1; 2*i+1 <= n; i++ {
			nodes[i].Left = nodes[2*i]
			nodes[i].Right = nodes[2*i+1]
		}

		return nodes[1], nil
	}
}
