// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// impl_path.go - implementation of Path(side, n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); side ∈ {Left, Right} (else ErrUnknownSide).
//   - Builds a chain of n nodes descending only to the chosen side; the
//     other child stays absent at every depth — the standard unbalanced
//     traversal fixture.
//   - Values come from cfg.valueFn(0..n-1) in root-to-leaf order.
//
// Complexity:
//   - Time: O(n), Space: O(n).
//
// Determinism:
//   - Creation order is root to leaf; no randomness.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// Side selects which child a Path chain descends through.
type Side int

const (
	// Left descends through Node.Left at every step.
	Left Side = iota

	// Right descends through Node.Right at every step.
	Right
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds a one-sided chain of n nodes.
func Path(side Side, n int) Constructor {
	return func(cfg builderConfig) (*tree.Node, error) {
		// Validate parameter domain early.
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		if side != Left && side != Right {
			return nil, fmt.Errorf("%s: side=%d: %w", methodPath, side, ErrUnknownSide)
		}

		root := tree.NewNode(cfg.valueFn(0))
		cur := root
		for i := 1; i < n; i++ {
			next := tree.NewNode(cfg.valueFn(i))
			if side == Left {
				cur.Left = next
			} else {
				cur.Right = next
			}
			cur = next
		}

		return root, nil
	}
}
