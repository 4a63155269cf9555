// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// impl_random.go - implementation of Random(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Requires a non-nil RNG in the resolved config (WithSeed/WithRand),
//     else ErrNeedRandSource — randomness is never implicit.
//   - Each node after the root is attached by descending from the root,
//     flipping a fair coin at every occupied slot until a free child is
//     found. Values come from cfg.valueFn(0..n-1) in insertion order.
//
// Complexity:
//   - Time: O(n·depth) expected, Space: O(n).
//
// Determinism:
//   - Fully reproducible for a fixed seed and value scheme.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor that builds a random-shaped tree of n
// nodes via seeded left/right descent.
func Random(n int) Constructor {
	return func(cfg builderConfig) (*tree.Node, error) {
		// Validate parameter domain early.
		if n < minRandomNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewNodes)
		}
		// Stochastic constructor: an explicit RNG is mandatory.
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		root := tree.NewNode(cfg.valueFn(0))
		for i := 1; i < n; i++ {
			node := tree.NewNode(cfg.valueFn(i))
			cur := root
			for {
				if cfg.rng.Intn(2) == 0 {
					if cur.Left == nil {
						cur.Left = node
						break
					}
					cur = cur.Left
				} else {
					if cur.Right == nil {
						cur.Right = node
						break
					}
					cur = cur.Right
				}
			}
		}

		return root, nil
	}
}
