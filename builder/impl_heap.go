// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// impl_heap.go - implementation of FromHeap(values) constructor.
//
// Contract:
//   - len(values) ≥ 1 (else ErrTooFewNodes).
//   - Index i (0-based) parents indices 2i+1 (left) and 2i+2 (right);
//     indices past the slice end stay absent, so any prefix length wires
//     a valid (possibly incomplete) tree.
//   - cfg.valueFn is NOT consulted: the slice already carries the values.
//
// Complexity:
//   - Time: O(len(values)), Space: O(len(values)).
//
// Determinism:
//   - Pure function of the input slice; no randomness.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

const (
	methodFromHeap   = "FromHeap"
	minFromHeapNodes = 1
)

// FromHeap returns a Constructor that wires values in heap order.
// The input slice is copied into fresh nodes; the caller keeps ownership
// of the slice.
func FromHeap(values []int64) Constructor {
	return func(_ builderConfig) (*tree.Node, error) {
		n := len(values)
		if n < minFromHeapNodes {
			return nil, fmt.Errorf("%s: len=%d < min=%d: %w", methodFromHeap, n, minFromHeapNodes, ErrTooFewNodes)
		}

		nodes := make([]*tree.Node, n)
		for i, v := range values {
			nodes[i] = tree.NewNode(v)
		}
		for i := 0; i < n; i++ {
			if l := 2*i + 1; l < n {
				nodes[i].Left = nodes[l]
			}
			if r := 2*i + 2; r < n {
				nodes[i].Right = nodes[r]
			}
		}

		return nodes[0], nil
	}
}
