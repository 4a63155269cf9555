// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   - All public factories are declared in impl_*.go and return Constructor
//     closures; this file owns option resolution and boundary wrapping.
//   - Determinism: same constructor/options/seed ⇒ identical tree.
//   - Safety: never panic at runtime; return sentinel errors from
//     constructors; option constructors may panic on nil programmer input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// Constructor produces a tree deterministically from the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config.
//   - Assign values only through cfg.valueFn.
type Constructor func(cfg builderConfig) (*tree.Node, error)

// Build resolves the builder configuration from opts and applies con.
// Any constructor error is wrapped with the context "Build: %w" and
// returned; a nil con yields ErrNilConstructor instead of a panic.
//
// Complexity: O(len(opts)) resolution + the constructor's own cost.
func Build(con Constructor, opts ...BuilderOption) (*tree.Node, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilConstructor)
	}

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(opts...)

	root, err := con(cfg)
	if err != nil {
		// Wrap once at the API boundary; inner layers already added context.
		return nil, fmt.Errorf("Build: %w", err)
	}

	return root, nil
}
