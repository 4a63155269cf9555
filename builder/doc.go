// Package builder provides deterministic constructors for *tree.Node
// shapes: perfect trees, one-sided paths, heap-order wiring, and seeded
// random shapes — all behind one orchestrator and functional options.
//
// What
//
//   - Build(con, opts...): resolve options into an immutable config and
//     run one Constructor closure, wrapping any error at the boundary.
//   - Complete(levels): perfect binary tree of the given height with
//     heap-order values (Complete(4) is the canonical 15-node tree 1..15).
//   - Path(side, n): a one-sided chain — the standard unbalanced fixture.
//   - FromHeap(values): wire a slice in heap order (children of index i
//     at 2i+1 and 2i+2).
//   - Random(n): a random shape via seeded left/right descent;
//     reproducible for a fixed seed.
//
// Why
//
//   - Tests, examples, and benchmarks all need the same fixtures; one
//     deterministic source beats hand-wiring them in every package.
//
// Determinism
//
//	Same constructor, options, and seed ⇒ an identical tree, node for
//	node. Value assignment is controlled by WithValueFn (default: the
//	1-based node index, so Complete(4) carries values 1..15).
//
// Error policy (strict)
//
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Option constructors (WithValueFn, WithRand) panic on nil arguments
//     to surface programmer error immediately.
//   - Branch on sentinels with errors.Is: ErrTooFewNodes,
//     ErrUnknownSide, ErrNeedRandSource, ErrNilConstructor.
//
// Usage
//
//	// The canonical 15-node tree, values 1..15:
//	root, err := builder.Build(builder.Complete(4))
//
//	// A 5-node ASCII-labelled left chain:
//	root, err = builder.Build(
//	    builder.Path(builder.Left, 5),
//	    builder.WithValueFn(func(idx int) int64 { return int64('A' + idx) }),
//	)
//
//	// A reproducible random 100-node shape:
//	root, err = builder.Build(builder.Random(100), builder.WithSeed(42))
package builder
