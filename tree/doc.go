// Package tree provides the core binary-tree entity used across lvltree:
// a Node with an int64 value and two optional owned children.
//
// What
//
//   - Node{Value, Left, Right}: a plain struct; a nil *Node is the empty tree.
//   - NewNode(v): construct a node with both children absent.
//   - Count(n): total nodes in the subtree rooted at n (0 for nil).
//   - Clone(n): deep copy of the subtree (nil-safe).
//   - Equal(a, b): structural and value equality.
//   - Validate(n): defensive guard that the structure really is a finite
//     tree — no node reachable twice (cycle or shared subtree).
//
// Why
//
//   - Every traversal and builder in lvltree speaks *tree.Node; keeping the
//     entity free of behavior keeps each algorithm package honest about its
//     own complexity.
//
// Ownership & Lifecycle
//
//	Each node exclusively owns its Left and Right subtrees: no sharing, no
//	cycles, no back-references. Trees are wired by assigning Left/Right
//	after construction and are treated as immutable once traversal begins.
//	Validate exists for callers who cannot trust their input; well-formed
//	construction never needs it.
//
// Concurrency
//
//	Nodes carry no locks. A fully built tree is safe for concurrent
//	readers; concurrent mutation is the caller's problem and is outside
//	this package's contract.
//
// Complexity (n = node count)
//
//   - Count, Clone, Equal, Validate: O(n) time; Clone O(n) space,
//     the rest O(h) stack for height h.
//
// Errors
//
//   - ErrNotATree — Validate found a node reachable via two paths.
package tree
