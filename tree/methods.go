// File: methods.go
// Role: Whole-tree helpers over *Node — counting, cloning, equality,
// and defensive structural validation.
// Determinism:
//   - All walks visit Left before Right; results are fully reproducible.
package tree

// Count returns the total number of nodes in the subtree rooted at n.
// A nil n is the empty tree and counts 0.
//
// Complexity: O(n) time, O(h) stack.
func Count(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + Count(n.Left) + Count(n.Right)
}

// Clone returns a deep copy of the subtree rooted at n, or nil for nil.
// Values are copied; the clone shares no nodes with the original.
//
// Complexity: O(n) time and space.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}

	return &Node{
		Value: n.Value,
		Left:  Clone(n.Left),
		Right: Clone(n.Right),
	}
}

// Equal reports whether a and b are structurally identical with equal
// values at every position. Two nil trees are equal.
//
// Complexity: O(min(|a|,|b|)) time, O(h) stack.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Value != b.Value {
		return false
	}

	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Validate checks that the structure reachable from n is a finite binary
// tree: every node reachable by exactly one path. It returns ErrNotATree
// if a node is seen twice (a cycle or a shared subtree), nil otherwise.
//
// Well-formed construction never needs this; it exists for callers that
// receive trees from untrusted wiring.
//
// Complexity: O(n) time, O(n) space for the seen-set.
func Validate(n *Node) error {
	seen := make(map[*Node]struct{})

	return validate(n, seen)
}

// validate walks the structure, recording each visited node.
// Revisiting any node means the input is not a tree.
func validate(n *Node, seen map[*Node]struct{}) error {
	if n == nil {
		return nil
	}
	if _, dup := seen[n]; dup {
		return ErrNotATree
	}
	seen[n] = struct{}{}

	if err := validate(n.Left, seen); err != nil {
		return err
	}

	return validate(n.Right, seen)
}
