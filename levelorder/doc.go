// Package levelorder provides breadth-first (level-order) traversal over
// a *tree.Node, returning tree height and the values found at each depth.
//
// What
//
//   - Height(n): number of nodes on the longest root-to-leaf path
//     (0 for an empty tree).
//   - Level(n, level): the values at exactly that depth (root = level 1),
//     left subtree before right subtree; empty for absent branches.
//   - LevelOrder(root, opts...): a Result grouping values level by level,
//     from root to deepest leaf, preserving top-to-bottom left-to-right
//     breadth-first order.
//   - Supports functional hooks at two stages:
//   - OnVisit (per value; may abort with an error)
//   - OnLevel (per completed level; may abort with an error)
//   - Honors MaxLevel limit (k>0) or explicit “no limit” (k==0).
//   - Two interchangeable strategies (identical observable output):
//   - RescanPerLevel — recompute each level by recursive descent from
//     the root (the classic textbook shape, O(n·h) total).
//   - QueueScan — one explicit FIFO pass, O(n) total.
//
// Why
//
//   - Level layering is the canonical way to print, serialize, or reason
//     about a tree breadth-first.
//   - The two strategies make the time/space trade explicit without
//     changing semantics: pick RescanPerLevel for zero auxiliary queue,
//     QueueScan for linear time on deep trees.
//
// Determinism
//
//	Traversal is pure and synchronous: the same unmodified tree yields
//	byte-identical results on every call, under either strategy.
//
// Absent nodes
//
//	A nil node is a normal base case, never an error: a nil root yields
//	Height 0 and an empty Result; a branch shorter than the tree height
//	simply contributes nothing to deeper levels. Unbalanced trees
//	traverse without any special handling.
//
// Complexity (n = nodes, h = height)
//
//   - Height:          O(n) time, O(h) stack.
//   - Level:           O(n) time, O(h) stack.
//   - LevelOrder:      RescanPerLevel O(n·h) time, O(h) stack;
//     QueueScan O(n) time, O(w) queue for max width w.
//
// Usage
//
//	res, err := levelorder.LevelOrder(root)
//	if err != nil {
//	    // handle ErrOptionViolation or a wrapped hook error
//	}
//	fmt.Println(res) // one line per level, values space-separated
//
//	// With functional options:
//	res, err = levelorder.LevelOrder(
//	    root,
//	    levelorder.WithStrategy(levelorder.QueueScan),
//	    levelorder.WithMaxLevel(2),
//	    levelorder.WithOnVisit(func(v int64, level int) error { return nil }),
//	    levelorder.WithOnLevel(func(level int, values []int64) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): RescanPerLevel, no level limit, no-op hooks.
//   - WithStrategy(s):  choose RescanPerLevel or QueueScan.
//   - WithMaxLevel(k):  emit only levels 1..k (k==0 means no limit).
//   - WithOnVisit(fn):  hook per emitted value; returning error aborts.
//   - WithOnLevel(fn):  hook per completed level; returning error aborts.
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option was supplied
//     (negative MaxLevel, unknown Strategy).
//   - Wrapped user-supplied hook errors from OnVisit / OnLevel.
package levelorder
