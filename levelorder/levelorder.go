// Package levelorder implements height computation and breadth-first
// layering over a *tree.Node, with selectable strategy and hooks.
package levelorder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// Height returns the number of nodes on the longest root-to-leaf path.
// An absent node has height 0; otherwise 1 + max(height of children).
// Standard recursive computation, no memoization.
func Height(n *tree.Node) int {
	if n == nil {
		return 0
	}
	hl, hr := Height(n.Left), Height(n.Right)
	if hl > hr {
		return 1 + hl
	}

	return 1 + hr
}

// Level returns the values found at exactly the given depth below n,
// left subtree before right subtree. The root sits at level 1. Absent
// nodes and out-of-range levels contribute nothing; level < 1 yields nil.
func Level(n *tree.Node, level int) []int64 {
	if level < 1 {
		return nil
	}

	return appendLevel(nil, n, level)
}

// appendLevel accumulates values at the target level into out.
// level==1 means "emit this node"; deeper targets recurse with level-1.
// A nil node is the terminal base case on every path.
func appendLevel(out []int64, n *tree.Node, level int) []int64 {
	if n == nil {
		return out
	}
	if level == 1 {
		return append(out, n.Value)
	}
	out = appendLevel(out, n.Left, level-1)

	return appendLevel(out, n.Right, level-1)
}

// LevelOrder traverses root breadth-first, grouping values by level from
// the root down, applying any number of functional Options.
// A nil root yields an empty Result (Height 0, no levels) and no error.
// Returns ErrOptionViolation for bad options, or any user-supplied hook
// error (wrapped).
func LevelOrder(root *tree.Node, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h := Height(root)
	limit := h
	if o.MaxLevel > 0 && o.MaxLevel < limit {
		limit = o.MaxLevel
	}

	res := &Result{
		Height: h,
		Levels: make([][]int64, 0, limit),
	}
	if root == nil {
		return res, nil
	}

	var err error
	switch o.Strategy {
	case QueueScan:
		err = (&walker{opts: o, limit: limit, res: res}).scan(root)
	default:
		err = rescan(root, o, limit, res)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// rescan emits levels 1..limit by re-walking the tree from the root for
// each level. O(n) per level, O(n·limit) total.
func rescan(root *tree.Node, o Options, limit int, res *Result) error {
	for level := 1; level <= limit; level++ {
		values := appendLevel(make([]int64, 0), root, level)
		if err := emit(o, level, values, res); err != nil {
			return err
		}
	}

	return nil
}

// emit fires the OnVisit hooks for a completed level, then OnLevel,
// then records the level in the Result. Hook errors abort the traversal.
func emit(o Options, level int, values []int64, res *Result) error {
	for _, v := range values {
		if err := o.OnVisit(v, level); err != nil {
			return fmt.Errorf("levelorder: OnVisit error at value %d (level %d): %w", v, level, err)
		}
	}
	if err := o.OnLevel(level, values); err != nil {
		return fmt.Errorf("levelorder: OnLevel error at level %d: %w", level, err)
	}
	res.Levels = append(res.Levels, values)

	return nil
}

// queueItem pairs a node with its level during a QueueScan pass.
type queueItem struct {
	node  *tree.Node
	level int
}

// walker encapsulates mutable QueueScan state.
type walker struct {
	opts  Options
	limit int
	queue []queueItem
	res   *Result
}

// scan performs one FIFO pass, flushing each level through emit as the
// frontier moves past it. Children enqueue left before right, so values
// within a level keep left-to-right order.
func (w *walker) scan(root *tree.Node) error {
	w.queue = append(w.queue, queueItem{node: root, level: 1})

	current := 1
	values := make([]int64, 0)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.level != current {
			if err := emit(w.opts, current, values, w.res); err != nil {
				return err
			}
			current = item.level
			values = make([]int64, 0)
		}
		values = append(values, item.node.Value)

		if item.level < w.limit {
			if item.node.Left != nil {
				w.queue = append(w.queue, queueItem{node: item.node.Left, level: item.level + 1})
			}
			if item.node.Right != nil {
				w.queue = append(w.queue, queueItem{node: item.node.Right, level: item.level + 1})
			}
		}
	}
	// flush the deepest level
	return emit(w.opts, current, values, w.res)
}
