package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltree/tree"
)

// fullThree wires the 7-node perfect tree 1..7 by direct assignment,
// the same way callers build trees in practice.
func fullThree() *tree.Node {
	root := tree.NewNode(1)
	root.Left = tree.NewNode(2)
	root.Right = tree.NewNode(3)
	root.Left.Left = tree.NewNode(4)
	root.Left.Right = tree.NewNode(5)
	root.Right.Left = tree.NewNode(6)
	root.Right.Right = tree.NewNode(7)

	return root
}

func TestNewNode_ChildrenAbsent(t *testing.T) {
	n := tree.NewNode(42)
	assert.Equal(t, int64(42), n.Value)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, tree.Count(nil))
	assert.Equal(t, 1, tree.Count(tree.NewNode(9)))
	assert.Equal(t, 7, tree.Count(fullThree()))

	// Unbalanced: root with only a left chain of two.
	root := tree.NewNode(1)
	root.Left = tree.NewNode(2)
	root.Left.Left = tree.NewNode(3)
	assert.Equal(t, 3, tree.Count(root))
}

func TestClone_DeepAndDisjoint(t *testing.T) {
	orig := fullThree()
	cp := tree.Clone(orig)

	assert.True(t, tree.Equal(orig, cp))
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Left, cp.Left)

	// Mutating the clone must not leak into the original.
	cp.Left.Value = 99
	assert.Equal(t, int64(2), orig.Left.Value)
	assert.False(t, tree.Equal(orig, cp))
}

func TestClone_Nil(t *testing.T) {
	assert.Nil(t, tree.Clone(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, tree.Equal(nil, nil))
	assert.False(t, tree.Equal(tree.NewNode(1), nil))
	assert.False(t, tree.Equal(nil, tree.NewNode(1)))
	assert.True(t, tree.Equal(fullThree(), fullThree()))

	// Same shape, one differing value.
	a, b := fullThree(), fullThree()
	b.Right.Left.Value = -6
	assert.False(t, tree.Equal(a, b))

	// Same values, mirrored shape.
	l := tree.NewNode(1)
	l.Left = tree.NewNode(2)
	r := tree.NewNode(1)
	r.Right = tree.NewNode(2)
	assert.False(t, tree.Equal(l, r))
}

func TestValidate_WellFormed(t *testing.T) {
	assert.NoError(t, tree.Validate(nil))
	assert.NoError(t, tree.Validate(tree.NewNode(1)))
	assert.NoError(t, tree.Validate(fullThree()))
}

func TestValidate_SharedSubtree(t *testing.T) {
	shared := tree.NewNode(7)
	root := tree.NewNode(1)
	root.Left = shared
	root.Right = shared

	assert.ErrorIs(t, tree.Validate(root), tree.ErrNotATree)
}

func TestValidate_Cycle(t *testing.T) {
	root := tree.NewNode(1)
	root.Left = tree.NewNode(2)
	root.Left.Right = root // back-reference

	assert.ErrorIs(t, tree.Validate(root), tree.ErrNotATree)
}
