package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/tree"
)

// sampleTree builds
//
//	        1
//	      / | \
//	     2  3  4
//	    / \     \
//	   5   6     7
//	             |
//	             2
func sampleTree() *tree.Node[int] {
	return tree.NewNode(1,
		tree.NewNode(2,
			tree.NewNode(5),
			tree.NewNode(6),
		),
		tree.NewNode(3),
		tree.NewNode(4,
			tree.NewNode(7,
				tree.NewNode(2),
			),
		),
	)
}

func TestSizeAndHeight(t *testing.T) {
	for _, tt := range []struct {
		name           string
		root           *tree.Node[int]
		expectedSize   int
		expectedHeight int
	}{
		{name: "empty tree", root: nil},
		{name: "single node", root: tree.NewNode(9), expectedSize: 1, expectedHeight: 1},
		{name: "sample tree", root: sampleTree(), expectedSize: 8, expectedHeight: 4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedSize, tree.Size(tt.root))
			assert.Equal(t, tt.expectedHeight, tree.Height(tt.root))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0, tree.Sum[int](nil))
	assert.Equal(t, 30, tree.Sum(sampleTree()))
}

func TestMaximum(t *testing.T) {
	maximum, err := tree.Maximum(sampleTree(), compare.Natural[int]())
	require.NoError(t, err)
	assert.Equal(t, 7, maximum)

	_, err = tree.Maximum[int](nil, compare.Natural[int]())
	assert.ErrorIs(t, err, tree.ErrEmptyTree)
}

func TestCount(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, 2, tree.Count(root, 2))
	assert.Equal(t, 1, tree.Count(root, 7))
	assert.Equal(t, 0, tree.Count(root, 8))
	assert.Equal(t, 0, tree.Count[int](nil, 1))
}

func TestTraversals(t *testing.T) {
	root := sampleTree()

	assert.Empty(t, cmp.Diff([]int{5, 6, 3, 2}, tree.Leaves(root).Slice()))
	assert.Empty(t, cmp.Diff([]int{1, 2, 5, 6, 3, 4, 7, 2}, tree.Preorder(root).Slice()))
	assert.Empty(t, cmp.Diff([]int{5, 6, 2, 3, 2, 7, 4, 1}, tree.Postorder(root).Slice()))
	assert.Empty(t, cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 2}, tree.BreadthFirst(root).Slice()))
}

func TestTraversalsOnEmptyTree(t *testing.T) {
	assert.True(t, tree.Leaves[int](nil).IsEmpty())
	assert.True(t, tree.Preorder[int](nil).IsEmpty())
	assert.True(t, tree.Postorder[int](nil).IsEmpty())
	assert.True(t, tree.BreadthFirst[int](nil).IsEmpty())
}

func TestAddChildren(t *testing.T) {
	root := tree.NewNode(1)
	root.AddChildren(tree.NewNode(2), tree.NewNode(3))

	assert.Equal(t, 2, root.Children().Size())
	assert.Equal(t, 3, tree.Size(root))
	assert.Equal(t, 1, root.Element())
}
