package splay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbehopkins/splaytree"
	"github.com/cbehopkins/splaytree/internal/testutil"
	"github.com/cbehopkins/splaytree/internal/verify"
	"github.com/cbehopkins/splaytree/splay"
)

func TestEmptyTree(t *testing.T) {
	tree := splay.New[int, string]()

	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Size())
	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.FindMinimum())
	assert.Nil(t, tree.FindMaximum())
	assert.Nil(t, tree.Search(1))
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Delete(1))

	v, ok := tree.Get(1)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestInsertSize(t *testing.T) {
	tree := splay.New[int, struct{}]()
	assert.True(t, tree.IsEmpty())

	for k := 1; k <= 5; k++ {
		require.True(t, tree.Add(k))
	}

	assert.Equal(t, 5, tree.Size())
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.FindMinimum().Key())
	assert.Equal(t, 5, tree.FindMaximum().Key())
	testutil.RequireValid(t, tree)
}

func TestInsertSplaysNewNodeToRoot(t *testing.T) {
	tree := splay.New[int, int]()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90, 25} {
		require.True(t, tree.Insert(k, k))
		require.Equal(t, k, tree.Root().Key(), "inserted key %d should be the root", k)
		testutil.RequireValid(t, tree)
	}
}

func TestInsertDuplicateKeepsFirstValue(t *testing.T) {
	tree := splay.New[string, int]()

	require.True(t, tree.Insert("k", 1))
	require.True(t, tree.Insert("other", 2))
	rootBefore := tree.Root().Key()

	assert.False(t, tree.Insert("k", 99))
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, rootBefore, tree.Root().Key(), "duplicate insert must not restructure")

	v, ok := tree.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestAddDuplicate(t *testing.T) {
	tree := splay.New[int, struct{}]()
	tree.Add(1)
	tree.Add(1)
	assert.Equal(t, 1, tree.Size())
}

func TestSearchSplaysMatchToRoot(t *testing.T) {
	keys := testutil.ShuffledKeys(64, 777)
	tree := testutil.IntTree(t, keys...)

	for _, k := range testutil.ShuffledKeys(64, 778) {
		node := tree.Search(k)
		require.NotNil(t, node)
		assert.Equal(t, k, node.Key())
		assert.Equal(t, k, node.Value())
		assert.Same(t, node, tree.Root())
		assert.Nil(t, node.Parent())
		testutil.RequireValid(t, tree)
	}
}

func TestSearchMissLeavesTreeUnchanged(t *testing.T) {
	tree := testutil.IntTree(t, 0, 2, 4, 6, 8)
	before := shape(tree)

	for _, k := range []int{-1, 1, 3, 5, 7, 9} {
		assert.Nil(t, tree.Search(k))
		assert.False(t, tree.Contains(k))
	}

	assert.Equal(t, before, shape(tree))
}

func TestContains(t *testing.T) {
	tree := splay.New[int, struct{}]()
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Contains(2))
	assert.False(t, tree.Contains(3))

	tree.Add(3)
	tree.Add(1)
	tree.Add(2)

	assert.True(t, tree.Contains(1))
	assert.Equal(t, 1, tree.Root().Key())
	assert.True(t, tree.Contains(2))
	assert.True(t, tree.Contains(3))
	assert.Equal(t, 3, tree.Root().Key())
}

func TestContainsMissNextToLeaf(t *testing.T) {
	tree := splay.New[int, struct{}]()
	tree.Add(2)
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Contains(3))
}

func TestExtremesDoNotSplay(t *testing.T) {
	tree := testutil.IntTree(t, 5, 3, 8, 1, 4, 7, 9)
	before := shape(tree)

	assert.Equal(t, 1, tree.FindMinimum().Key())
	assert.Equal(t, 9, tree.FindMaximum().Key())
	assert.Equal(t, before, shape(tree))
}

func TestFindMinimumMaximumTrackInserts(t *testing.T) {
	tree := splay.New[int, struct{}]()

	tree.Add(2)
	assert.Equal(t, 2, tree.FindMinimum().Key())
	assert.Equal(t, 2, tree.FindMaximum().Key())
	tree.Add(1)
	assert.Equal(t, 1, tree.FindMinimum().Key())
	assert.Equal(t, 2, tree.FindMaximum().Key())
	tree.Add(3)
	assert.Equal(t, 1, tree.FindMinimum().Key())
	assert.Equal(t, 3, tree.FindMaximum().Key())
}

func TestCustomComparator(t *testing.T) {
	tree := splay.NewFunc[int, struct{}](func(a, b int) int { return b - a })
	tree.Add(1)
	tree.Add(2)

	require.NotNil(t, tree.Root())
	assert.Equal(t, 2, tree.Root().Key())
	require.NotNil(t, tree.Root().Right())
	assert.Equal(t, 1, tree.Root().Right().Key())
	assert.Equal(t, 2, tree.FindMinimum().Key(), "descending order puts the largest key first")
	assert.Equal(t, 1, tree.FindMaximum().Key())
	testutil.RequireValid(t, tree)
}

func TestReverseComparatorMatchesCustom(t *testing.T) {
	tree := splay.NewFunc[int, struct{}](splaytree.Reverse(splaytree.Natural[int]()))
	for _, k := range []int{4, 9, 1, 7} {
		tree.Add(k)
	}
	assert.Equal(t, []int{9, 7, 4, 1}, verify.Keys(tree))
}

func TestNilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		splay.NewFunc[int, int](nil)
	})
}

// shape records the tree as a pre-order list of keys with -1 marking an
// empty child, so two trees with equal shape produce equal slices.
func shape(tree *splay.Tree[int, int]) []int {
	var out []int
	var walk func(n *splay.Node[int, int])
	walk = func(n *splay.Node[int, int]) {
		if n == nil {
			out = append(out, -1)
			return
		}
		out = append(out, n.Key())
		walk(n.Left())
		walk(n.Right())
	}
	walk(tree.Root())
	return out
}
