package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbehopkins/splaytree/splay"
)

func TestTreeEmpty(t *testing.T) {
	tree := splay.New[int, int]()
	assert.NoError(t, Tree(tree))
	assert.Empty(t, Keys(tree))
	assert.Zero(t, Depth(tree))
}

func TestTreeValid(t *testing.T) {
	tree := splay.New[int, int]()
	for _, k := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13} {
		tree.Insert(k, k)
		require.NoError(t, Tree(tree))
	}
	assert.Equal(t, []int{1, 3, 4, 6, 7, 8, 10, 13, 14}, Keys(tree))
	assert.Positive(t, Depth(tree))
}

// TestTreeDetectsOrderViolation changes the comparator after the tree is
// built, which breaks the ordering the existing links encode.
func TestTreeDetectsOrderViolation(t *testing.T) {
	flipped := false
	tree := splay.NewFunc[int, struct{}](func(a, b int) int {
		if flipped {
			return b - a
		}
		return a - b
	})
	for _, k := range []int{2, 1, 3} {
		tree.Add(k)
	}
	require.NoError(t, Tree(tree))

	flipped = true
	assert.ErrorIs(t, Tree(tree), ErrOrder)
}

func TestDepthOfPath(t *testing.T) {
	tree := splay.New[int, int]()
	for k := 0; k < 10; k++ {
		tree.Insert(k, k)
	}
	assert.Equal(t, 10, Depth(tree))
}
