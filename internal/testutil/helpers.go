package testutil

import (
	"testing"

	"github.com/cbehopkins/splaytree/internal/verify"
	"github.com/cbehopkins/splaytree/splay"
)

// IntTree builds a natural-order tree by inserting keys in the given order.
// Each key is stored with its own value so value movement can be checked.
func IntTree(tb testing.TB, keys ...int) *splay.Tree[int, int] {
	tb.Helper()

	tree := splay.New[int, int]()
	for _, k := range keys {
		if !tree.Insert(k, k) {
			tb.Fatalf("failed to insert key %d: already present", k)
		}
	}
	RequireValid(tb, tree)
	return tree
}

// RequireValid fails the test if any structural invariant is broken.
func RequireValid[K any, V any](tb testing.TB, tree *splay.Tree[K, V]) {
	tb.Helper()

	if err := verify.Tree(tree); err != nil {
		tb.Fatalf("tree invariant check failed: %v", err)
	}
}

// RequireValuesMatchKeys fails the test if any node's value differs from
// its key, which catches deletion moving a key without its value.
func RequireValuesMatchKeys(tb testing.TB, tree *splay.Tree[int, int]) {
	tb.Helper()

	var stack []*splay.Node[int, int]
	if tree.Root() != nil {
		stack = append(stack, tree.Root())
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Key() != n.Value() {
			tb.Fatalf("node key %d carries value %d", n.Key(), n.Value())
		}
		if n.Left() != nil {
			stack = append(stack, n.Left())
		}
		if n.Right() != nil {
			stack = append(stack, n.Right())
		}
	}
}
