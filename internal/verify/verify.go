// Package verify checks the structural invariants of a splay tree:
// ordering, parent/child consistency, acyclicity and size accounting.
package verify

import (
	"fmt"

	"github.com/cbehopkins/splaytree/splay"
)

type bounded[K any, V any] struct {
	node   *splay.Node[K, V]
	lo, hi *splay.Node[K, V]
}

// Tree walks every node reachable from the root and returns the first
// invariant violation found, or nil.
func Tree[K any, V any](tree *splay.Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		if tree.Size() != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrSize, tree.Size())
		}
		return nil
	}
	if root.Parent() != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrParentLink, root.Key(), root.Parent().Key())
	}

	compare := tree.Comparator()
	seen := make(map[*splay.Node[K, V]]struct{}, tree.Size())
	stack := []bounded[K, V]{{node: root}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := cur.node

		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: key %v", ErrCycle, n.Key())
		}
		seen[n] = struct{}{}
		if len(seen) > tree.Size() {
			return fmt.Errorf("%w: more than %d nodes reachable", ErrSize, tree.Size())
		}

		if cur.lo != nil && compare(n.Key(), cur.lo.Key()) <= 0 {
			return fmt.Errorf("%w: key %v not greater than ancestor %v", ErrOrder, n.Key(), cur.lo.Key())
		}
		if cur.hi != nil && compare(n.Key(), cur.hi.Key()) >= 0 {
			return fmt.Errorf("%w: key %v not less than ancestor %v", ErrOrder, n.Key(), cur.hi.Key())
		}

		if left := n.Left(); left != nil {
			if left.Parent() != n {
				return fmt.Errorf("%w: left child %v of %v", ErrParentLink, left.Key(), n.Key())
			}
			stack = append(stack, bounded[K, V]{node: left, lo: cur.lo, hi: n})
		}
		if right := n.Right(); right != nil {
			if right.Parent() != n {
				return fmt.Errorf("%w: right child %v of %v", ErrParentLink, right.Key(), n.Key())
			}
			stack = append(stack, bounded[K, V]{node: right, lo: n, hi: cur.hi})
		}
	}

	if len(seen) != tree.Size() {
		return fmt.Errorf("%w: size %d, reachable %d", ErrSize, tree.Size(), len(seen))
	}
	return nil
}

// Keys returns the keys of the tree in order without splaying.
func Keys[K any, V any](tree *splay.Tree[K, V]) []K {
	keys := make([]K, 0, tree.Size())
	var stack []*splay.Node[K, V]
	n := tree.Root()
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.Left()
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, n.Key())
		n = n.Right()
	}
	return keys
}

// Depth returns the height of the tree; an empty tree has depth 0.
func Depth[K any, V any](tree *splay.Tree[K, V]) int {
	type level struct {
		node  *splay.Node[K, V]
		depth int
	}
	root := tree.Root()
	if root == nil {
		return 0
	}
	deepest := 0
	stack := []level{{root, 1}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		deepest = max(deepest, cur.depth)
		if l := cur.node.Left(); l != nil {
			stack = append(stack, level{l, cur.depth + 1})
		}
		if r := cur.node.Right(); r != nil {
			stack = append(stack, level{r, cur.depth + 1})
		}
	}
	return deepest
}
