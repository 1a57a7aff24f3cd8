package metrics

import (
	"github.com/cbehopkins/splaytree"
	"github.com/cbehopkins/splaytree/splay"
)

// Tree is a splay tree whose operations are recorded on a Collector.
// Read-only methods of the embedded tree (Size, Root, FindMinimum, ...)
// are available unchanged.
type Tree[K any, V any] struct {
	*splay.Tree[K, V]
	c *Collector
}

// NewTree creates an empty tree ordered by compare with c attached as
// its observer.
func NewTree[K any, V any](c *Collector, compare splaytree.Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{
		Tree: splay.NewFunc[K, V](compare, splay.WithObserver(c)),
		c:    c,
	}
}

// Insert inserts key and records "inserted" or "duplicate".
func (t *Tree[K, V]) Insert(key K, value V) bool {
	ok := t.Tree.Insert(key, value)
	t.c.observeOp("insert", ok, "inserted", "duplicate")
	t.c.size.Set(float64(t.Tree.Size()))
	return ok
}

// Add inserts key with the zero value.
func (t *Tree[K, V]) Add(key K) bool {
	var zero V
	return t.Insert(key, zero)
}

// Search looks key up and records "hit" or "miss".
func (t *Tree[K, V]) Search(key K) *splay.Node[K, V] {
	node := t.Tree.Search(key)
	t.c.observeOp("search", node != nil, "hit", "miss")
	return node
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Search(key) != nil
}

// Get returns the value for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	node := t.Search(key)
	if node == nil {
		var zero V
		return zero, false
	}
	return node.Value(), true
}

// Delete removes key and records "removed" or "absent".
func (t *Tree[K, V]) Delete(key K) bool {
	ok := t.Tree.Delete(key)
	t.c.observeOp("delete", ok, "removed", "absent")
	t.c.size.Set(float64(t.Tree.Size()))
	return ok
}

// Remove is an alias for Delete.
func (t *Tree[K, V]) Remove(key K) bool {
	return t.Delete(key)
}
