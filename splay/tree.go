package splay

import (
	"cmp"

	"github.com/cbehopkins/splaytree"
)

// Tree is an ordered map from K to V backed by a splay tree.
type Tree[K any, V any] struct {
	root     *Node[K, V]
	size     int
	compare  splaytree.Comparator[K]
	observer Observer
}

// New creates an empty Tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](splaytree.Natural[K](), opts...)
}

// NewFunc creates an empty Tree ordered by compare.
// compare is fixed for the lifetime of the tree.
func NewFunc[K any, V any](compare splaytree.Comparator[K], opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("splay: nil comparator")
	}
	o := buildOptions(opts)
	return &Tree[K, V]{
		compare:  compare,
		observer: o.observer,
	}
}

// Size returns the number of keys in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Comparator returns the comparator the tree was built with.
func (t *Tree[K, V]) Comparator() splaytree.Comparator[K] {
	return t.compare
}

// Root returns the current root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Insert adds key with value and splays the new node to the root.
// It returns false, leaving the tree and the stored value untouched, when
// key is already present.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.root == nil {
		t.root = newNode(key, value, nil)
		t.size++
		return true
	}

	node := t.root
	for {
		result := t.compare(key, node.key)
		switch {
		case result < 0:
			if node.left == nil {
				node.left = newNode(key, value, node)
				t.size++
				t.splay(node.left)
				return true
			}
			node = node.left
		case result > 0:
			if node.right == nil {
				node.right = newNode(key, value, node)
				t.size++
				t.splay(node.right)
				return true
			}
			node = node.right
		default:
			return false
		}
	}
}

// Add inserts key with the zero value of V.
func (t *Tree[K, V]) Add(key K) bool {
	var zero V
	return t.Insert(key, zero)
}

// Search returns the node holding key after splaying it to the root.
// On a miss it returns nil and the tree is left unchanged.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	node := t.find(key)
	if node != nil {
		t.splay(node)
	}
	return node
}

// Contains reports whether key is present, splaying it to the root if so.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Search(key) != nil
}

// Get returns the value stored for key, splaying it to the root if found.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	node := t.Search(key)
	if node == nil {
		var zero V
		return zero, false
	}
	return node.value, true
}

// FindMinimum returns the node with the smallest key without splaying.
func (t *Tree[K, V]) FindMinimum() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return minimum(t.root)
}

// FindMaximum returns the node with the largest key without splaying.
func (t *Tree[K, V]) FindMaximum() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	current := t.root
	for current.right != nil {
		current = current.right
	}
	return current
}

// find descends from the root without restructuring.
func (t *Tree[K, V]) find(key K) *Node[K, V] {
	node := t.root
	for node != nil {
		result := t.compare(key, node.key)
		switch {
		case result < 0:
			node = node.left
		case result > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

func minimum[K any, V any](node *Node[K, V]) *Node[K, V] {
	for node.left != nil {
		node = node.left
	}
	return node
}
