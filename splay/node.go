package splay

// Node is a node of a splay Tree.
// The key of a node may change when the tree deletes a neighbouring key,
// since deletion promotes a descendant's key and value into the node that
// keeps its position. Do not hold on to a Node across mutations.
type Node[K any, V any] struct {
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

func newNode[K any, V any](key K, value V, parent *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		parent: parent,
	}
}

// Key returns the key of the node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored with the key.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the left child of the node, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child of the node, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Parent returns the parent of the node, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// removeChild clears whichever child slot holds target.
// target.parent is left alone; the caller owns the rest of the unlink.
func (n *Node[K, V]) removeChild(target *Node[K, V]) {
	if n.left == target {
		n.left = nil
	}
	if n.right == target {
		n.right = nil
	}
}

func (n *Node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}
