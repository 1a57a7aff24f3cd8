package splay

// Delete removes key from the tree and reports whether it was present.
// A located node is splayed to the root before removal; a miss leaves the
// tree unchanged.
func (t *Tree[K, V]) Delete(key K) bool {
	node := t.find(key)
	if node == nil {
		return false
	}
	t.splay(node)
	t.removeNode(node)
	return true
}

// Remove is an alias for Delete.
func (t *Tree[K, V]) Remove(key K) bool {
	return t.Delete(key)
}

// removeNode drops node's key from the tree, choosing the case by child
// count. In the one and two child cases node stays in place and receives
// the content of the node that is physically unlinked.
func (t *Tree[K, V]) removeNode(node *Node[K, V]) {
	switch {
	case node.left == nil && node.right == nil:
		t.removeLeaf(node)
	case node.right == nil:
		t.spliceChild(node, node.left)
	case node.left == nil:
		t.spliceChild(node, node.right)
	default:
		successor, successorParent := node.right, node
		for successor.left != nil {
			successorParent = successor
			successor = successor.left
		}
		node.key = successor.key
		node.value = successor.value
		t.removeSuccessor(successor, successorParent)
	}
}

func (t *Tree[K, V]) removeLeaf(node *Node[K, V]) {
	if node.parent == nil {
		t.root = nil
	} else {
		node.parent.removeChild(node)
		node.parent = nil
	}
	t.size--
}

// spliceChild pulls child's content and children up into node.
func (t *Tree[K, V]) spliceChild(node, child *Node[K, V]) {
	node.key = child.key
	node.value = child.value
	node.left = child.left
	node.right = child.right
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
	child.parent, child.left, child.right = nil, nil, nil
	t.size--
}

// removeSuccessor unlinks the minimum of a right subtree. successor never
// has a left child, so it is either a leaf or has only a right child, and
// its parent is the one tracked during the descent.
func (t *Tree[K, V]) removeSuccessor(successor, successorParent *Node[K, V]) {
	if successor.right == nil {
		successorParent.removeChild(successor)
		successor.parent = nil
		t.size--
		return
	}
	t.spliceChild(successor, successor.right)
}
