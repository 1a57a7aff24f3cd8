package splay

// splay brings node to the root with a sequence of rotations.
func (t *Tree[K, V]) splay(node *Node[K, V]) {
	rotations := 0
	for node.parent != nil {
		parent := node.parent
		grandparent := parent.parent

		switch {
		case grandparent == nil:
			// zig
			if node.isLeftChild() {
				t.rotateRight(parent)
			} else {
				t.rotateLeft(parent)
			}
			rotations++
		case node.isLeftChild() && parent.isLeftChild():
			// zig-zig
			t.rotateRight(grandparent)
			t.rotateRight(parent)
			rotations += 2
		case !node.isLeftChild() && !parent.isLeftChild():
			// zig-zig
			t.rotateLeft(grandparent)
			t.rotateLeft(parent)
			rotations += 2
		case node.isLeftChild():
			// zig-zag: node is a left child of a right child
			t.rotateRight(parent)
			t.rotateLeft(grandparent)
			rotations += 2
		default:
			// zig-zag: node is a right child of a left child
			t.rotateLeft(parent)
			t.rotateRight(grandparent)
			rotations += 2
		}
	}
	if t.observer != nil {
		t.observer.Splayed(rotations)
	}
}

// rotateLeft promotes x.right into x's position.
//
//	    x                             y
//	   / \                           / \
//	  a   y    -> rotateLeft(x) ->  x   c
//	     / \                       / \
//	    b   c                     a   b
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceInParent(x, y)
	y.left = x
	x.parent = y
	t.rotated()
}

// rotateRight promotes x.left into x's position.
//
//	      x                          y
//	     / \                        / \
//	    y   c -> rotateRight(x) -> a   x
//	   / \                            / \
//	  a   b                          b   c
func (t *Tree[K, V]) rotateRight(x *Node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceInParent(x, y)
	y.right = x
	x.parent = y
	t.rotated()
}

// replaceInParent points x's parent (or the root) at y and gives y x's
// parent link. x's own links are left for the caller.
func (t *Tree[K, V]) replaceInParent(x, y *Node[K, V]) {
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x.parent.left == x:
		x.parent.left = y
	default:
		x.parent.right = y
	}
}

func (t *Tree[K, V]) rotated() {
	if t.observer != nil {
		t.observer.Rotated()
	}
}
