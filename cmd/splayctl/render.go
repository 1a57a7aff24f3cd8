package main

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/cbehopkins/splaytree/splay"
)

// renderTree draws the tree with the root at the top and each child
// prefixed by its side.
func renderTree[K any](tree *splay.Tree[K, string]) string {
	root := tree.Root()
	if root == nil {
		return "(empty)"
	}
	out := treeprint.NewWithRoot(nodeLabel("", root))
	addChildren(out, root)
	return out.String()
}

func addChildren[K any](branch treeprint.Tree, n *splay.Node[K, string]) {
	children := []struct {
		side string
		node *splay.Node[K, string]
	}{
		{"L", n.Left()},
		{"R", n.Right()},
	}
	for _, c := range children {
		if c.node == nil {
			continue
		}
		label := nodeLabel(c.side, c.node)
		if c.node.Left() == nil && c.node.Right() == nil {
			branch.AddNode(label)
			continue
		}
		addChildren(branch.AddBranch(label), c.node)
	}
}

func nodeLabel[K any](side string, n *splay.Node[K, string]) string {
	label := fmt.Sprintf("%v", n.Key())
	if n.Value() != "" {
		label = fmt.Sprintf("%s (%s)", label, n.Value())
	}
	if side != "" {
		label = side + ": " + label
	}
	return label
}
