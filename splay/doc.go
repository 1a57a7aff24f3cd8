// Package splay provides an in-memory ordered map backed by a splay tree:
// a self-adjusting binary search tree that moves recently accessed nodes
// to the root.
//
// # Core Components
//
// Node: A tree node holding a key, a value, two owned children and a
// non-owning parent pointer. Nodes handed out by the tree are read-only
// views; all structural change happens through Tree methods.
//
// Tree: The engine. Insert, Search and a successful Delete splay the
// touched node to the root using zig, zig-zig and zig-zag rotations.
// FindMinimum and FindMaximum never restructure the tree.
//
// Observer: An optional hook notified of every rotation and every
// completed splay, used by the metrics package.
//
// # Ordering
//
// New uses the natural ordering of a cmp.Ordered key type. NewFunc
// accepts any splaytree.Comparator, which must be a strict total order
// for the lifetime of the tree.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Even Search mutates the tree,
// so readers must be serialized with writers as well as with each other.
//
// # Usage Example
//
//	tree := splay.New[int, string]()
//	tree.Insert(3, "three")
//	tree.Insert(1, "one")
//	tree.Add(2)
//
//	if node := tree.Search(3); node != nil {
//	    fmt.Println(node.Key(), node.Value()) // 3 three; 3 is now the root
//	}
//
//	fmt.Println(tree.FindMinimum().Key()) // 1
//	tree.Delete(1)
//	fmt.Println(tree.Size()) // 2
package splay
