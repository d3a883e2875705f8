package bst

import (
	"cmp"

	"github.com/katalvlaran/collections/list"
)

// TraverseInOrder visits left subtree, node, right subtree, yielding nodes in
// non-decreasing value order. The result is a fresh, fully materialized list;
// it is undefined after structural mutation of the tree.
// Complexity: O(n)
func (t *Tree[T]) TraverseInOrder() *list.Doubly[*Node[T]] {
	order := list.NewDoubly[*Node[T]]()
	inOrder(t.root, order)

	return order
}

func inOrder[T cmp.Ordered](node *Node[T], order *list.Doubly[*Node[T]]) {
	if node == nil {
		return
	}
	inOrder(node.Left, order)
	order.InsertEnd(node)
	inOrder(node.Right, order)
}

// TraversePreOrder visits node, left subtree, right subtree — the order a
// copy of the tree would be rebuilt in.
// Complexity: O(n)
func (t *Tree[T]) TraversePreOrder() *list.Doubly[*Node[T]] {
	order := list.NewDoubly[*Node[T]]()
	preOrder(t.root, order)

	return order
}

func preOrder[T cmp.Ordered](node *Node[T], order *list.Doubly[*Node[T]]) {
	if node == nil {
		return
	}
	order.InsertEnd(node)
	preOrder(node.Left, order)
	preOrder(node.Right, order)
}

// TraversePostOrder visits left subtree, right subtree, node — children
// always precede their parent.
// Complexity: O(n)
func (t *Tree[T]) TraversePostOrder() *list.Doubly[*Node[T]] {
	order := list.NewDoubly[*Node[T]]()
	postOrder(t.root, order)

	return order
}

func postOrder[T cmp.Ordered](node *Node[T], order *list.Doubly[*Node[T]]) {
	if node == nil {
		return
	}
	postOrder(node.Left, order)
	postOrder(node.Right, order)
	order.InsertEnd(node)
}
