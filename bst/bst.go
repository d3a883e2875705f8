package bst

import "cmp"

// Insert places value in the tree by recursive descent. Ties (compare == 0)
// descend left, and Size grows by one on every call — duplicates are never
// rejected.
// Complexity: O(h)
func (t *Tree[T]) Insert(value T) {
	t.root = insert(t.root, value)
	t.size++
}

// insert reattaches the (possibly new) subtree root on the way back up.
func insert[T cmp.Ordered](node *Node[T], value T) *Node[T] {
	if node == nil {
		return &Node[T]{Value: value}
	}
	if cmp.Compare(value, node.Value) <= 0 {
		node.Left = insert(node.Left, value)
	} else {
		node.Right = insert(node.Right, value)
	}

	return node
}

// Remove unlinks one node carrying value and reports whether one was found.
// A node with two children is replaced by its in-order predecessor (the
// maximum of its left subtree): the predecessor's value is copied up and the
// predecessor is then removed from the left subtree. A node with at most one
// child is replaced by that child, or by nothing.
//
// Size shrinks only on a confirmed removal, so no-op calls (empty tree,
// absent value) leave the count consistent with the node population.
// Complexity: O(h)
func (t *Tree[T]) Remove(value T) bool {
	var removed bool
	t.root, removed = remove(t.root, value)
	if removed {
		t.size--
	}

	return removed
}

// remove returns the new subtree root and whether a node was unlinked.
func remove[T cmp.Ordered](node *Node[T], value T) (*Node[T], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	switch result := cmp.Compare(value, node.Value); {
	case result < 0:
		node.Left, removed = remove(node.Left, value)
	case result > 0:
		node.Right, removed = remove(node.Right, value)
	default:
		if node.Left != nil && node.Right != nil {
			// two children: relocate the predecessor's value, then remove
			// the predecessor node itself from the left subtree
			pred := findExtreme(node.Left, func(n *Node[T]) *Node[T] { return n.Right })
			node.Value = pred.Value
			node.Left, _ = remove(node.Left, pred.Value)

			return node, true
		}
		if node.Left != nil {
			return node.Left, true
		}

		return node.Right, true
	}

	return node, removed
}

// Find locates a node carrying value via recursive binary search.
// Returns nil when no node matches.
// Complexity: O(h)
func (t *Tree[T]) Find(value T) *Node[T] {
	return find(t.root, value)
}

func find[T cmp.Ordered](node *Node[T], value T) *Node[T] {
	if node == nil {
		return nil
	}
	switch result := cmp.Compare(value, node.Value); {
	case result < 0:
		return find(node.Left, value)
	case result > 0:
		return find(node.Right, value)
	default:
		return node
	}
}

// FindMin returns the leftmost node, or nil on an empty tree.
// Complexity: O(h)
func (t *Tree[T]) FindMin() *Node[T] {
	return findExtreme(t.root, func(n *Node[T]) *Node[T] { return n.Left })
}

// FindMax returns the rightmost node, or nil on an empty tree.
// Complexity: O(h)
func (t *Tree[T]) FindMax() *Node[T] {
	return findExtreme(t.root, func(n *Node[T]) *Node[T] { return n.Right })
}

// findExtreme follows next until it yields nil, landing on the extreme node
// in that direction.
func findExtreme[T cmp.Ordered](node *Node[T], next func(*Node[T]) *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for next(node) != nil {
		node = next(node)
	}

	return node
}

// ToArray serializes the tree into a binary-heap layout: the node at index i
// has children at 2i+1 and 2i+2. The array holds exactly Size() slots and
// nodes whose heap index falls beyond Size()-1 are skipped, so a skewed tree
// exports lossily (see the package documentation).
// Complexity: O(n)
func (t *Tree[T]) ToArray() []T {
	arr := make([]T, t.size)
	fillArray(arr, 0, t.root)

	return arr
}

func fillArray[T cmp.Ordered](arr []T, i int, node *Node[T]) {
	if node == nil || i >= len(arr) {
		return
	}
	arr[i] = node.Value
	fillArray(arr, 2*i+1, node.Left)
	fillArray(arr, 2*i+2, node.Right)
}

// FromArray bulk-inserts values in slice order.
// Complexity: O(len(values) · h)
func (t *Tree[T]) FromArray(values []T) {
	for _, v := range values {
		t.Insert(v)
	}
}

// Root exposes the root node, or nil on an empty tree.
// Complexity: O(1)
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Size reports the number of nodes.
// Complexity: O(1)
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
// Complexity: O(1)
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}
