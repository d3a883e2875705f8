// Package bst: node type, tree type, and visit-state constants.
package bst

import "cmp"

// VisitStatus tracks a node's progress through a graph-style search.
// The states are scoped to a single traversal call and never stored on the
// node itself.
type VisitStatus uint8

// Visitation lifecycle: Unvisited → Visiting → Visited.
const (
	// Unvisited: the node has not been scheduled yet (map zero value).
	Unvisited VisitStatus = iota

	// Visiting: the node left the frontier and is being examined.
	Visiting

	// Visited: the node and its children have been handled.
	Visited
)

// Node is a binary tree node. Child slots are exclusively owned: a node is
// reachable from at most one parent, so the structure is always a true tree.
type Node[T cmp.Ordered] struct {
	// Value is the node payload.
	Value T

	// Left holds values comparing ≤ Value, or nil.
	Left *Node[T]

	// Right holds values comparing > Value, or nil.
	Right *Node[T]
}

// Tree is an unbalanced binary search tree; no rotation or rebalancing ever
// happens, so height tracks insertion order, not size.
type Tree[T cmp.Ordered] struct {
	root *Node[T]
	size int
}

// New creates an empty tree.
// Complexity: O(1)
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}
