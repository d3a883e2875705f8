// Package list: shared node types and sentinel errors.
package list

import "errors"

// Sentinel errors for list operations.
var (
	// ErrEmptyList indicates a removal or peek on a list with no elements.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrIndexOutOfRange indicates an ElementAt index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)

// Node is a single-direction chain link.
//
// Both fields are exported on purpose: consumers such as the hash table own
// their chains outright and relink Next during append and unlink. A Node is
// exclusively owned by the structure that created it; sharing one between
// containers is undefined.
type Node[T any] struct {
	// Data is the payload carried by this link.
	Data T

	// Next points at the following link, or nil at the end of the chain.
	Next *Node[T]
}

// doublyNode is the internal two-direction link used by Doubly.
type doublyNode[T any] struct {
	data T
	prev *doublyNode[T]
	next *doublyNode[T]
}
