package stack

import (
	"errors"

	"github.com/katalvlaran/collections/list"
)

// ErrEmptyStack is returned by Pop and Peek when the stack holds no elements.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a LIFO sequence backed by a singly linked list; the list head is
// the top of the stack.
type Stack[T any] struct {
	items *list.Singly[T]
}

// New creates an empty stack.
// Complexity: O(1)
func New[T any]() *Stack[T] {
	return &Stack[T]{items: list.NewSingly[T]()}
}

// Push places value on top of the stack.
// Complexity: O(1)
func (s *Stack[T]) Push(value T) {
	s.items.InsertFront(value)
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack if the stack holds no elements.
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, error) {
	value, err := s.items.RemoveFront()
	if err != nil {
		var zero T
		return zero, ErrEmptyStack
	}

	return value, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack if the stack holds no elements.
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, error) {
	head := s.items.Head()
	if head == nil {
		var zero T
		return zero, ErrEmptyStack
	}

	return head.Data, nil
}

// Size reports the number of stacked elements.
// Complexity: O(1)
func (s *Stack[T]) Size() int {
	return s.items.Size()
}

// IsEmpty reports whether the stack holds no elements.
// Complexity: O(1)
func (s *Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

// Clear drops every element, leaving an empty stack.
// Complexity: O(1)
func (s *Stack[T]) Clear() {
	s.items.Clear()
}
