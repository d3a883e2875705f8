package queue

import (
	"errors"

	"github.com/katalvlaran/collections/list"
)

// ErrEmptyQueue is returned by Dequeue and Peek when the queue holds no elements.
var ErrEmptyQueue = errors.New("queue: queue is empty")

// Queue is a FIFO sequence backed by a doubly linked list; elements enter at
// the tail and leave at the head.
type Queue[T any] struct {
	items *list.Doubly[T]
}

// New creates an empty queue.
// Complexity: O(1)
func New[T any]() *Queue[T] {
	return &Queue[T]{items: list.NewDoubly[T]()}
}

// Enqueue appends value at the back of the queue.
// Complexity: O(1)
func (q *Queue[T]) Enqueue(value T) {
	q.items.InsertEnd(value)
}

// Dequeue removes and returns the front element.
// Returns ErrEmptyQueue if the queue holds no elements.
// Complexity: O(1)
func (q *Queue[T]) Dequeue() (T, error) {
	value, err := q.items.RemoveFront()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return value, nil
}

// Peek returns the front element without removing it.
// Returns ErrEmptyQueue if the queue holds no elements.
// Complexity: O(1)
func (q *Queue[T]) Peek() (T, error) {
	value, err := q.items.Front()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return value, nil
}

// Size reports the number of queued elements.
// Complexity: O(1)
func (q *Queue[T]) Size() int {
	return q.items.Size()
}

// IsEmpty reports whether the queue holds no elements.
// Complexity: O(1)
func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}

// Clear drops every element, leaving an empty queue.
// Complexity: O(1)
func (q *Queue[T]) Clear() {
	q.items.Clear()
}
