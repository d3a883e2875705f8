// Package queue provides a FIFO adapter over list.Doubly.
//
// What
//
//   - Queue[T]: Enqueue, Dequeue, Peek, Size, IsEmpty, Clear.
//   - Enqueue appends at the list tail, Dequeue removes at the head,
//     so every operation is O(1).
//
// Why
//
//   - bst.BreadthFirstSearch drives its frontier with this queue; like
//     stack, it exists to give the FIFO contract a name.
//
// Usage
//
//	q := queue.New[int]()
//	q.Enqueue(1)
//	q.Enqueue(2)
//	v, err := q.Dequeue() // v == 1
//
// Errors
//
//   - ErrEmptyQueue on Dequeue or Peek of an empty queue.
package queue
