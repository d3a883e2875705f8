// Package stack provides a LIFO adapter over list.Singly.
//
// What
//
//   - Stack[T]: Push, Pop, Peek, Size, IsEmpty, Clear.
//   - Push/Pop work on the list head, so every operation is O(1).
//
// Why
//
//   - bst.DepthFirstSearch drives its frontier with this stack; it exists
//     so callers get a named LIFO contract instead of "a list used backwards".
//
// Usage
//
//	s := stack.New[int]()
//	s.Push(1)
//	s.Push(2)
//	v, err := s.Pop() // v == 2
//
// Errors
//
//   - ErrEmptyStack on Pop or Peek of an empty stack.
package stack
