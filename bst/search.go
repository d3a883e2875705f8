package bst

import (
	"github.com/katalvlaran/collections/queue"
	"github.com/katalvlaran/collections/stack"
)

// DepthFirstSearch reports whether value exists in the tree, driving the
// traversal with an explicit stack. Children are pushed right-then-left so
// the left subtree is explored first; the search stops on the first match.
//
// The per-call visitation map guards against re-scheduling a node already
// seen. On a true tree (exclusive child ownership) that can never happen —
// the bookkeeping is the general graph-search shape, kept for reuse against
// structures where node identity can recur.
// Complexity: O(n) time, O(n) frontier memory.
func (t *Tree[T]) DepthFirstSearch(value T) bool {
	if t.size <= 0 {
		return false
	}

	frontier := stack.New[*Node[T]]()
	frontier.Push(t.root)
	visited := make(map[*Node[T]]VisitStatus, t.size)

	for !frontier.IsEmpty() {
		current, _ := frontier.Pop()
		visited[current] = Visiting
		if current.Value == value {
			return true
		}
		if current.Right != nil && visited[current.Right] == Unvisited {
			frontier.Push(current.Right)
		}
		if current.Left != nil && visited[current.Left] == Unvisited {
			frontier.Push(current.Left)
		}
		visited[current] = Visited
	}

	return false
}

// BreadthFirstSearch reports whether value exists in the tree, driving the
// traversal level by level with an explicit queue (left child before right).
// Same visitation bookkeeping and same membership answer as
// DepthFirstSearch; only the visit order differs.
// Complexity: O(n) time, O(n) frontier memory.
func (t *Tree[T]) BreadthFirstSearch(value T) bool {
	if t.size <= 0 {
		return false
	}

	frontier := queue.New[*Node[T]]()
	frontier.Enqueue(t.root)
	visited := make(map[*Node[T]]VisitStatus, t.size)

	for !frontier.IsEmpty() {
		current, _ := frontier.Dequeue()
		visited[current] = Visiting
		if current.Value == value {
			return true
		}
		if current.Left != nil && visited[current.Left] == Unvisited {
			frontier.Enqueue(current.Left)
		}
		if current.Right != nil && visited[current.Right] == Unvisited {
			frontier.Enqueue(current.Right)
		}
		visited[current] = Visited
	}

	return false
}
