// Package bst implements an unbalanced binary search tree with ordered
// traversals and graph-style membership search.
//
// What
//
//   - Tree[T]: Insert, Remove, Find, FindMin, FindMax over any ordered T.
//   - TraverseInOrder / TraversePreOrder / TraversePostOrder: recursive
//     orderings, each materialized into a fresh list.Doubly of nodes.
//   - DepthFirstSearch / BreadthFirstSearch: iterative membership checks
//     driven by an explicit stack or queue with per-call visit states.
//   - ToArray / FromArray: heap-layout export (node i → children 2i+1, 2i+2)
//     and bulk in-order import.
//
// Why
//
//   - A plain BST keeps ordered data queryable in O(height) without the
//     bookkeeping of a balanced variant; height is unbounded relative to
//     size under adversarial insertion order, and that trade is deliberate.
//   - The stack/queue searches mirror general graph traversal: on a tree the
//     visitation map is redundant (no shared subtrees), but it is kept as the
//     reusable shape for structures where node identity can recur.
//
// Ordering invariant
//
//	For every node, all values in its left subtree compare ≤ its value and
//	all values in its right subtree compare > it. Duplicates go left, and
//	every Insert grows Size by one — duplicates are never rejected.
//
// Complexity (n = nodes, h = height; h == n on a degenerate chain)
//
//   - Insert / Remove / Find / FindMin / FindMax: O(h)
//   - Traversals and searches: O(n) time, O(n) result or frontier memory
//
// Usage
//
//	t := bst.New[int]()
//	t.FromArray([]int{5, 3, 8, 1, 4, 7, 9})
//	t.Find(4)              // → node
//	t.TraverseInOrder()    // nodes ordered 1,3,4,5,7,8,9
//	t.BreadthFirstSearch(7) // true
//
// Known lossy behavior
//
//	ToArray allocates exactly Size() slots and skips any node whose heap
//	index falls past Size()-1, so a deeply skewed tree exports a truncated
//	(and partially zero-valued) array. This bound exists to avoid
//	out-of-range writes; do not rely on ToArray for skewed trees.
//
// Absent results are nil nodes, not errors. Single-threaded use only.
package bst
