// Package list provides the sequential primitives the rest of the module is
// built on: a singly linked list with an exported chain Node, and a doubly
// linked list for cheap insertion and removal at both ends.
//
// What
//
//   - Node[T]: an exported single-direction chain link (Data, Next). The
//     hashtable package threads its bucket chains through these directly,
//     so append and unlink stay O(1) given a predecessor.
//   - Singly[T]: head/tail sequence; O(1) InsertFront, InsertEnd and
//     RemoveFront, O(n) ElementAt.
//   - Doubly[T]: symmetric sequence; O(1) insertion and removal at either
//     end, plus Values for a materialized snapshot.
//
// Why
//
//   - The hash table stages live chains in a Singly during a rehash.
//   - The stack and queue packages are thin adapters over Singly and Doubly.
//   - Tree traversals in bst return their visit order as a fresh Doubly.
//
// Complexity (n = list length)
//
//   - InsertFront / InsertEnd / RemoveFront: O(1)
//   - Doubly.RemoveEnd: O(1); Singly has no O(1) end removal (no back links)
//   - ElementAt / Values: O(n)
//
// Usage
//
//	l := list.NewSingly[int]()
//	l.InsertEnd(1)
//	l.InsertEnd(2)
//	v, err := l.ElementAt(1) // v == 2
//
// Errors
//
//   - ErrEmptyList        on RemoveFront/RemoveEnd/Front/Back of an empty list.
//   - ErrIndexOutOfRange  on ElementAt with index < 0 or ≥ Size().
//
// Iteration results are undefined after structural mutation of the list.
package list
