// Package collections is a grab-bag of generic in-memory containers —
// the building blocks you reach for before you reach for a database.
//
// 🚀 What is collections?
//
//	A small, pure-Go library of classic data structures with honest semantics:
//		• Sequences: singly & doubly linked lists with O(1) end insertion
//		• Adapters: stack (LIFO) and queue (FIFO) over the list primitives
//		• hashtable: separate-chaining hash map with load-factor driven,
//		  coprime-with-2-and-3 capacity growth
//		• bst: unbalanced binary search tree with recursive orderings and
//		  graph-style DFS/BFS membership search
//
// ✨ Why choose collections?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – every structural quirk (ties-go-left, lossy heap export)
//     is documented where it lives, not hidden
//   - Pure Go generics – no code generation, no reflection in hot paths
//   - Extensible – functional options for capacity, hashing and logging
//
// Under the hood, everything is organized under five subpackages:
//
//	list/      — Node, Singly and Doubly linked sequences
//	stack/     — LIFO adapter over list.Singly
//	queue/     — FIFO adapter over list.Doubly
//	hashtable/ — chained hash map with dynamic resizing
//	bst/       — binary search tree, traversals & searches
//
// Quick ASCII example:
//
//	    table[i] → (k₁,v₁) → (k₄,v₄)        5
//	    table[j] → (k₂,v₂)                 / \
//	    table[k] → (k₃,v₃)                3   8
//
//	a chained hash table beside a three-node search tree.
//
// Concurrency: all containers are single-threaded by design; wrap them in
// your own synchronization if you share them across goroutines.
// Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/collections
package collections
