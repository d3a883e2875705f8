package bst_test

import (
	"fmt"

	"github.com/katalvlaran/collections/bst"
)

// ExampleTree_TraverseInOrder shows ordered retrieval from an unordered feed.
func ExampleTree_TraverseInOrder() {
	tree := bst.New[int]()
	tree.FromArray([]int{5, 3, 8, 1, 4, 7, 9})

	for _, node := range tree.TraverseInOrder().Values() {
		fmt.Print(node.Value, " ")
	}
	fmt.Println()
	// Output:
	// 1 3 4 5 7 8 9
}

// ExampleTree_BreadthFirstSearch demonstrates level-order membership checks.
func ExampleTree_BreadthFirstSearch() {
	tree := bst.New[string]()
	tree.FromArray([]string{"m", "d", "s", "a", "k"})

	fmt.Println(tree.BreadthFirstSearch("k"))
	fmt.Println(tree.BreadthFirstSearch("z"))
	// Output:
	// true
	// false
}

// ExampleTree_Remove shows the predecessor replacement policy on the root.
func ExampleTree_Remove() {
	tree := bst.New[int]()
	tree.FromArray([]int{5, 3, 8, 1, 4, 7, 9})

	tree.Remove(5) // root replaced by 4, the max of its left subtree
	fmt.Println("root:", tree.Root().Value)
	fmt.Println("size:", tree.Size())
	// Output:
	// root: 4
	// size: 6
}
