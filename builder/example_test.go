package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvltree/builder"
	"github.com/katalvlaran/lvltree/levelorder"
)

// ExampleBuild builds the canonical 15-node complete tree and prints its
// breadth-first layering.
func ExampleBuild() {
	root, err := builder.Build(builder.Complete(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := levelorder.LevelOrder(root)
	fmt.Println(res)
	// Output:
	// 1
	// 2 3
	// 4 5 6 7
	// 8 9 10 11 12 13 14 15
}

// ExamplePath builds the standard unbalanced fixture: a left-only chain.
func ExamplePath() {
	root, _ := builder.Build(builder.Path(builder.Left, 3))
	res, _ := levelorder.LevelOrder(root)
	fmt.Println(res)
	// Output:
	// 1
	// 2
	// 3
}

// ExampleFromHeap wires an explicit slice in heap order.
func ExampleFromHeap() {
	root, _ := builder.Build(builder.FromHeap([]int64{7, 3, 9, 1}))
	res, _ := levelorder.LevelOrder(root)
	fmt.Println(res)
	// Output:
	// 7
	// 3 9
	// 1
}
