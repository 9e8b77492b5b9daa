package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/kruskalbench/bfs"
	"github.com/katalvlaran/kruskalbench/core"
)

// ExampleComponents counts components of 0—1, 2—3 and an isolated 4.
func ExampleComponents() {
	edges := []core.Edge{core.NewEdge(0, 1, 1), core.NewEdge(2, 3, 1)}
	k, err := bfs.Components(5, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(k)
	// Output: 3
}

// ExampleBFS prints the visit order over a path 0—1—2.
func ExampleBFS() {
	edges := []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(0, 1, 1)}
	res, _ := bfs.BFS(3, edges, 0)
	fmt.Println(res.Order, res.Depth)
	// Output: [0 1 2] [0 1 2]
}
