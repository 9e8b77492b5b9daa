package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/kruskalbench/dsu"
)

// ExampleDisjointSet merges four vertices into two components.
func ExampleDisjointSet() {
	d := dsu.New(4)
	d.Union(0, 1)
	d.Union(2, 3)
	fmt.Println(d.Count(), d.Connected(0, 1), d.Connected(1, 2))
	d.Union(1, 3)
	fmt.Println(d.Count(), d.Connected(0, 2))
	// Output:
	// 2 true false
	// 1 true
}
