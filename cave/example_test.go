package cave_test

import (
	"fmt"

	"github.com/katalvlaran/cavepaths/cave"
)

// ExampleBuild shows how names map to dense ids and how each adjacency row
// keeps its neighbors in insertion order.
//
//	    start
//	    /   \
//	c--A-----b--d
//	    \   /
//	     end
func ExampleBuild() {
	g, err := cave.Build([]cave.Edge{
		{From: "start", To: "A"}, {From: "start", To: "b"}, {From: "A", To: "c"}, {From: "A", To: "b"},
		{From: "b", To: "d"}, {From: "A", To: "end"}, {From: "b", To: "end"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.Len(), "stride:", g.Stride())
	for id := cave.NodeID(0); int(id) < g.Len(); id++ {
		fmt.Printf("%s (%s):", g.Name(id), g.Size(id))
		for n := range g.Neighbors(id) {
			fmt.Print(" ", g.Name(n))
		}
		fmt.Println()
	}

	// Output:
	// nodes: 6 stride: 4
	// start (small): A b
	// A (big): start c b end
	// b (small): start A d end
	// c (small): A
	// d (small): b
	// end (small): A b
}
