package paths_test

import (
	"fmt"

	"github.com/katalvlaran/cavepaths/cave"
	"github.com/katalvlaran/cavepaths/edgelist"
	"github.com/katalvlaran/cavepaths/paths"
)

// ExampleCount counts the routes through the reference cave system under
// both policies.
func ExampleCount() {
	edges, _ := edgelist.ParseString("start-A\nstart-b\nA-c\nA-b\nb-d\nA-end\nb-end")
	g, err := cave.Build(edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range paths.Policies() {
		n, err := paths.Count(g, p)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %d\n", p, n)
	}

	// Output:
	// single-visit: 10
	// one-extra-visit: 36
}

// ExampleWithOnPath streams every path as it is found.
func ExampleWithOnPath() {
	edges, _ := edgelist.ParseString("start-A\nA-end\nA-b\nb-end")
	g, _ := cave.Build(edges)

	_, _ = paths.Count(g, paths.SingleVisit, paths.WithOnPath(func(p []cave.NodeID) error {
		fmt.Println(paths.FormatPath(g, p))
		return nil
	}))

	// Output:
	// start,A,end
	// start,A,b,A,end
	// start,A,b,end
}
