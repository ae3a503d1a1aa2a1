package cave_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cavepaths/cave"
)

// BenchmarkBuild_Ladder measures Build on a ladder of 500 rungs alternating
// small and big caves, roughly two orders of magnitude above puzzle scale.
func BenchmarkBuild_Ladder(b *testing.B) {
	edges := []cave.Edge{{From: "start", To: "s0"}}
	for i := 0; i < 500; i++ {
		edges = append(edges,
			cave.Edge{From: fmt.Sprintf("s%d", i), To: fmt.Sprintf("B%d", i)},
			cave.Edge{From: fmt.Sprintf("B%d", i), To: fmt.Sprintf("s%d", i+1)},
		)
	}
	edges = append(edges, cave.Edge{From: "s500", To: "end"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cave.Build(edges)
	}
}
