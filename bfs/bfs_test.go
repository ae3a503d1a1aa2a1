package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/cavepaths/bfs"
	"github.com/katalvlaran/cavepaths/cave"
)

// mustBuild builds g or fails the test.
func mustBuild(t *testing.T, edges ...cave.Edge) *cave.Graph {
	t.Helper()
	g, err := cave.Build(edges)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

// reference returns the canonical cave system; ids are
// start=0 A=1 b=2 c=3 d=4 end=5.
func reference(t *testing.T) *cave.Graph {
	return mustBuild(t,
		cave.Edge{From: "start", To: "A"}, cave.Edge{From: "start", To: "b"},
		cave.Edge{From: "A", To: "c"}, cave.Edge{From: "A", To: "b"},
		cave.Edge{From: "b", To: "d"}, cave.Edge{From: "A", To: "end"},
		cave.Edge{From: "b", To: "end"},
	)
}

func names(g *cave.Graph, ids []cave.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Name(id)
	}
	return out
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := reference(t)
	for _, id := range []cave.NodeID{-1, 6, cave.NoNode} {
		if _, err := bfs.BFS(g, id); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("source %d: want ErrStartVertexNotFound, got %v", id, err)
		}
	}
}

// TestBFS_Layers checks visit order, depths, layers and the shortest route.
func TestBFS_Layers(t *testing.T) {
	g := reference(t)
	res, err := bfs.BFS(g, g.Start())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"start", "A", "b", "c", "end", "d"}; !reflect.DeepEqual(names(g, res.Order), want) {
		t.Errorf("Order = %v; want %v", names(g, res.Order), want)
	}
	if want := []int{0, 1, 1, 2, 2, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}

	layers := res.Layers()
	want := [][]string{{"start"}, {"A", "b"}, {"c", "end", "d"}}
	if len(layers) != len(want) {
		t.Fatalf("Layers = %d layers; want %d", len(layers), len(want))
	}
	for d := range want {
		if got := names(g, layers[d]); !reflect.DeepEqual(got, want[d]) {
			t.Errorf("Layers[%d] = %v; want %v", d, got, want[d])
		}
	}

	path, err := res.PathTo(g.End())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"start", "A", "end"}; !reflect.DeepEqual(names(g, path), want) {
		t.Errorf("PathTo(end) = %v; want %v", names(g, path), want)
	}
	if path, err := res.PathTo(g.Start()); err != nil || len(path) != 1 {
		t.Errorf("PathTo(start) = %v, %v; want [start]", path, err)
	}
}

// TestReachable covers connected, disconnected and invalid cases.
func TestReachable(t *testing.T) {
	g := reference(t)
	if ok, err := bfs.Reachable(g, g.Start(), g.End()); err != nil || !ok {
		t.Errorf("reference: got %v, %v; want true", ok, err)
	}

	split := mustBuild(t, cave.Edge{From: "start", To: "A"}, cave.Edge{From: "b", To: "end"})
	if ok, err := bfs.Reachable(split, split.Start(), split.End()); err != nil || ok {
		t.Errorf("split: got %v, %v; want false", ok, err)
	}
	res, err := bfs.BFS(split, split.Start())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.PathTo(split.End()); err == nil {
		t.Error("PathTo(end) should fail when end is unreached")
	}
	if got := len(res.Layers()); got != 2 {
		t.Errorf("split: %d layers; want 2", got)
	}

	if _, err := bfs.Reachable(split, 42, split.End()); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("invalid source: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestBFS_Cancelled returns the context error and no result.
func TestBFS_Cancelled(t *testing.T) {
	g := reference(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(g, g.Start(), bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) || res != nil {
		t.Errorf("got %v, %v; want nil, context.Canceled", res, err)
	}
	if _, err := bfs.Reachable(g, g.Start(), g.End(), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Reachable: want context.Canceled, got %v", err)
	}
}
