// Package bfs provides options, errors and the Result type for breadth-first
// search over a cave.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cavepaths/cave"
)

var (
	// ErrStartVertexNotFound is returned when the source id is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a search.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx is polled once per dequeued cave; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked between caves. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is a BFS tree rooted at Source. Depth and Parent are indexed by
// cave.NodeID; unreached caves have Depth -1 and Parent cave.NoNode.
type Result struct {
	Source cave.NodeID
	Order  []cave.NodeID
	Depth  []int
	Parent []cave.NodeID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id cave.NodeID) bool {
	return int(id) >= 0 && int(id) < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo follows Parent links back from dest, yielding a fewest-hop route
// Source..dest.
func (r *Result) PathTo(dest cave.NodeID) ([]cave.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: cave %d not reached from %d", dest, r.Source)
	}
	path := make([]cave.NodeID, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}

	return path, nil
}

// Layers groups Order by hop distance: Layers()[d] holds the caves at depth
// d in visit order.
func (r *Result) Layers() [][]cave.NodeID {
	var out [][]cave.NodeID
	for _, id := range r.Order {
		d := r.Depth[id]
		if d == len(out) {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}
