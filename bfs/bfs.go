package bfs

import (
	"context"

	"github.com/katalvlaran/cavepaths/cave"
)

// walker holds the queue and the Result under construction.
type walker struct {
	graph *cave.Graph
	ctx   context.Context
	queue []cave.NodeID
	res   *Result
}

// BFS runs breadth-first search on g from source.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and the
// context error if the search is canceled.
func BFS(g *cave.Graph, source cave.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if source < 0 || int(source) >= g.Len() {
		return nil, ErrStartVertexNotFound
	}

	n := g.Len()
	w := &walker{
		graph: g,
		ctx:   o.Ctx,
		queue: make([]cave.NodeID, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]cave.NodeID, 0, n),
			Depth:  make([]int, n),
			Parent: make([]cave.NodeID, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = cave.NoNode
	}

	w.enqueue(source, 0, cave.NoNode)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Reachable reports whether to can be reached from from.
func Reachable(g *cave.Graph, from, to cave.NodeID, opts ...Option) (bool, error) {
	res, err := BFS(g, from, opts...)
	if err != nil {
		return false, err
	}

	return res.Reached(to), nil
}

func (w *walker) enqueue(id cave.NodeID, d int, parent cave.NodeID) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop drains the queue, stopping early only on cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		next := w.res.Depth[id] + 1
		for nbr := range w.graph.Neighbors(id) {
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, next, id)
			}
		}
	}

	return nil
}
