package paths

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cavepaths/cave"
)

// countParallel splits the search at the first level: every admissible
// neighbor of start roots an independent subtree searched by its own walker,
// seeded with the state it would have after entering start.
func countParallel(g *cave.Graph, p Policy, o Options) (int64, error) {
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)

	onPath := o.OnPath
	if onPath != nil {
		var mu sync.Mutex
		onPath = func(path []cave.NodeID) error {
			mu.Lock()
			defer mu.Unlock()
			return o.OnPath(path)
		}
	}

	start := g.Start()
	roots := g.NeighborIDs(start)
	counts := make([]int64, len(roots))
	for i, root := range roots {
		eg.Go(func() error {
			w := newWalker(g, p, ctx.Done(), ctx.Err, onPath)
			w.seed(start)
			if !w.allowed(root) {
				return nil
			}
			n, err := w.search(root, 1)
			counts[i] = n
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	return total, nil
}

// seed applies the bookkeeping search(start, 0) performs before recursing.
func (w *walker) seed(start cave.NodeID) {
	if w.onPath != nil {
		w.path = append(w.path, start)
	}
	if w.graph.IsSmall(start) {
		w.state.enter(start)
	}
}
