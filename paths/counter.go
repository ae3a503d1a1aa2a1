package paths

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cavepaths/bfs"
	"github.com/katalvlaran/cavepaths/cave"
)

// walker encapsulates the state of one sequential search.
type walker struct {
	graph  *cave.Graph
	policy Policy
	state  visitState
	bound  int                       // deepest recursion any valid path needs
	done   <-chan struct{}           // nil when the context can never be canceled
	ctxErr func() error              // reports why done closed
	onPath func([]cave.NodeID) error // per-path hook, may be nil
	path   []cave.NodeID             // maintained only when onPath != nil
}

// Count returns the number of distinct paths from g.Start() to g.End() under p.
//
// Implementation:
//   - Stage 1: Validate graph, policy and options.
//   - Stage 2: Optionally short-circuit to 0 when end is unreachable (BFS).
//   - Stage 3: Run the backtracking search, sequentially or fanned out over
//     start's neighbors (WithWorkers).
//
// The same g and p always yield the same count; neighbor order only changes
// the order in which paths are reported to WithOnPath.
func Count(g *cave.Graph, p Policy, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !p.Valid() {
		return 0, errors.Wrapf(ErrUnknownPolicy, "policy %d", p)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	mode := modeSequential
	if o.Workers > 1 {
		mode = modeParallel
	}
	began := time.Now()

	// A BFS route is a simple path that never re-enters start, so it is
	// admissible under both policies: reachable ⇔ count > 0.
	if o.CheckReachability {
		ok, err := bfs.Reachable(g, g.Start(), g.End(), bfs.WithContext(o.Ctx))
		if err != nil {
			observe(p, mode, classify(err), 0, began)
			return 0, errors.Wrap(err, "paths: reachability")
		}
		if !ok {
			observe(p, mode, resultUnreachable, 0, began)
			klog.V(2).Infof("paths: %s: end %q unreachable from %q", p, g.Name(g.End()), g.Name(g.Start()))
			return 0, nil
		}
	}

	var (
		n   int64
		err error
	)
	if mode == modeParallel {
		n, err = countParallel(g, p, o)
	} else {
		w := newWalker(g, p, o.Ctx.Done(), o.Ctx.Err, o.OnPath)
		n, err = w.search(g.Start(), 0)
	}
	if err != nil {
		observe(p, mode, classify(err), 0, began)
		return 0, err
	}

	observe(p, mode, resultOK, n, began)
	klog.V(2).Infof("paths: %s: %s paths (%s, workers=%d) in %v",
		p, humanize.Comma(n), mode, o.Workers, time.Since(began))

	return n, nil
}

func newWalker(g *cave.Graph, p Policy, done <-chan struct{}, ctxErr func() error,
	onPath func([]cave.NodeID) error) *walker {
	w := &walker{
		graph:  g,
		policy: p,
		state:  newVisitState(g.Len()),
		bound:  2*g.Len() + 3,
		done:   done,
		ctxErr: ctxErr,
		onPath: onPath,
	}
	if onPath != nil {
		w.path = make([]cave.NodeID, 0, w.bound+1)
	}

	return w
}

// search counts the paths that extend the current prefix through node.
// Visit state is restored before every return, including error returns.
func (w *walker) search(node cave.NodeID, depth int) (int64, error) {
	if w.onPath != nil {
		w.path = append(w.path, node)
		defer func() { w.path = w.path[:len(w.path)-1] }()
	}

	// 1. Terminal: end closes exactly one path, whatever its size.
	if node == w.graph.End() {
		if w.onPath != nil {
			if err := w.onPath(w.path); err != nil {
				return 0, errors.Wrap(err, "paths: OnPath hook")
			}
		}
		return 1, nil
	}

	// 2. Defensive bound and cancellation, checked before any bookkeeping.
	if depth > w.bound {
		return 0, errors.Wrapf(ErrSearchBound, "depth %d at %q (bound %d)",
			depth, w.graph.Name(node), w.bound)
	}
	if w.done != nil {
		select {
		case <-w.done:
			return 0, w.ctxErr()
		default:
		}
	}

	// 3. Enter, explore admissible neighbors, leave.
	small := w.graph.IsSmall(node)
	if small {
		w.state.enter(node)
	}

	var (
		total int64
		err   error
	)
	for nb := range w.graph.Neighbors(node) {
		if !w.allowed(nb) {
			continue
		}
		var n int64
		if n, err = w.search(nb, depth+1); err != nil {
			break
		}
		total += n
	}

	if small {
		w.state.leave(node)
	}
	if err != nil {
		return 0, err
	}

	return total, nil
}

// allowed is the admission rule shared by both policies.
func (w *walker) allowed(nb cave.NodeID) bool {
	if nb == w.graph.Start() {
		return false
	}
	if w.graph.IsBig(nb) {
		return true
	}

	return w.state.admits(w.policy, nb)
}
