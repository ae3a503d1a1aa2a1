package cave

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Build constructs a Graph from an unordered list of undirected edges.
//
// Implementation:
//   - Stage 1: Validate every endpoint name (ErrMalformedInput).
//   - Stage 2: Intern names in first-seen order and count endpoint occurrences.
//   - Stage 3: Resolve the start and end roles (ErrMissingStart, ErrMissingEnd).
//   - Stage 4: Allocate the N×stride table, stride = maximum degree.
//   - Stage 5: Link every edge in both directions, in input order.
//
// Nothing is allocated for the table before validation succeeds, and no partial
// Graph is returned on error.
//
// Complexity: Time O(E + N·stride), Memory O(N·stride).
func Build(edges []Edge, opts ...BuildOption) (*Graph, error) {
	cfg := newBuildConfig(opts...)

	for i, e := range edges {
		if err := validateEdge(e); err != nil {
			return nil, errors.Wrapf(err, "edge %d", i+1)
		}
	}

	// seen preserves first-seen order: ids are handed out as names appear.
	seen := linkedhashmap.New()
	degree := make([]int, 0, 2*len(edges))
	intern := func(name string) NodeID {
		if v, ok := seen.Get(name); ok {
			id := v.(NodeID)
			degree[id]++
			return id
		}
		id := NodeID(seen.Size())
		seen.Put(name, id)
		degree = append(degree, 1)
		return id
	}

	links := make([][2]NodeID, len(edges))
	for i, e := range edges {
		links[i] = [2]NodeID{intern(e.From), intern(e.To)}
	}

	start, ok := seen.Get(cfg.startName)
	if !ok {
		return nil, errors.Wrapf(ErrMissingStart, "no node named %q", cfg.startName)
	}
	end, ok := seen.Get(cfg.endName)
	if !ok {
		return nil, errors.Wrapf(ErrMissingEnd, "no node named %q", cfg.endName)
	}
	if start == end {
		return nil, errors.Wrapf(ErrSameStartEnd, "both roles resolve to %q", cfg.startName)
	}

	n := seen.Size()
	stride := 0
	for _, d := range degree {
		if d > stride {
			stride = d
		}
	}

	g := &Graph{
		names:  make([]string, n),
		sizes:  make([]Size, n),
		index:  make(map[string]NodeID, n),
		adj:    make([]NodeID, n*stride),
		deg:    make([]int, n),
		stride: stride,
		links:  links,
		start:  start.(NodeID),
		end:    end.(NodeID),
	}
	seen.Each(func(k, v interface{}) {
		name, id := k.(string), v.(NodeID)
		g.names[id] = name
		g.sizes[id] = cfg.classify(name)
		g.index[name] = id
	})
	for i := range g.adj {
		g.adj[i] = NoNode
	}

	for _, l := range links {
		if err := g.link(l[0], l[1]); err != nil {
			return nil, err
		}
		if err := g.link(l[1], l[0]); err != nil {
			return nil, err
		}
	}

	klog.V(3).Infof("cave: built graph nodes=%d edges=%d stride=%d start=%d end=%d",
		n, len(links), stride, g.start, g.end)

	return g, nil
}

// link stores v in the first empty slot of u's row.
// Rows fill left to right, so the first empty slot is deg[u].
func (g *Graph) link(u, v NodeID) error {
	slot := g.deg[u]
	if slot >= g.stride {
		return errors.Wrapf(ErrRowOverflow, "row %q (stride %d) while linking %q",
			g.names[u], g.stride, g.names[v])
	}
	g.adj[int(u)*g.stride+slot] = v
	g.deg[u]++

	return nil
}

// validateEdge checks that both endpoints are usable names.
func validateEdge(e Edge) error {
	if err := validateName(e.From); err != nil {
		return err
	}

	return validateName(e.To)
}

// validateName rejects names that could not have come from a "<name>-<name>" line.
func validateName(name string) error {
	if name == "" {
		return errors.Wrap(ErrMalformedInput, "empty name")
	}
	if strings.ContainsRune(name, '-') {
		return errors.Wrapf(ErrMalformedInput, "name %q contains '-'", name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.Wrapf(ErrMalformedInput, "name %q contains whitespace", name)
	}

	return nil
}
