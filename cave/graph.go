// File: graph.go
// Role: read-only accessors over a built Graph.
// Determinism:
//   - Neighbors and NeighborIDs yield ids in edge insertion order.
//   - Names and Edges follow id order and input order respectively.
// Concurrency:
//   - No method mutates the Graph; any number of goroutines may read it.

package cave

import "iter"

// Len returns the number of nodes N. Valid ids are 0..N-1.
func (g *Graph) Len() int { return len(g.names) }

// Stride returns the width of every adjacency row (the maximum degree).
func (g *Graph) Stride() int { return g.stride }

// Start returns the id of the start cave.
func (g *Graph) Start() NodeID { return g.start }

// End returns the id of the end cave.
func (g *Graph) End() NodeID { return g.end }

// Name returns the name of id.
func (g *Graph) Name(id NodeID) string { return g.names[id] }

// Size returns the classification of id.
func (g *Graph) Size(id NodeID) Size { return g.sizes[id] }

// IsBig reports whether id may be revisited without limit.
func (g *Graph) IsBig(id NodeID) bool { return g.sizes[id] == Big }

// IsSmall reports whether id is subject to the revisit policy.
func (g *Graph) IsSmall(id NodeID) bool { return g.sizes[id] == Small }

// Degree returns the number of occupied slots in id's row.
func (g *Graph) Degree(id NodeID) int { return g.deg[id] }

// ID resolves a name to its id.
func (g *Graph) ID(name string) (NodeID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Neighbors iterates the occupied slots of id's adjacency row in the order the
// edges were inserted. Empty slots are skipped.
//
// Complexity: O(stride) per full iteration, no allocations.
func (g *Graph) Neighbors(id NodeID) iter.Seq[NodeID] {
	row := g.row(id)
	return func(yield func(NodeID) bool) {
		for _, n := range row {
			if n == NoNode {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// NeighborIDs returns a fresh copy of id's neighbors in insertion order.
func (g *Graph) NeighborIDs(id NodeID) []NodeID {
	out := make([]NodeID, 0, g.deg[id])
	for n := range g.Neighbors(id) {
		out = append(out, n)
	}

	return out
}

// Names returns a copy of all node names indexed by id.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Edges returns every undirected edge once, in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.links))
	for i, l := range g.links {
		out[i] = Edge{From: g.names[l[0]], To: g.names[l[1]]}
	}

	return out
}

// BigBigEdges returns the edges that connect two Big caves directly.
// Such edges break the termination precondition of path search.
func (g *Graph) BigBigEdges() []Edge {
	var out []Edge
	for _, l := range g.links {
		if g.IsBig(l[0]) && g.IsBig(l[1]) {
			out = append(out, Edge{From: g.names[l[0]], To: g.names[l[1]]})
		}
	}

	return out
}

func (g *Graph) row(id NodeID) []NodeID {
	lo := int(id) * g.stride
	return g.adj[lo : lo+g.stride]
}
