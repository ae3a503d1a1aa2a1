// Package cave turns an undirected edge list of named caves into an immutable,
// index-addressed Graph ready for path search.
//
// What:
//
//   - Build(edges, opts...): interns every name to a dense NodeID in first-seen
//     order, classifies each node Big or Small from its casing, and lays the
//     adjacency out as a single N×stride table where stride is the maximum degree.
//   - Graph: read-only view exposing Neighbors (insertion order), IsBig, Start,
//     End, names, the input edge list and a content Fingerprint.
//
// Why:
//
//   - Dense ids let searches keep visit state in flat slices instead of maps.
//   - One contiguous adjacency allocation; no per-node resizing for a static graph.
//   - No pointers between nodes, so the structure is trivially shareable
//     across goroutines once built.
//
// Data model:
//
//	names  []string   id → name
//	sizes  []Size     id → Big | Small
//	adj    []NodeID   row id occupies adj[id*stride : (id+1)*stride], NoNode = empty
//	deg    []int      occupied slots per row
//
// Complexity:
//
//   - Build:     Time O(E + N·stride), Memory O(N·stride)
//   - Neighbors: Time O(stride) per full iteration, no allocations
//
// Errors:
//
//   - ErrMalformedInput  an edge endpoint is empty or contains '-' or whitespace
//   - ErrConfig          no start or no end node (ErrMissingStart, ErrMissingEnd)
//   - ErrInternal        adjacency row overflow (ErrRowOverflow); stride invariant broken
//
// Preconditions:
//
//	Valid input never links two Big caves directly. Build does not reject such
//	edges (see BigBigEdges for a lint); path searches over them would not terminate.
package cave
