// Package bfs provides breadth-first search over a cave.Graph, returning
// hop distances, parent links and visit order from a source cave.
//
// What
//
//   - Explore caves in non-decreasing hop distance from a source.
//   - Result carries Order (visit sequence), Depth (-1 for unreached caves)
//     and Parent (NoNode for the source and unreached caves).
//   - PathTo rebuilds a fewest-hop route; Layers groups Order by depth.
//   - Reachable is the yes/no form used before path counting.
//
// Why
//
//   - Path counting only needs to search when end is reachable at all;
//     a single BFS answers that in O(N·stride) before any backtracking starts.
//   - Layering and shortest hop paths feed the inspect report.
//
// Determinism
//
//	cave.Graph.Neighbors yields ids in edge insertion order and BFS enqueues
//	them in that order, so Order is reproducible for a given input file.
//
// Complexity
//
//   - Time:   O(N·stride)
//   - Memory: O(N)
package bfs
