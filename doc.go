// Package cavepaths counts the routes through a cave system.
//
// A cave system is an undirected graph read from "<name>-<name>" lines. Caves
// whose names are entirely uppercase are big and may be revisited freely; all
// others are small. A route runs from "start" to "end" and is subject to one
// of two revisit policies:
//
//	single-visit     every small cave at most once
//	one-extra-visit  one small cave, other than start and end, at most twice
//
// Layout:
//
//	cave/       interned graph with a fixed-stride adjacency table, and its builder
//	edgelist/   parser for the line format (participle grammar, afero loading)
//	bfs/        breadth-first reachability and hop distances
//	paths/      backtracking path counter, enumeration, parallel fan-out, metrics
//	store/      BadgerDB cache of counts keyed by graph fingerprint and policy
//	config/     YAML run configuration
//	cmd/cavepaths  the CLI (count, paths, inspect)
//
// Quick start:
//
//	edges, _ := edgelist.ParseString("start-A\nstart-b\nA-c\nA-b\nb-d\nA-end\nb-end")
//	g, _ := cave.Build(edges)
//	n, _ := paths.Count(g, paths.SingleVisit)   // 10
//	m, _ := paths.Count(g, paths.OneExtraVisit) // 36
package cavepaths
