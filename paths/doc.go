// Package paths counts start→end routes through a cave.Graph under a revisit
// policy, using depth-first search with explicit backtracking.
//
// What:
//
//   - Count(g, policy, opts...): number of distinct paths from g.Start() to g.End().
//   - Policies:
//     SingleVisit:   no Small cave appears twice in a path.
//     OneExtraVisit: at most one Small cave appears twice, all others at most once.
//     In both, the start cave is never re-entered and reaching end closes the path.
//   - Enumerate / WithOnPath: the same search, reporting every path it counts.
//   - WithWorkers(n): the neighbors of start split the search into independent
//     subtrees that run concurrently, each with its own visit state.
//
// Why:
//
//   - One search routine serves both policies; only the admission rule differs,
//     so the two variants cannot drift apart.
//   - Visit state is a flat []uint8 indexed by NodeID plus the id holding the
//     extra visit, restored symmetrically on every exit (pure backtracking).
//
// Algorithm:
//
//	search(node):
//	    if node == end: return 1
//	    if node is Small: visits[node]++
//	    total = Σ search(nb) for nb in Neighbors(node) if allowed(nb)
//	    if node is Small: visits[node]--
//	    return total
//
// Complexity:
//
//   - Time:   proportional to the number of enumerated path prefixes (exponential
//     in the worst case; tiny at puzzle scale).
//   - Memory: O(N) visit state, recursion depth ≤ 2N+3.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrUnknownPolicy     policy value outside the defined set
//   - ErrOptionViolation   invalid option (e.g. WithWorkers(0))
//   - ErrSearchBound       recursion exceeded the longest possible path; the
//     input links two Big caves directly (errors.Is cave.ErrInternal)
//   - context errors       search canceled via WithContext
//   - hook errors          propagated from WithOnPath
package paths
