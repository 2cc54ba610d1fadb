// Package cycles enumerates the distinct elementary cycles of a core.Graph,
// optionally bounded by a maximum path length.
//
// What:
//
//   - FindCycles(g, opts...): runs one depth-first search per vertex as
//     potential cycle origin, in store enumeration order, carrying the
//     current path as an explicit worklist of frames (no recursion). A
//     neighbor equal to the path's origin closes a cycle; a neighbor already
//     on the path prunes the branch (that cycle is reached from its own
//     origin instead).
//   - WithMaxDepth(d): bounds the number of edges a returning path may use.
//     A cycle of edge-length L is reported iff L ≤ d; d = 0 disables
//     detection entirely; the default is Unbounded.
//   - Deduplication: two discovered cycles that are rotations of one another
//     are the same cycle. Each cycle is canonicalized to its
//     lexicographically minimal rotation (Booth's algorithm) and reported
//     once, as an open sequence of vertex ids (the origin repeat excluded),
//     in first-discovery order.
//
// Why:
//   - Reject circular dependencies in build graphs before planning
//   - Report every offending cycle, not just the first back-edge
//
// The detector is stateless over the store's adjacency relation: it takes an
// adjacency snapshot up front and never mutates the graph. Callers must not
// mutate the graph while a detection run is in progress.
//
// Complexity:
//
//   - Time:   O(V·(V+E) + C·V·L)  (V=#vertices, E=#edges, C=#cycles,
//     L=avg cycle length; each origin seeds its own bounded DFS)
//   - Memory: O(V + C·L)          (worklist + path + canonical cycle storage)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrNegativeMaxDepth  WithMaxDepth received a negative bound
package cycles
