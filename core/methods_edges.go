// File: methods_edges.go
// Role: Edge creation & existence queries.
//
// Determinism:
//   - AdjacentTo order equals edge-creation order (append-only slices).

package core

// AddEdge appends a directed edge from → to, mutating the stored vertex's
// adjacency in place and preserving edge-insertion order.
//
// The call is a silent no-op when any invariant would be violated:
//  1. from is not a registered vertex;
//  2. to is not a registered vertex (edges to not-yet-registered ids are
//     dropped, not queued);
//  3. from == to (self-loop);
//  4. the edge is already present (duplicate).
//
// No error is raised for any of these; callers cannot distinguish
// "rejected" from "already true".
// Complexity: O(out-degree of from).
func (g *Graph) AddEdge(from, to string) {
	// 1) Both endpoints must already be registered.
	src, exists := g.byID[from]
	if !exists {
		return
	}
	if _, exists = g.byID[to]; !exists {
		return
	}
	// 2) Reject self-loops.
	if from == to {
		return
	}
	// 3) Reject duplicates.
	for _, id := range src.AdjacentTo {
		if id == to {
			return
		}
	}
	// 4) Append, preserving edge-insertion order.
	src.AdjacentTo = append(src.AdjacentTo, to)
}

// HasEdge reports whether an edge from → to exists.
// Complexity: O(out-degree of from).
func (g *Graph) HasEdge(from, to string) bool {
	src, exists := g.byID[from]
	if !exists {
		return false
	}
	for _, id := range src.AdjacentTo {
		if id == to {
			return true
		}
	}

	return false
}
