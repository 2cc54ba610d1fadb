// File: snapshot.go
// Role: Non-mutating structural export of the whole store.
//
// Determinism:
//   - The returned map is a plain id → vertex mapping; iterate via
//     VertexIDs() when insertion order matters.

package core

// Snapshot returns a plain mapping from id to a structural copy of each
// stored vertex — its id, adjacency and payload — for inspection and
// testing. The input graph is not mutated, and mutating the result has no
// effect on the store.
// Complexity: O(V + E).
func (g *Graph) Snapshot() map[string]Vertex {
	out := make(map[string]Vertex, len(g.byID))
	for id, v := range g.byID {
		out[id] = v.clone()
	}

	return out
}
