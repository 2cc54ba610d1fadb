// File: methods_vertices.go
// Role: Vertex lifecycle & enumeration queries.
//
// Determinism:
//   - Vertices()/VertexIDs() return vertices in insertion order.

package core

// AddVertices inserts each vertex of vs into the store, in argument order.
// A vertex whose id is already present is ignored entirely — the stored
// vertex keeps its adjacency and payload unchanged (first insertion wins).
// A vertex with an empty id is likewise ignored. No error is ever raised;
// the store grows monotonically.
//
// The stored instance is a copy of the argument, so later mutation of the
// caller's value has no effect on the graph.
// Complexity: O(len(vs)) amortized.
func (g *Graph) AddVertices(vs ...Vertex) {
	for _, v := range vs {
		// Silent rejections: empty id, duplicate id.
		if v.ID == "" {
			continue
		}
		if _, exists := g.byID[v.ID]; exists {
			continue
		}
		// Store a private copy and remember insertion position.
		stored := v.clone()
		g.byID[v.ID] = &stored
		g.order = append(g.order, v.ID)
	}
}

// HasVertex reports whether a vertex with the given id is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, exists := g.byID[id]

	return exists
}

// Vertex returns a snapshot copy of the vertex with the given id and true,
// or the zero Vertex and false when id is not registered.
// Complexity: O(d + p) for d outgoing edges and p payload keys.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	v, exists := g.byID[id]
	if !exists {
		return Vertex{}, false
	}

	return v.clone(), true
}

// Vertices returns snapshot copies of all stored vertices in insertion order.
// Complexity: O(V + E).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.byID[id].clone())
	}

	return out
}

// VertexIDs returns all vertex ids in insertion order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []string {
	return append([]string(nil), g.order...)
}

// VertexCount returns the number of stored vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.byID)
}

// EdgeCount returns the total number of edges across all vertices.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	var n int
	for _, v := range g.byID {
		n += len(v.AdjacentTo)
	}

	return n
}
