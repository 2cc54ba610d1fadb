// File: methods_adjacent.go
// Role: Neighborhood queries in both directions.
//
// Determinism:
//   - AdjacentTo follows edge-insertion order.
//   - AdjacentFrom follows store enumeration (vertex-insertion) order.

package core

// AdjacentTo returns snapshot copies of the vertices the given vertex points
// at — its dependencies — in edge-insertion order. Ids present in the
// adjacency but absent from the store are skipped defensively. An
// unregistered id yields nil.
// Complexity: O(d) for d outgoing edges (plus copy cost).
func (g *Graph) AdjacentTo(id string) []Vertex {
	src, exists := g.byID[id]
	if !exists {
		return nil
	}
	var out []Vertex
	for _, nid := range src.AdjacentTo {
		// Resolve through the store; unknown ids are simply absent.
		if n, ok := g.byID[nid]; ok {
			out = append(out, n.clone())
		}
	}

	return out
}

// AdjacentToIDs returns the ids the given vertex points at, in edge-insertion
// order, skipping ids that do not resolve in the store. An unregistered id
// yields nil.
// Complexity: O(d).
func (g *Graph) AdjacentToIDs(id string) []string {
	src, exists := g.byID[id]
	if !exists {
		return nil
	}
	var out []string
	for _, nid := range src.AdjacentTo {
		if _, ok := g.byID[nid]; ok {
			out = append(out, nid)
		}
	}

	return out
}

// AdjacentFrom returns snapshot copies of every stored vertex whose adjacency
// contains the given id — its dependents — in store enumeration order.
// Complexity: O(V + E).
func (g *Graph) AdjacentFrom(id string) []Vertex {
	var out []Vertex
	for _, vid := range g.order {
		v := g.byID[vid]
		for _, nid := range v.AdjacentTo {
			if nid == id {
				out = append(out, v.clone())
				break
			}
		}
	}

	return out
}

// AdjacentFromIDs returns the ids of every stored vertex whose adjacency
// contains the given id, in store enumeration order.
// Complexity: O(V + E).
func (g *Graph) AdjacentFromIDs(id string) []string {
	var out []string
	for _, vid := range g.order {
		for _, nid := range g.byID[vid].AdjacentTo {
			if nid == id {
				out = append(out, vid)
				break
			}
		}
	}

	return out
}
