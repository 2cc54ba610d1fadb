// Package core defines the central Graph and Vertex types and the
// NewGraph constructor.
//
// The store keeps vertices by value in a map keyed by id, alongside an
// insertion-order index used by every enumeration surface. Adjacency is a
// plain ordered slice of ids on each vertex — edges are resolved through the
// store at query time, never held as live references.
package core

// Vertex is a node in the dependency graph.
//
// ID is the opaque, caller-chosen identifier, unique within its Graph.
// AdjacentTo lists the ids of outgoing edges in edge-insertion order;
// duplicates and self-references never appear once the vertex is stored.
// Payload carries arbitrary caller data, opaque to the graph engine; it is
// mutated only through Graph.MergePayload.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// AdjacentTo holds the ids this vertex points at (its dependencies),
	// in the order the edges were created.
	AdjacentTo []string

	// Payload stores arbitrary user data, opaque to the engine.
	Payload map[string]any
}

// clone returns a deep-enough copy of v: the adjacency slice and the payload
// map are duplicated, payload values are shared (payloads are opaque).
func (v Vertex) clone() Vertex {
	out := Vertex{ID: v.ID}
	if v.AdjacentTo != nil {
		out.AdjacentTo = append([]string(nil), v.AdjacentTo...)
	}
	if v.Payload != nil {
		out.Payload = make(map[string]any, len(v.Payload))
		for k, val := range v.Payload {
			out.Payload[k] = val
		}
	}

	return out
}

// Graph is the in-memory dependency-graph store.
//
// byID owns the single stored instance of every vertex; order records ids in
// insertion sequence so that enumeration (Vertices, VertexIDs, AdjacentFrom,
// Snapshot iteration by callers) is deterministic and insertion-ordered.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	byID  map[string]*Vertex // vertex id → stored vertex
	order []string           // ids in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{byID: make(map[string]*Vertex)}
}
