// Package dag is an in-memory directed graph for modeling dependency
// relationships among arbitrary entities — build units, source files,
// tasks — and answering two structural questions about them:
//
//   - "what does X depend on / what depends on X" (adjacency queries)
//   - "does the graph contain a cycle, and which vertices form it"
//
// 🚀 What is dag-go?
//
//	A small, zero-dependency library split the classic way:
//		• core/   — the graph store: vertex/edge insertion, ordered adjacency
//		            lookups, in-place payload merging, structural snapshots
//		• cycles/ — bounded depth-first cycle enumeration with canonical
//		            (minimal-rotation) deduplication
//		• builds/ — an affected-builds orchestrator built entirely on the
//		            public core/cycles API: content fingerprints, change
//		            propagation, dependency-first rebuild planning
//
// ✨ Design points
//
//   - Vertices are owned by the store and addressed by id, never by pointer
//   - Adjacency preserves edge-insertion order; enumeration preserves
//     vertex-insertion order
//   - Invariant-violating mutations (duplicate vertices, duplicate edges,
//     self-loops, edges to unregistered vertices) are silent no-ops
//   - Single-owner model: one goroutine mutates and queries; no locks
//
// Quick ASCII example:
//
//	A ──▶ B ──▶ C
//	▲           │
//	└───────────┘
//
//	a three-vertex dependency cycle, reported once as [A B C].
//
//	go get github.com/antoine-coulon/dag-go
package dag
