// Package core implements the dependency-graph store: an in-memory directed
// graph whose vertices carry caller-defined payloads and whose adjacency is
// held by id, never by pointer.
//
// What:
//
//   - Graph: owns a set of Vertex records, keyed by opaque caller-chosen ids,
//     and preserves vertex-insertion order on every enumeration surface.
//   - AddVertices / AddEdge: monotonic construction. Invariant-violating
//     mutations — duplicate vertex ids, duplicate edges, self-loops, edges
//     whose endpoints are not yet registered — are silent no-ops, never
//     errors; callers cannot (and must not try to) distinguish "rejected"
//     from "already true".
//   - AdjacentTo / AdjacentFrom: the two directions of the dependency
//     question. AdjacentTo(id) lists what id points at (its dependencies) in
//     edge-insertion order; AdjacentFrom(id) lists what points at id (its
//     dependents) in store enumeration order.
//   - MergePayload: shallow in-place merge of new payload data into the
//     stored vertex, new keys winning.
//   - Snapshot: a structural copy of the whole store for inspection.
//
// Why:
//   - Model "depends on" relations among build units, files, or tasks
//   - Feed the cycles package, which enumerates elementary cycles over the
//     store's adjacency relation
//   - Feed change-propagation consumers (see the builds package)
//
// Ownership & concurrency:
//
// Vertices are stored by value; queries return copies, so callers never hold
// live references into the store. The graph is an exclusively-owned, single
// consumer structure: one goroutine builds, mutates and queries it. There is
// no internal locking, and mutating the graph while a traversal (such as
// cycle detection) is in progress has undefined results.
//
// Complexity:
//
//   - AddVertices, AddEdge, HasVertex, HasEdge: O(1) amortized
//     (AddEdge is O(out-degree) for the duplicate check)
//   - AdjacentTo: O(d) for d outgoing edges
//   - AdjacentFrom: O(V + E) — scans the store in enumeration order
//   - Snapshot: O(V + E)
package core
