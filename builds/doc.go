// Package builds is an affected-builds orchestrator over a core.Graph: the
// canonical host-application usage of the graph engine, built entirely on
// its public surface.
//
// What:
//
//   - Fingerprint: a stable content digest of a vertex payload (SHA-256 over
//     its canonical JSON encoding), used to detect content changes between
//     runs.
//   - Orchestrator.Affected: the ids whose payload changed since the last
//     successful build, or whose transitive dependencies did — changed
//     content propagates rebuild obligations to dependents. Results come in
//     dependency-first order (deepest dependency before anything that
//     depends on it), from an explicit-stack post-order walk of AdjacentTo.
//   - Orchestrator.Rebuild: runs a caller-supplied BuildFunc over the
//     affected ids in that order, recording fingerprints of successful
//     builds so unchanged units are skipped next time.
//   - Orchestrator.Update: merges new payload content into a unit, after
//     which Affected reflects the change and its propagation.
//
// The orchestrator assumes an acyclic graph; gate construction with
// cycles.FindCycles before planning builds. The walk itself is visit-guarded
// and terminates on any input, but affected-propagation across a cycle is
// not meaningful.
//
// Complexity:
//
//   - Fingerprint: O(payload size)
//   - Affected:    O(V + E) plus one fingerprint per vertex
//   - Rebuild:     Affected cost + one BuildFunc call per affected unit
package builds
