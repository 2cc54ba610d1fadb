// File: methods_payload.go
// Role: In-place payload mutation.

package core

// MergePayload shallow-merges partial into the stored vertex's payload:
// keys in partial overwrite same-named existing keys, all other existing
// keys are preserved. The update applies to the single stored instance —
// no copy or versioning. Sibling vertices are never touched.
//
// An unregistered id or a nil/empty partial is a silent no-op.
// Complexity: O(len(partial)).
func (g *Graph) MergePayload(id string, partial map[string]any) {
	v, exists := g.byID[id]
	if !exists || len(partial) == 0 {
		return
	}
	if v.Payload == nil {
		v.Payload = make(map[string]any, len(partial))
	}
	for k, val := range partial {
		v.Payload[k] = val
	}
}
