// File: hash.go
// Role: Stable content fingerprints for vertex payloads.

package builds

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint computes a stable, deterministic digest of a payload.
//
// The payload is serialized to compact JSON — encoding/json emits map keys
// in sorted order, so the digest is independent of key insertion order —
// and hashed with SHA-256. The digest is stable across formatting and key
// ordering, and changes whenever any payload value changes.
//
// A nil payload has a well-defined digest. Payloads holding values that
// cannot be JSON-encoded (channels, funcs, cyclic values) yield an error.
func Fingerprint(payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("builds: fingerprint payload: %w", err)
	}
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
