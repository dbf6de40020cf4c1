// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

// Fingerprint returns a stable, non-cryptographic fingerprint of a
// JSON-serializable value. Structurally equal values produce equal
// fingerprints (Go serializes map keys sorted and struct fields in
// declaration order). Collisions are tolerated: the registry always falls
// back to deep equality before reusing a definition.
func Fingerprint(v any) uint64 {
	data, err := json.Marshal(v)
	if err != nil {
		// Unserializable values still need a deterministic bucket; the
		// deep-equality fallback keeps this safe.
		data = []byte(fmt.Sprintf("%T", v))
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
