package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes the SHA-256 content hash of data as a 64-character hex
// string. Render cache keys are derived from this hash of a document's
// canonical JSON.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced cache key: "<prefix>:<hash>". The hash is
// already collision-resistant, so the prefix only separates entry kinds.
func hashKey(prefix, hash string) string {
	return prefix + ":" + hash
}
