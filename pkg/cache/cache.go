// Package cache provides pluggable byte caches for rendered diagram text.
//
// Three implementations are provided: [FileCache] for CLI usage,
// [RedisCache] for shared server deployments, and [NullCache] to disable
// caching. Keys for rendered documents are derived from a SHA-256 hash of
// the document's canonical JSON, so identical documents hit the same entry
// regardless of where they were submitted.
package cache

import (
	"context"
	"time"
)

// TTLRender is the default expiry for cached rendered document text.
// Rendering is deterministic, so entries never go stale; the TTL only
// bounds storage growth.
const TTLRender = 24 * time.Hour

// Cache is a byte store with optional per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for the entities mermaidgen caches.
type Keyer interface {
	// RenderKey returns the key for the rendered text of the document
	// with the given content hash.
	RenderKey(docHash string) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for rendered document text.
func (k *DefaultKeyer) RenderKey(docHash string) string {
	return hashKey("render", docHash)
}
