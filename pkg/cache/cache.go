package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value cache holding JSON-shaped payloads. The
// implementation owns its own synchronization; callers may race reads and
// writes freely (last writer wins within the TTL window).
type Store interface {
	// Get unmarshals the cached value into dest and reports whether the
	// key was present and fresh.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl. A zero ttl stores without expiry.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
