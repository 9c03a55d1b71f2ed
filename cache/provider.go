package cache

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs backing the decode cache.
// Implementations must be safe for concurrent use and byte-for-byte
// transparent: Get must return exactly the []byte previously passed to Set
// for the same key. Cached entries are self-describing and hash-validated,
// so a Provider may evict freely; it must never mutate.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote errors are returned as (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
