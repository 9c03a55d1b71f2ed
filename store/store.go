// Package store defines where serialized registry entries live.
//
// Implementations MUST be byte-for-byte transparent: List must return exactly
// the bytes previously passed to Put for an entry, with no added metadata and
// no re-encoding. The strict decoder treats any mutation as a malformed
// entry and the registry will skip it.
//
// Implementations must tolerate concurrent writers: the registry is shared
// by independent OS processes, each registering and deregistering its own
// entry. Per-entry operations must be atomic; cross-entry coordination is
// not required.
package store

import "context"

// Store is a named byte store for registry entries.
type Store interface {
	// Put stores data under name, replacing any previous entry atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes an entry. Deleting a missing entry is not an error:
	// the owning process may have cleaned up already.
	Delete(ctx context.Context, name string) error

	// List returns the contents of every entry, keyed by name. Entries that
	// vanish mid-scan are simply absent from the result.
	List(ctx context.Context) (map[string][]byte, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
