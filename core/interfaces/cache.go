// Package interfaces defines the contracts the core business logic depends on.
// Concrete implementations live under infrastructure/ and are injected at startup.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for TTL cache operations.
// Implementations can be in-memory, library-backed, or anything else that
// honors per-entry expiry. Entries past their TTL must behave as absent.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte, or an error if the key is absent
	// or its TTL has elapsed.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with the given TTL, unconditionally
	// overwriting any existing entry. A ttl of 0 stores indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
