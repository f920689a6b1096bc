// ABOUTME: In-memory TTL cache implementation using sync.Map for thread-safe operations
// ABOUTME: Expires entries lazily on read, with an injectable clock for deterministic tests

package memory

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrKeyNotFound is returned for absent or expired keys.
var ErrKeyNotFound = errors.New("key not found")

// item represents a cached item with expiration
type item struct {
	value      []byte
	expiration time.Time
	noExpire   bool
}

// MemoryCache implements the Cache interface using in-memory storage.
// There is no capacity bound and no eviction beyond lazy expiry on read;
// growth is bounded only by the key space, which is an accepted limitation
// of this design rather than a defect.
type MemoryCache struct {
	items sync.Map
	now   func() time.Time
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithClock(time.Now)
}

// NewMemoryCacheWithClock creates a cache that reads time from the given
// clock function, allowing tests to control expiry deterministically.
func NewMemoryCacheWithClock(now func() time.Time) *MemoryCache {
	return &MemoryCache{now: now}
}

// Get retrieves a value from the cache. An entry observed past its expiry
// is deleted before returning ErrKeyNotFound, so expired values are never
// served.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.items.Load(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	entry := value.(*item)

	if !entry.noExpire && c.now().After(entry.expiration) {
		c.items.Delete(key)
		return nil, ErrKeyNotFound
	}

	result := make([]byte, len(entry.value))
	copy(result, entry.value)
	return result, nil
}

// Set stores a value in the cache with the given TTL, unconditionally
// overwriting any existing entry. A ttl of 0 stores indefinitely.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	newItem := &item{
		value:    valueCopy,
		noExpire: ttl == 0,
	}
	if ttl > 0 {
		newItem.expiration = c.now().Add(ttl)
	}

	c.items.Store(key, newItem)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.items.Delete(key)
	return nil
}

// Len returns the number of stored entries, expired or not. Intended for
// tests and diagnostics.
func (c *MemoryCache) Len() int {
	count := 0
	c.items.Range(func(key, value interface{}) bool {
		count++
		return true
	})
	return count
}
