// ABOUTME: TTL cache implementation backed by the patrickmn/go-cache library
// ABOUTME: Alternative in-process backend with background purging of expired entries

package gocache

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrKeyNotFound is returned for absent or expired keys.
var ErrKeyNotFound = errors.New("key not found")

// GoCache implements the Cache interface using patrickmn/go-cache.
// Unlike the sync.Map backend it also sweeps expired entries in the
// background at the configured cleanup interval.
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new go-cache backed cache. defaultExpiration applies
// to zero-TTL sets; cleanupInterval controls the background sweep.
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *GoCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrKeyNotFound
	}
	return data, nil
}

// Set stores a value in the cache with the given TTL
func (c *GoCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if ttl == 0 {
		c.cache.Set(key, value, cache.NoExpiration)
		return nil
	}

	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *GoCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}
