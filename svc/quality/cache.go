package quality

import (
	"context"
	"time"

	"github.com/dmitrymomot/therapist-admin/pkg/cache"
	"github.com/dmitrymomot/therapist-admin/pkg/redis"
)

// Cache stores encoded scan results between requests.
type Cache interface {
	// Get returns the cached value for key, if any.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Clear drops every cached value.
	Clear(ctx context.Context) error
}

// NoOpCache disables caching.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, key string) ([]byte, bool)      { return nil, false }
func (NoOpCache) Set(ctx context.Context, key string, value []byte) error { return nil }
func (NoOpCache) Clear(ctx context.Context) error                         { return nil }

// MemoryCache keeps values in a process-local LRU with expiry.
type MemoryCache struct {
	lru *cache.LRUCache[string, []byte]
}

// NewMemoryCache returns an in-process cache whose entries live for ttl.
func NewMemoryCache(ttl time.Duration, opts ...cache.Option) *MemoryCache {
	opts = append([]cache.Option{cache.WithTTL(ttl)}, opts...)
	return &MemoryCache{lru: cache.NewLRUCache[string, []byte](32, opts...)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	return c.lru.Get(key)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte) error {
	c.lru.Put(key, value)
	return nil
}

func (c *MemoryCache) Clear(ctx context.Context) error {
	c.lru.Clear()
	return nil
}

// RedisCache shares cached values between dashboard replicas.
// The storage should be dedicated to the scanner: Clear resets its whole prefix.
type RedisCache struct {
	storage *redis.Storage
	ttl     time.Duration
}

// NewRedisCache stores values in storage with the given expiry.
func NewRedisCache(storage *redis.Storage, ttl time.Duration) *RedisCache {
	return &RedisCache{storage: storage, ttl: ttl}
}

// Get treats Redis errors as cache misses.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, err := c.storage.Get(ctx, key)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.storage.Set(ctx, key, value, c.ttl)
}

func (c *RedisCache) Clear(ctx context.Context) error {
	return c.storage.Reset(ctx)
}
