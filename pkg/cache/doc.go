// Package cache provides a generic, thread-safe LRU cache with optional
// time-based expiry.
//
// The cache evicts the least recently used item once it reaches capacity and,
// when created with WithTTL, treats entries older than the TTL as absent.
// Expired entries are collected lazily on Get and Put.
//
// # Usage
//
//	c := cache.NewLRUCache[string, []byte](64, cache.WithTTL(30*time.Second))
//
//	c.Put("summary", payload)
//	if v, ok := c.Get("summary"); ok {
//		// use v
//	}
//	c.Clear()
//
// All operations take a single mutex and run in O(1).
package cache
