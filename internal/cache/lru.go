// Package cache provides thread-safe LRU caching for reflection lookups.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a bounded, thread-safe cache. A nil *LRU is valid and caches nothing.
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

// NewLRU creates a cache holding at most maxItems entries.
// A non-positive maxItems yields a nil cache, which disables caching.
func NewLRU[K comparable, V any](maxItems int) (*LRU[K, V], error) {
	if maxItems <= 0 {
		return nil, nil
	}

	c, err := lru.New[K, V](maxItems)
	if err != nil {
		return nil, err
	}

	return &LRU[K, V]{cache: c}, nil
}

// Get retrieves the value stored for key.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}

	return c.cache.Get(key)
}

// Put adds or updates the value stored for key.
func (c *LRU[K, V]) Put(key K, value V) {
	if c == nil {
		return
	}

	c.cache.Add(key, value)
}

// Len returns the current number of cached entries.
func (c *LRU[K, V]) Len() int {
	if c == nil {
		return 0
	}

	return c.cache.Len()
}
