// Package cache provides a small TTL plus bounded-size memoization cache.
// Eviction is approximate LRU: when the cache overflows, the oldest fifth of
// entries by insertion order is dropped. The cache is purely a performance
// optimization; correctness never depends on it.
package cache

import (
	"sync"
	"time"
)

const defaultEvictFraction = 0.2

type item[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache is a thread-safe TTL+LRU cache keyed by string.
type Cache[V any] struct {
	entries map[string]item[V]
	order   []string
	ttl     time.Duration
	maxSize int
	mu      sync.Mutex
	now     func() time.Time
}

// New creates a cache with the given TTL and maximum size. Zero values fall
// back to 15 minutes and 1000 entries.
func New[V any](ttl time.Duration, maxSize int) *Cache[V] {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &Cache[V]{
		entries: make(map[string]item[V]),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get returns the cached value for key. Expired entries are evicted lazily
// on lookup.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	it, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(it.insertedAt) > c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return it.value, true
}

// Put stores a value. On overflow the oldest 20% of entries by insertion
// order are evicted.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = item[V]{value: value, insertedAt: c.now()}

	if len(c.entries) > c.maxSize {
		c.evictOldest()
	}
}

// evictOldest drops the oldest fifth of live entries. Caller holds the lock.
func (c *Cache[V]) evictOldest() {
	k := int(float64(c.maxSize) * defaultEvictFraction)
	if k < 1 {
		k = 1
	}

	evicted := 0
	i := 0
	for ; i < len(c.order) && evicted < k; i++ {
		key := c.order[i]
		if _, ok := c.entries[key]; ok {
			delete(c.entries, key)
			evicted++
		}
	}
	c.order = c.order[i:]
}

// Len returns the number of live entries, counting expired-but-unvisited
// ones.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]item[V])
	c.order = nil
}
