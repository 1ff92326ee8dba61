// Package lru provides a generic, thread-safe LRU cache with optional
// per-entry TTL, used to memoize rendered export artifacts.
//
// A hash map gives O(1) key lookup; a doubly linked list with sentinel
// head and tail gives O(1) recency ordering and eviction.
package lru

import (
	"sync"
	"time"
)

// entry is a linked-list node carrying one key-value pair. expiresAt is
// the zero time when the entry does not expire.
type entry[K comparable, V any] struct {
	key       K
	val       V
	expiresAt time.Time
	prev      *entry[K, V]
	next      *entry[K, V]
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// HitRate returns hits / (hits + misses), or 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithTTL sets a default time-to-live applied by Add. Entries past
// their TTL are dropped lazily on lookup.
func WithTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) { c.defaultTTL = ttl }
}

// WithOnEvict registers a callback invoked (with the lock held) when an
// entry leaves the cache through capacity eviction or TTL expiry.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) { c.onEvict = fn }
}

// Cache is a bounded most-recently-used-first cache. The zero value is
// not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	capacity   int
	defaultTTL time.Duration
	onEvict    func(K, V)
	items      map[K]*entry[K, V]
	head       *entry[K, V]
	tail       *entry[K, V]
	stats      Stats
	now        func() time.Time
}

// New creates a cache holding at most capacity entries. Panics if
// capacity < 1.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity < 1 {
		panic("lru: capacity must be >= 1")
	}

	head := &entry[K, V]{}
	tail := &entry[K, V]{}
	head.next = tail
	tail.prev = head

	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V], capacity),
		head:     head,
		tail:     tail,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and promotes it to most recently used.
// Expired entries count as misses and are removed.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	if c.expired(e) {
		c.dropExpired(e)
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.stats.Hits++
	c.moveToFront(e)
	return e.val, true
}

// Peek returns the value for key without touching recency order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.expired(e) {
		c.dropExpired(e)
		var zero V
		return zero, false
	}
	return e.val, true
}

// Add inserts or updates key with the cache's default TTL. When the
// cache is full the least recently used entry is evicted; Add returns
// that entry's key and true when an eviction occurred.
func (c *Cache[K, V]) Add(key K, val V) (K, bool) {
	return c.AddWithTTL(key, val, c.defaultTTL)
}

// AddWithTTL is Add with an explicit TTL for this entry. ttl <= 0 means
// the entry never expires. Updating an existing key resets its TTL.
func (c *Cache[K, V]) AddWithTTL(key K, val V, ttl time.Duration) (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}

	if e, ok := c.items[key]; ok {
		e.val = val
		e.expiresAt = expiresAt
		c.moveToFront(e)
		var zero K
		return zero, false
	}

	var evictedKey K
	evicted := false
	if len(c.items) >= c.capacity {
		victim := c.tail.prev
		c.unlink(victim)
		delete(c.items, victim.key)
		c.stats.Evictions++
		if c.onEvict != nil {
			c.onEvict(victim.key, victim.val)
		}
		evictedKey = victim.key
		evicted = true
	}

	e := &entry[K, V]{key: key, val: val, expiresAt: expiresAt}
	c.items[key] = e
	c.pushFront(e)

	return evictedKey, evicted
}

// Remove deletes key, reporting whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}
	c.unlink(e)
	delete(c.items, key)
	return true
}

// Len reports the number of resident entries, expired ones included
// until a lookup drops them.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys lists unexpired keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for cur := c.head.next; cur != c.tail; cur = cur.next {
		if c.expired(cur) {
			continue
		}
		keys = append(keys, cur.key)
	}
	return keys
}

// Purge empties the cache without firing eviction callbacks.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.head.next = c.tail
	c.tail.prev = c.head
	c.items = make(map[K]*entry[K, V], c.capacity)
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// --- list operations, caller holds the lock ---

func (c *Cache[K, V]) expired(e *entry[K, V]) bool {
	return !e.expiresAt.IsZero() && c.now().After(e.expiresAt)
}

func (c *Cache[K, V]) dropExpired(e *entry[K, V]) {
	c.unlink(e)
	delete(c.items, e.key)
	c.stats.Expirations++
	if c.onEvict != nil {
		c.onEvict(e.key, e.val)
	}
}

func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

func (c *Cache[K, V]) pushFront(e *entry[K, V]) {
	e.next = c.head.next
	e.prev = c.head
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache[K, V]) moveToFront(e *entry[K, V]) {
	c.unlink(e)
	c.pushFront(e)
}
