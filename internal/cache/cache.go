package cache

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

// Cache is a fixed-capacity in-memory key–value cache with least-recently-
// used eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list with head/tail
// sentinels maintains recency ordering. Every public operation keeps the
// two in lockstep: len(index) always equals the list's node count, and
// every indexed key resolves to a node reachable from the head sentinel.
//
// Cache is not safe for concurrent use. Get mutates list links just like
// Put does, so callers sharing one cache across goroutines must guard
// every operation with a single external lock.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]*node[K, V]
	order    *recencyList[K, V]
}

// New constructs a cache holding at most capacity entries.
// It returns ErrInvalidCapacity when capacity <= 0.
//
// The index is pre-sized to capacity+1: Put briefly holds one entry over
// capacity before evicting, and pre-sizing keeps that transient overflow
// from ever growing the map in steady state.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]*node[K, V], capacity+1),
		order:    newRecencyList[K, V](),
	}, nil
}

// Get returns the value stored under key. A miss returns the zero value
// and false; misses are the expected outcome for absent or evicted keys,
// never an error.
//
// Every hit promotes the entry to most recently used, even though the
// value is unchanged.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	n, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.unlink(n)
	c.order.pushFront(n)
	return n.value, true
}

// Put stores value under key. An existing entry has its value replaced in
// place and is promoted to most recently used; a new entry is created at
// the front. When the insert pushes the population over capacity, the
// single least recently used entry is evicted. Callers are not notified
// of evictions.
func (c *Cache[K, V]) Put(key K, value V) {
	if n, ok := c.index[key]; ok {
		n.value = value
		c.order.unlink(n)
		c.order.pushFront(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.index[key] = n
	c.order.pushFront(n)

	if len(c.index) > c.capacity {
		evicted := c.order.popBack()
		delete(c.index, evicted.key)
	}
}

// Peek returns the value stored under key without updating recency order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if n, ok := c.index[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is resident without updating recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Remove evicts key if resident, reporting whether an entry was removed.
func (c *Cache[K, V]) Remove(key K) bool {
	n, ok := c.index[key]
	if !ok {
		return false
	}
	c.order.unlink(n)
	delete(c.index, key)
	return true
}

// Clear removes every entry. Capacity is retained.
func (c *Cache[K, V]) Clear() {
	clear(c.index)
	c.order.reset()
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the fixed capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Oldest returns the least recently used entry without promoting it.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	if n := c.order.back(); n != nil {
		return n.key, n.value, true
	}
	var k K
	var v V
	return k, v, false
}

// Newest returns the most recently used entry without promoting it.
func (c *Cache[K, V]) Newest() (K, V, bool) {
	if n := c.order.front(); n != nil {
		return n.key, n.value, true
	}
	var k K
	var v V
	return k, v, false
}

// Keys returns a lazy sequence of resident keys ordered most to least
// recently used. The sequence is restartable and read-only: iterating
// does not touch recency order. Mutating the cache mid-iteration is not
// supported.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.order.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns a lazy sequence of resident entries ordered most to least
// recently used, with the same iteration contract as Keys.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return c.order.all()
}
