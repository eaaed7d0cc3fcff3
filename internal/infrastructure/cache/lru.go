// Package cache keeps rendered panel output bounded by entry count and by
// total weight, usually the number of rendered lines.
package cache

import (
	"container/list"
	"sync"
)

// Options bounds an LRU. A zero MaxWeight or nil Weigh disables the weight
// bound.
type Options[V any] struct {
	MaxEntries int
	MaxWeight  int
	Weigh      func(V) int
}

// Stats counts cache outcomes since creation.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
	Entries   int
	Weight    int
}

// LRU is a least recently used cache safe for concurrent use. Get and Set
// both mark an entry as recently used.
type LRU[K comparable, V any] struct {
	opts Options[V]

	mu     sync.Mutex
	items  map[K]*list.Element
	order  *list.List // front is most recent
	weight int
	stats  Stats
}

type entry[K comparable, V any] struct {
	key    K
	value  V
	weight int
}

// New creates a cache. MaxEntries below 1 is treated as 1.
func New[K comparable, V any](opts Options[V]) *LRU[K, V] {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 1
	}
	return &LRU[K, V]{
		opts:  opts,
		items: make(map[K]*list.Element),
		order: list.New(),
	}
}

// NewLRU creates a cache bounded only by entry count.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return New[K, V](Options[V]{MaxEntries: capacity})
}

func (c *LRU[K, V]) weigh(v V) int {
	if c.opts.Weigh == nil || c.opts.MaxWeight <= 0 {
		return 0
	}
	return max(c.opts.Weigh(v), 0)
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		c.stats.Hits++
		return elem.Value.(*entry[K, V]).value, true
	}
	c.stats.Misses++
	var zero V
	return zero, false
}

// Set stores value under key and evicts the least recently used entries
// until both bounds hold. A value heavier than MaxWeight on its own is not
// stored, and any previous value under key is dropped. Set reports whether
// the value was kept.
func (c *LRU[K, V]) Set(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.weigh(value)
	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	if c.opts.MaxWeight > 0 && w > c.opts.MaxWeight {
		return false
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, weight: w})
	c.weight += w
	for c.order.Len() > c.opts.MaxEntries || (c.opts.MaxWeight > 0 && c.weight > c.opts.MaxWeight) {
		c.removeElement(c.order.Back())
		c.stats.Evictions++
	}
	return true
}

// Remove deletes key if present.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// RemoveIf deletes every key matching fn and returns how many were removed.
func (c *LRU[K, V]) RemoveIf(fn func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, elem := range c.items {
		if fn(key) {
			c.removeElement(elem)
			removed++
		}
	}
	return removed
}

func (c *LRU[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	c.weight -= e.weight
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the counters and current size.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.order.Len()
	s.Weight = c.weight
	return s
}
