// Package lru provides a small bounded cache used to memoize compiled patterns.
package lru

import (
	"container/list"
	"sync"
)

const defaultCapacity = 256

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a goroutine safe least recently used cache
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
}

// New creates a cache holding at most capacity entries
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns cached value and marks it as recently used
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores a value, evicting the least recently used one when full
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value = entry[K, V]{key: key, value: value}
		c.order.MoveToFront(elem)
		return
	}
	c.items[key] = c.order.PushFront(entry[K, V]{key: key, value: value})
	if c.order.Len() <= c.capacity {
		return
	}
	if last := c.order.Back(); last != nil {
		c.order.Remove(last)
		delete(c.items, last.Value.(entry[K, V]).key)
	}
}

// Load returns cached value or computes and stores it, errors are not cached
func (c *Cache[K, V]) Load(key K, compute func(K) (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := compute(key)
	if err != nil {
		return value, err
	}
	c.Put(key, value)
	return value, nil
}

// Len returns number of cached entries
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
