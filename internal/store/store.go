// Package store provides the process-local collections that back the
// mock API. Nothing here survives a restart.
package store

import "sync"

// Collection is a mutex-guarded map of records keyed by id. Scan
// callbacks run under the read lock and must not call back into the
// collection.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	return v, ok
}

func (c *Collection[T]) Put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = v
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// Scan visits every record. Returning false from fn stops the scan.
func (c *Collection[T]) Scan(fn func(id string, v T) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id, v := range c.items {
		if !fn(id, v) {
			return
		}
	}
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
