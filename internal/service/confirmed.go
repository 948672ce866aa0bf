package service

import "sync"

// confirmedCache holds the entities the server last confirmed, keyed by
// client side id. It is replaced wholesale by FetchAll and patched by
// individual saves, deletes and toggles.
type confirmedCache[T any] struct {
	key func(T) string

	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newConfirmedCache[T any](key func(T) string) *confirmedCache[T] {
	return &confirmedCache[T]{key: key, items: make(map[string]T)}
}

// Replace drops the current contents and keeps items in the given order.
func (c *confirmedCache[T]) Replace(items []T) {
	next := make(map[string]T, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		k := c.key(it)
		if _, dup := next[k]; !dup {
			order = append(order, k)
		}
		next[k] = it
	}

	c.mu.Lock()
	c.items, c.order = next, order
	c.mu.Unlock()
}

func (c *confirmedCache[T]) Upsert(item T) {
	k := c.key(item)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[k]; !ok {
		c.order = append(c.order, k)
	}
	c.items[k] = item
}

func (c *confirmedCache[T]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *confirmedCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[key]
	return it, ok
}

// List returns a copy of the cached entities.
func (c *confirmedCache[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.items[k])
	}
	return out
}

func (c *confirmedCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
