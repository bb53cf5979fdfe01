package asset

import "sync"

// Cache is a concurrency-safe store of fetched model bytes keyed by location.
// Left and right controllers of one device share a cache entry per file.
type Cache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewCache() *Cache {
	return &Cache{items: make(map[string][]byte)}
}

// Get returns the cached bytes for location.
func (c *Cache) Get(location string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.items[location]
	c.mu.RUnlock()
	return data, ok
}

// Put stores data unless another fetch already stored location, and returns
// the bytes now held for it.
func (c *Cache) Put(location string, data []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[location]; ok {
		return existing
	}
	c.items[location] = data
	return data
}

// Len reports the number of cached locations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
