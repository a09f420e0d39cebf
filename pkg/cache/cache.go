package cache

import (
	"sync"
	"time"
)

type item struct {
	v   any
	exp int64 // unix nanos; 0 = no expiry
}

// Cache is a small in-memory TTL cache safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
}

// New returns a cache whose expired entries are swept every interval.
func New(sweepInterval time.Duration) *Cache {
	c := &Cache{items: make(map[string]item)}
	go c.janitor(sweepInterval)
	return c
}

// Get returns the value and whether it exists and is not expired.
func (c *Cache) Get(key string) (any, bool) {
	now := time.Now().UnixNano()
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if it.exp != 0 && it.exp < now {
		// lazy delete
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return it.v, true
}

// Set stores a value with TTL. ttl<=0 means no expiry.
func (c *Cache) Set(key string, v any, ttl time.Duration) {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	c.mu.Lock()
	c.items[key] = item{v: v, exp: exp}
	c.mu.Unlock()
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache) janitor(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		now := time.Now().UnixNano()
		c.mu.Lock()
		for k, it := range c.items {
			if it.exp != 0 && it.exp < now {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}
