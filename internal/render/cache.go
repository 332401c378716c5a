package render

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheKey identifies one rendered record. Width is part of the key so a
// terminal resize never serves lines wrapped at a stale width.
type CacheKey struct {
	Index int
	Width int
}

// Cache memoizes Render output per (record index, column width) with
// least-recently-used eviction. It is single-owner: only the control loop
// handling input touches it, so no locking is needed beyond what the
// underlying LRU provides.
type Cache struct {
	lru    *lru.Cache[CacheKey, Record]
	misses int
}

// NewCache builds a cache bounded to capacity entries (minimum 1).
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	c, _ := lru.New[CacheKey, Record](capacity)
	return &Cache{lru: c}
}

// Get returns the rendered record for (index, width), computing and storing
// it via raw on a miss. A hit marks the entry most recently used.
func (c *Cache) Get(index, width int, raw func(int) string) Record {
	key := CacheKey{Index: index, Width: width}
	if rec, ok := c.lru.Get(key); ok {
		return rec
	}
	c.misses++
	rec := Render(raw(index), width)
	c.lru.Add(key, rec)
	return rec
}

// Purge drops every entry, used when the caller explicitly reloads a file.
func (c *Cache) Purge() { c.lru.Purge() }

// Len reports the number of resident entries.
func (c *Cache) Len() int { return c.lru.Len() }

// Misses counts renders performed, observable so tests can tell hits from
// recomputation.
func (c *Cache) Misses() int { return c.misses }
