package render

import (
	"fmt"
	"testing"
)

func rawFor(i int) string { return fmt.Sprintf(`{"n": %d}`, i) }

func TestCacheHitAvoidsRecompute(t *testing.T) {
	c := NewCache(4)
	c.Get(0, 80, rawFor)
	if c.Misses() != 1 {
		t.Fatalf("misses after first get: %d", c.Misses())
	}
	c.Get(0, 80, rawFor)
	if c.Misses() != 1 {
		t.Fatalf("second get must hit, misses: %d", c.Misses())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	capacity := 3
	c := NewCache(capacity)
	for i := 0; i <= capacity; i++ {
		c.Get(i, 80, rawFor)
	}
	if c.Len() != capacity {
		t.Fatalf("len: %d", c.Len())
	}
	// k2..k4 must still resolve without recomputation.
	before := c.Misses()
	for i := 1; i <= capacity; i++ {
		c.Get(i, 80, rawFor)
	}
	if c.Misses() != before {
		t.Fatalf("recomputed a resident entry: misses %d -> %d", before, c.Misses())
	}
	// k1 was evicted and costs a recompute.
	c.Get(0, 80, rawFor)
	if c.Misses() != before+1 {
		t.Fatalf("k1 should have been evicted, misses: %d", c.Misses())
	}
}

func TestCacheAccessRefreshesRecency(t *testing.T) {
	c := NewCache(2)
	c.Get(0, 80, rawFor)
	c.Get(1, 80, rawFor)
	c.Get(0, 80, rawFor) // 0 is now most recent
	c.Get(2, 80, rawFor) // evicts 1
	before := c.Misses()
	c.Get(0, 80, rawFor)
	if c.Misses() != before {
		t.Fatal("most recently used entry was evicted")
	}
	c.Get(1, 80, rawFor)
	if c.Misses() != before+1 {
		t.Fatal("least recently used entry survived")
	}
}

func TestCacheWidthIsPartOfKey(t *testing.T) {
	c := NewCache(8)
	a := c.Get(0, 80, rawFor)
	b := c.Get(0, 10, rawFor)
	if c.Misses() != 2 {
		t.Fatalf("different widths must not share entries, misses: %d", c.Misses())
	}
	if len(a.FullLines) == len(b.FullLines) {
		t.Fatal("narrow width should produce more wrapped lines")
	}
}

func TestCachePurge(t *testing.T) {
	c := NewCache(4)
	c.Get(0, 80, rawFor)
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("len after purge: %d", c.Len())
	}
	c.Get(0, 80, rawFor)
	if c.Misses() != 2 {
		t.Fatalf("purge must force recompute, misses: %d", c.Misses())
	}
}
