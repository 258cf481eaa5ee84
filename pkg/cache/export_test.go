package cache

import "time"

// SetClock replaces the LRU time source in tests.
func (c *LRU[K, V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}
