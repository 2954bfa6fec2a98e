package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counters is a named set of monotonic counters
// Registration takes the lock once per key; increments are lock-free afterwards
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// Get returns the counter for key, creating it on first use
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.RLock()
	ptr, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return ptr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ptr, ok := c.items[key]; ok {
		return ptr
	}
	ptr = new(atomic.Int64)
	c.items[key] = ptr
	return ptr
}

// Inc adds one to key
func (c *Counters) Inc(key string) {
	c.Get(key).Add(1)
}

// Range visits every counter in sorted key order
func (c *Counters) Range(fn func(key string, value int64)) {
	c.mu.RLock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, c.Get(k).Load())
	}
}
