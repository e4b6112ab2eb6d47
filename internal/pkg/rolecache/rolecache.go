// Package rolecache holds a small TTL cache for the ACL role catalog. It is
// constructed once at startup with an injected TTL and clock and torn down
// with Stop, so nothing lives at module scope and the sweep is cancellable.
package rolecache

import (
	"sync"
	"time"
)

type entry struct {
	value    interface{}
	storedAt time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// New starts a background sweep that drops expired entries once per minute.
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
		done:    make(chan struct{}),
	}

	go c.sweep()

	return c
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)

		return nil, false
	}

	return e.value, true
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Stop cancels the background sweep. Safe to call more than once.
func (c *Cache) Stop() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, key)
		}
	}
}
