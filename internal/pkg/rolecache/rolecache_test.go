package rolecache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New(5 * time.Minute)
	defer c.Stop()

	_, ok := c.Get("roles")
	assert.False(t, ok)

	c.Set("roles", []string{"artist", "organiser"})
	v, ok := c.Get("roles")
	assert.True(t, ok)
	assert.Equal(t, []string{"artist", "organiser"}, v)
}

func TestCache_ExpiresWithClock(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	c := NewWithClock(5*time.Minute, clock)
	defer c.Stop()

	c.Set("roles", "value")

	now = now.Add(4 * time.Minute)
	_, ok := c.Get("roles")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("roles")
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := New(5 * time.Minute)
	defer c.Stop()

	c.Set("roles", "value")
	c.Clear()

	_, ok := c.Get("roles")
	assert.False(t, ok)
}

func TestCache_StopTwice(t *testing.T) {
	c := New(time.Minute)

	c.Stop()
	c.Stop()
}

func TestCache_CleanupDropsExpiredEntries(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	c := NewWithClock(time.Minute, clock)
	defer c.Stop()

	c.Set("stale", "value")
	now = now.Add(2 * time.Minute)
	c.Set("fresh", "value")

	c.cleanup()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.NotContains(t, c.entries, "stale")
	assert.Contains(t, c.entries, "fresh")
}
