package world

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/metrics"
)

// cachedWorld wraps a live game with the time it was loaded
type cachedWorld struct {
	Game     *domain.Game
	LoadedAt time.Time
}

// worldCache keeps recently used worlds in memory. Entries are live games:
// callers must hold the world lock while touching them.
type worldCache struct {
	lru *expirable.LRU[string, *cachedWorld]
}

// newWorldCache creates a cache holding at most size worlds for ttl.
func newWorldCache(size int, ttl time.Duration) *worldCache {
	return &worldCache{
		lru: expirable.NewLRU[string, *cachedWorld](size, func(string, *cachedWorld) {
			metrics.WorldsLoaded.Dec()
		}, ttl),
	}
}

// Get returns the live game for name, if cached.
func (c *worldCache) Get(name string) (*domain.Game, bool) {
	entry, found := c.lru.Get(name)
	if !found {
		return nil, false
	}
	return entry.Game, true
}

// Set stores a live game.
func (c *worldCache) Set(name string, g *domain.Game) {
	if c.lru.Contains(name) {
		c.lru.Remove(name)
	}
	c.lru.Add(name, &cachedWorld{Game: g, LoadedAt: time.Now()})
	metrics.WorldsLoaded.Inc()
}

// Len reports how many worlds are loaded.
func (c *worldCache) Len() int {
	return c.lru.Len()
}

// Clear drops every loaded world.
func (c *worldCache) Clear() {
	c.lru.Purge()
}
