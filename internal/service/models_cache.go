package service

import (
	"sync"
	"time"
)

type ModelsCache struct {
	mu       sync.RWMutex
	ids      []string
	cachedAt time.Time
	ttl      time.Duration
}

func NewModelsCache(ttl time.Duration) *ModelsCache {
	return &ModelsCache{ttl: ttl}
}

func (c *ModelsCache) Get() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ids == nil || time.Since(c.cachedAt) > c.ttl {
		return nil
	}
	return c.ids
}

func (c *ModelsCache) Set(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = ids
	c.cachedAt = time.Now()
}
