package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
)

type catalogItem struct {
	catalog   entity.Catalog
	expiresAt time.Time // zero = never
}

// MemoryCatalogCache implements port.CatalogCache in process memory.
// It is the cache used when no database is configured.
type MemoryCatalogCache struct {
	now port.Clock

	mu    sync.RWMutex
	items map[string]catalogItem
}

// NewMemoryCatalogCache creates an empty cache. A nil clock means time.Now.
func NewMemoryCatalogCache(clock port.Clock) *MemoryCatalogCache {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryCatalogCache{
		now:   clock,
		items: make(map[string]catalogItem),
	}
}

// Get implements port.CatalogCache.
func (c *MemoryCatalogCache) Get(_ context.Context, key string) (entity.Catalog, bool, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt) {
		c.mu.Lock()
		if current, still := c.items[key]; still && current.expiresAt.Equal(item.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return item.catalog, true, nil
}

// Set implements port.CatalogCache.
func (c *MemoryCatalogCache) Set(_ context.Context, key string, catalog entity.Catalog, ttlMinutes int) error {
	item := catalogItem{catalog: catalog}
	if ttlMinutes > 0 {
		item.expiresAt = c.now().Add(time.Duration(ttlMinutes) * time.Minute)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

// Delete implements port.CatalogCache.
func (c *MemoryCatalogCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}
