package memory

import (
	"context"
	"sync"

	"github.com/codegrove/url-shortener/internal/cache"
)

// Cache implements cache.Cache using an in-memory map
type Cache struct {
	data  map[string]string
	mutex sync.RWMutex
}

// New creates a new in-memory cache
func New() *Cache {
	return &Cache{
		data: make(map[string]string),
	}
}

// Get retrieves the original URL for a short code
func (c *Cache) Get(ctx context.Context, shortCode string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	originalURL, exists := c.data[shortCode]
	return originalURL, exists
}

// Set stores the original URL for a short code
func (c *Cache) Set(ctx context.Context, shortCode, originalURL string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[shortCode] = originalURL
	return nil
}

// Delete removes a cache entry
func (c *Cache) Delete(ctx context.Context, shortCode string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, shortCode)
	return nil
}

// LoadData replaces the cache contents with the given mapping
func (c *Cache) LoadData(ctx context.Context, data map[string]string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]string, len(data))
	for shortCode, originalURL := range data {
		c.data[shortCode] = originalURL
	}

	return nil
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.data)
}

// Close is a no-op for the in-memory cache
func (c *Cache) Close() error {
	return nil
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)
