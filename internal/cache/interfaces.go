package cache

import (
	"context"
)

// Cache defines the interface for read-through caching of resolved URLs.
// The repository owns the record set; the cache only mirrors the
// short code to original URL mapping for fast redirects.
type Cache interface {
	// Get retrieves the original URL for a short code
	Get(ctx context.Context, shortCode string) (string, bool)

	// Set stores the original URL for a short code
	Set(ctx context.Context, shortCode, originalURL string) error

	// Delete removes a cache entry
	Delete(ctx context.Context, shortCode string) error

	// LoadData replaces the cache contents with the given mapping
	LoadData(ctx context.Context, data map[string]string) error

	// Len returns the number of cached entries
	Len() int

	// Close closes the cache connection (if applicable)
	Close() error
}
