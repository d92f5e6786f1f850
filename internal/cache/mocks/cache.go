package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Cache is a mock implementation of cache.Cache
type Cache struct {
	mock.Mock
}

// Get retrieves the original URL for a short code
func (m *Cache) Get(ctx context.Context, shortCode string) (string, bool) {
	args := m.Called(ctx, shortCode)
	return args.String(0), args.Bool(1)
}

// Set stores the original URL for a short code
func (m *Cache) Set(ctx context.Context, shortCode, originalURL string) error {
	args := m.Called(ctx, shortCode, originalURL)
	return args.Error(0)
}

// Delete removes a cache entry
func (m *Cache) Delete(ctx context.Context, shortCode string) error {
	args := m.Called(ctx, shortCode)
	return args.Error(0)
}

// LoadData replaces the cache contents with the given mapping
func (m *Cache) LoadData(ctx context.Context, data map[string]string) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// Len returns the number of cached entries
func (m *Cache) Len() int {
	args := m.Called()
	return args.Int(0)
}

// Close closes the cache connection
func (m *Cache) Close() error {
	args := m.Called()
	return args.Error(0)
}
