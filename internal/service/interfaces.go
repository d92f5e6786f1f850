package service

import (
	"context"

	"github.com/codegrove/url-shortener/internal/domain"
)

// URLShortener defines the interface for URL shortening operations
type URLShortener interface {
	// CreateShortURL creates a new short URL
	CreateShortURL(ctx context.Context, originalURL string) (*domain.URLEntry, error)

	// GetOriginalURL resolves a short code to its original URL
	GetOriginalURL(ctx context.Context, shortCode string) (string, error)

	// GetURLInfo retrieves detailed information about a short URL
	GetURLInfo(ctx context.Context, shortCode string) (*domain.URLEntry, error)

	// DeleteShortURL removes a short URL
	DeleteShortURL(ctx context.Context, shortCode string) error

	// GetAllURLs retrieves all short URLs in insertion order
	GetAllURLs(ctx context.Context) ([]*domain.URLEntry, error)

	// InitializeCache warms the cache from the repository
	InitializeCache(ctx context.Context) error

	// Close closes the service and its dependencies
	Close() error
}
