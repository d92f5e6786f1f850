package repository

import (
	"context"
	"time"

	"github.com/codegrove/url-shortener/internal/domain"
)

// URLRepository defines the interface for URL data operations
type URLRepository interface {
	// CreateURL inserts a new short URL entry. The check-and-insert against
	// the short code uniqueness constraint is a single atomic operation;
	// a collision surfaces as domain.ErrCodeConflict.
	CreateURL(ctx context.Context, shortCode, originalURL string, createdAt time.Time) (*domain.URLEntry, error)

	// GetURL retrieves a URL entry by its short code
	GetURL(ctx context.Context, shortCode string) (*domain.URLEntry, error)

	// GetAllURLs retrieves all URL entries in insertion order (ascending id)
	GetAllURLs(ctx context.Context) ([]*domain.URLEntry, error)

	// DeleteURL removes a URL entry by its short code; domain.ErrNotFound
	// when no row was deleted
	DeleteURL(ctx context.Context, shortCode string) error

	// URLExists checks if a short code exists
	URLExists(ctx context.Context, shortCode string) (bool, error)

	// LoadCacheData loads the short code to original URL mapping for cache warmup
	LoadCacheData(ctx context.Context) (map[string]string, error)

	// Close closes the repository connection
	Close() error
}
