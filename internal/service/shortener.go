package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/codegrove/url-shortener/internal/cache"
	"github.com/codegrove/url-shortener/internal/domain"
	"github.com/codegrove/url-shortener/internal/repository"
	"github.com/codegrove/url-shortener/internal/shortener"
)

// maxCreateAttempts bounds the collision-retry loop in CreateShortURL.
// With 62^6 possible codes a collision is already rare; hitting the bound
// means the random source is broken, not that the code space is full.
const maxCreateAttempts = 10

// urlShortener implements URLShortener interface
type urlShortener struct {
	repo      repository.URLRepository
	cache     cache.Cache
	generator shortener.Generator
}

// NewURLShortener creates a new URL shortener service
func NewURLShortener(repo repository.URLRepository, cache cache.Cache, generator shortener.Generator) URLShortener {
	return &urlShortener{
		repo:      repo,
		cache:     cache,
		generator: generator,
	}
}

// InitializeCache loads data from the repository into the cache
func (s *urlShortener) InitializeCache(ctx context.Context) error {
	data, err := s.repo.LoadCacheData(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cache data: %w", err)
	}

	return s.cache.LoadData(ctx, data)
}

// CreateShortURL validates the URL, then generates candidate codes until
// one inserts cleanly. Only collisions are retried; any other repository
// error surfaces immediately.
func (s *urlShortener) CreateShortURL(ctx context.Context, originalURL string) (*domain.URLEntry, error) {
	if strings.TrimSpace(originalURL) == "" {
		return nil, fmt.Errorf("%w: url must not be empty", domain.ErrInvalidInput)
	}
	if _, err := url.ParseRequestURI(originalURL); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	createdAt := time.Now()

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		shortCode, err := s.generator.GenerateShortCode(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		// The insert is the uniqueness check; the repository surfaces a
		// losing race as a conflict like any other collision.
		entry, err := s.repo.CreateURL(ctx, shortCode, originalURL, createdAt)
		if err == nil {
			if cacheErr := s.cache.Set(ctx, shortCode, originalURL); cacheErr != nil {
				log.Printf("Warning: failed to cache new entry %s: %v", shortCode, cacheErr)
			}
			return entry, nil
		}
		if !domain.IsConflict(err) {
			return nil, fmt.Errorf("failed to create URL: %w", err)
		}

		log.Printf("Short code collision on %q (attempt %d/%d), regenerating", shortCode, attempt, maxCreateAttempts)
	}

	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrCodeExhausted, maxCreateAttempts)
}

// GetOriginalURL resolves a short code to its original URL, consulting the
// cache before the repository
func (s *urlShortener) GetOriginalURL(ctx context.Context, shortCode string) (string, error) {
	if originalURL, exists := s.cache.Get(ctx, shortCode); exists {
		return originalURL, nil
	}

	entry, err := s.repo.GetURL(ctx, shortCode)
	if err != nil {
		return "", fmt.Errorf("failed to resolve short code: %w", err)
	}

	if cacheErr := s.cache.Set(ctx, shortCode, entry.OriginalURL); cacheErr != nil {
		log.Printf("Warning: failed to cache entry %s: %v", shortCode, cacheErr)
	}

	return entry.OriginalURL, nil
}

// GetURLInfo retrieves detailed information about a short URL
func (s *urlShortener) GetURLInfo(ctx context.Context, shortCode string) (*domain.URLEntry, error) {
	entry, err := s.repo.GetURL(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL info: %w", err)
	}

	return entry, nil
}

// DeleteShortURL removes a short URL. Deleting an unknown code is an
// error so clients can tell "deleted" from "nothing to delete".
func (s *urlShortener) DeleteShortURL(ctx context.Context, shortCode string) error {
	if err := s.repo.DeleteURL(ctx, shortCode); err != nil {
		return fmt.Errorf("failed to delete URL: %w", err)
	}

	if err := s.cache.Delete(ctx, shortCode); err != nil {
		log.Printf("Warning: failed to delete from cache %s: %v", shortCode, err)
	}

	return nil
}

// GetAllURLs retrieves all short URLs in insertion order
func (s *urlShortener) GetAllURLs(ctx context.Context) ([]*domain.URLEntry, error) {
	entries, err := s.repo.GetAllURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get URLs: %w", err)
	}

	return entries, nil
}

// Close closes the service and its dependencies
func (s *urlShortener) Close() error {
	if err := s.generator.Close(); err != nil {
		return fmt.Errorf("failed to close generator: %w", err)
	}
	if err := s.cache.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

// Ensure urlShortener implements URLShortener interface
var _ URLShortener = (*urlShortener)(nil)
