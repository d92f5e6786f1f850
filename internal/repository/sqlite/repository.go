package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/codegrove/url-shortener/internal/domain"
	"github.com/codegrove/url-shortener/internal/repository"
)

// Repository implements repository.URLRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	repo := newWithDB(db)

	if err := repo.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// newWithDB wraps an existing connection without running migrations
func newWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateURL inserts a new short URL entry. The uniqueness check and the
// insert are a single statement against the UNIQUE constraint, so two
// concurrent inserts of the same candidate code cannot both succeed.
func (r *Repository) CreateURL(ctx context.Context, shortCode, originalURL string, createdAt time.Time) (*domain.URLEntry, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO urls (short_code, original_url, created_at) VALUES (?, ?, ?)",
		shortCode, originalURL, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("short code %q taken: %w", shortCode, domain.ErrCodeConflict)
		}
		return nil, fmt.Errorf("failed to create URL: %w", storageError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", storageError(err))
	}

	return &domain.URLEntry{
		ID:          int(id),
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   createdAt,
	}, nil
}

// GetURL retrieves a URL entry by its short code
func (r *Repository) GetURL(ctx context.Context, shortCode string) (*domain.URLEntry, error) {
	var entry domain.URLEntry
	err := r.db.QueryRowContext(ctx,
		"SELECT id, short_code, original_url, created_at FROM urls WHERE short_code = ?",
		shortCode).Scan(&entry.ID, &entry.ShortCode, &entry.OriginalURL, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("short code %q: %w", shortCode, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get URL: %w", storageError(err))
	}

	return &entry, nil
}

// GetAllURLs retrieves all URL entries in insertion order
func (r *Repository) GetAllURLs(ctx context.Context) ([]*domain.URLEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, short_code, original_url, created_at FROM urls ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to get all URLs: %w", storageError(err))
	}
	defer rows.Close()

	entries := make([]*domain.URLEntry, 0)
	for rows.Next() {
		var entry domain.URLEntry
		if err := rows.Scan(&entry.ID, &entry.ShortCode, &entry.OriginalURL, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan URL row: %w", storageError(err))
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL rows: %w", storageError(err))
	}

	return entries, nil
}

// DeleteURL removes a URL entry by its short code. Deleting an unknown code
// is an error, so callers can tell "deleted" from "nothing to delete".
func (r *Repository) DeleteURL(ctx context.Context, shortCode string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM urls WHERE short_code = ?", shortCode)
	if err != nil {
		return fmt.Errorf("failed to delete URL: %w", storageError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", storageError(err))
	}
	if affected == 0 {
		return fmt.Errorf("short code %q: %w", shortCode, domain.ErrNotFound)
	}

	return nil
}

// URLExists checks if a short code exists
func (r *Repository) URLExists(ctx context.Context, shortCode string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM urls WHERE short_code = ?", shortCode).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check URL existence: %w", storageError(err))
	}
	return count > 0, nil
}

// LoadCacheData loads the short code to original URL mapping for cache warmup
func (r *Repository) LoadCacheData(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT short_code, original_url FROM urls")
	if err != nil {
		return nil, fmt.Errorf("failed to load cache data: %w", storageError(err))
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var shortCode, originalURL string
		if err := rows.Scan(&shortCode, &originalURL); err != nil {
			return nil, fmt.Errorf("failed to scan cache row: %w", storageError(err))
		}
		data[shortCode] = originalURL
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cache rows: %w", storageError(err))
	}

	return data, nil
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// storageError tags a driver or connection failure so callers can
// distinguish it from domain conditions like not-found or conflict
func storageError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

// Ensure Repository implements the interface
var _ repository.URLRepository = (*Repository)(nil)
