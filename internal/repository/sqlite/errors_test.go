package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegrove/url-shortener/internal/domain"
)

// These tests drive the driver-failure paths with sqlmock, which a real
// sqlite file cannot produce on demand.

func setupMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return newWithDB(db), mock
}

func TestRepository_CreateURL_StorageFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("INSERT INTO urls").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.CreateURL(context.Background(), "aB3xZ9", "https://example.com", time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, domain.ErrCodeConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetURL_StorageFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT id, short_code, original_url, created_at FROM urls").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetURL(context.Background(), "aB3xZ9")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllURLs_StorageFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT id, short_code, original_url, created_at FROM urls ORDER BY id ASC").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetAllURLs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteURL_StorageFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("DELETE FROM urls").
		WillReturnError(errors.New("database is locked"))

	err := repo.DeleteURL(context.Background(), "aB3xZ9")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteURL_NoRowsAffected(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("DELETE FROM urls").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteURL(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LoadCacheData_StorageFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT short_code, original_url FROM urls").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.LoadCacheData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}
