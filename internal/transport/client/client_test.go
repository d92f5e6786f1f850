package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegrove/url-shortener/internal/domain"
)

func TestNewClient(t *testing.T) {
	serverURL := "http://localhost:8080"
	client := NewClient(serverURL)

	assert.NotNil(t, client)
	assert.Equal(t, serverURL, client.serverURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_CreateURL(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		expectedResponse := domain.CreateURLResponse{
			ShortCode:   "aB3xZ9",
			ShortURL:    "http://localhost:8080/aB3xZ9",
			OriginalURL: "https://example.com",
			CreatedAt:   time.Now(),
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/urls", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			// Verify request body
			var req domain.CreateURLRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, "https://example.com", req.URL)

			// Send response
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(expectedResponse)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		ctx := context.Background()

		response, err := client.CreateURL(ctx, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, expectedResponse.ShortCode, response.ShortCode)
		assert.Equal(t, expectedResponse.ShortURL, response.ShortURL)
		assert.Equal(t, expectedResponse.OriginalURL, response.OriginalURL)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		ctx := context.Background()

		_, err := client.CreateURL(ctx, "invalid-url")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server returned status 400")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("invalid json"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		ctx := context.Background()

		_, err := client.CreateURL(ctx, "https://example.com")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := client.CreateURL(ctx, "https://example.com")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "context canceled")
	})
}

func TestClient_GetURL(t *testing.T) {
	t.Run("successful retrieval", func(t *testing.T) {
		expectedEntry := domain.URLEntry{
			ID:          1,
			ShortCode:   "aB3xZ9",
			OriginalURL: "https://example.com",
			CreatedAt:   time.Now(),
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/urls/aB3xZ9", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expectedEntry)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		entry, err := client.GetURL(context.Background(), "aB3xZ9")
		require.NoError(t, err)
		assert.Equal(t, expectedEntry.ID, entry.ID)
		assert.Equal(t, expectedEntry.ShortCode, entry.ShortCode)
		assert.Equal(t, expectedEntry.OriginalURL, entry.OriginalURL)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		_, err := client.GetURL(context.Background(), "ghost1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestClient_DeleteURL(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/urls/aB3xZ9", r.URL.Path)

			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		err := client.DeleteURL(context.Background(), "aB3xZ9")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		err := client.DeleteURL(context.Background(), "ghost1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestClient_ListURLs(t *testing.T) {
	t.Run("successful listing", func(t *testing.T) {
		expectedEntries := []*domain.URLEntry{
			{ID: 1, ShortCode: "code01", OriginalURL: "https://a.com", CreatedAt: time.Now()},
			{ID: 2, ShortCode: "code02", OriginalURL: "https://b.com", CreatedAt: time.Now()},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/urls", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expectedEntries)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		entries, err := client.ListURLs(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "code01", entries[0].ShortCode)
		assert.Equal(t, "code02", entries[1].ShortCode)
	})

	t.Run("empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
		}))
		defer server.Close()

		client := NewClient(server.URL)

		entries, err := client.ListURLs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		_, err := client.ListURLs(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server returned status 500")
	})
}
