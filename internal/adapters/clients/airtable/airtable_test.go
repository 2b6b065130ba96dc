package airtable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifestore/lifestore-api/internal/adapters/clients"
	"github.com/lifestore/lifestore-api/internal/domain"
	"github.com/lifestore/lifestore-api/internal/platform/config"
)

func testHTTPConfig(baseURL string) clients.Config {
	return clients.Config{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(Config{
		APIKey: "pat-test",
		BaseID: "appBooks",
		Table:  "Books",
	}, testHTTPConfig(baseURL))
	require.NoError(t, err)

	return client
}

func TestNew_RequiresBaseAndTable(t *testing.T) {
	_, err := New(Config{APIKey: "pat"}, testHTTPConfig("http://localhost"))
	require.Error(t, err)
}

func TestClient_Snapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/appBooks/Books", r.URL.Path)
		assert.Equal(t, "Bearer pat-test", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"records": [
				{"fields": {"Title": "Meditations"}},
				{"fields": {"Title": "The Republic"}},
				{"fields": {"Author": "no title field"}}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	snapshot, err := client.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Meditations", "The Republic"}, snapshot.Titles)
}

func TestClient_Snapshot_FollowsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "" {
			_, _ = w.Write([]byte(`{"records": [{"fields": {"Title": "Meditations"}}], "offset": "page2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"records": [{"fields": {"Title": "Nicomachean Ethics"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	snapshot, err := client.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Meditations", "Nicomachean Ethics"}, snapshot.Titles)
}

func TestClient_Snapshot_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Snapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_Snapshot_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"type": "AUTHENTICATION_REQUIRED"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Snapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
