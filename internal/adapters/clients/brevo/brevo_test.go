package brevo

import (
	"context"
	"encoding/json"
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

	client, err := New(Config{APIKey: "brevo-key", ListID: 2}, testHTTPConfig(baseURL))
	require.NoError(t, err)

	return client
}

func TestNew_RequiresListID(t *testing.T) {
	_, err := New(Config{APIKey: "brevo-key"}, testHTTPConfig("http://localhost"))
	require.Error(t, err)
}

func TestClient_Subscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/contacts", r.URL.Path)
		assert.Equal(t, "brevo-key", r.Header.Get("api-key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "reader@example.com", req["email"])
		assert.Equal(t, []any{float64(2)}, req["listIds"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
}

func TestClient_Subscribe_DuplicateIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "duplicate_parameter", "message": "Contact already exist"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
}

func TestClient_Subscribe_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "invalid_parameter", "message": "email is invalid"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Subscribe(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_Subscribe_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Subscribe(context.Background(), "reader@example.com")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
