package mixpanel

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

func TestNew_RequiresToken(t *testing.T) {
	_, err := New(Config{}, testHTTPConfig("http://localhost"))
	require.Error(t, err)
}

func TestClient_Track(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/track", r.URL.Path)

		var events []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&events))
		require.Len(t, events, 1)

		assert.Equal(t, "Subscribe", events[0]["event"])

		props, ok := events[0]["properties"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "proj-token", props["token"])
		assert.Equal(t, "reader@example.com", props["distinct_id"])
		assert.Equal(t, float64(0), props["previous_interactions"])
		assert.NotZero(t, props["time"])

		_, _ = w.Write([]byte("1"))
	}))
	defer server.Close()

	client, err := New(Config{Token: "proj-token"}, testHTTPConfig(server.URL))
	require.NoError(t, err)

	err = client.Track(context.Background(), "reader@example.com", "Subscribe", map[string]any{
		"previous_interactions": 0,
	})
	require.NoError(t, err)
}

func TestClient_Track_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := New(Config{Token: "proj-token"}, testHTTPConfig(server.URL))
	require.NoError(t, err)

	err = client.Track(context.Background(), "reader@example.com", "Subscribe", nil)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
