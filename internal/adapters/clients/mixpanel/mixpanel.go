// Package mixpanel implements analytics event tracking against the Mixpanel
// ingestion API.
package mixpanel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lifestore/lifestore-api/internal/adapters/clients"
	"github.com/lifestore/lifestore-api/internal/domain"
)

const trackPath = "/track"

// Config configures the Mixpanel tracking client.
type Config struct {
	// Token is the Mixpanel project token.
	Token string

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Client sends events to Mixpanel. It implements ports.AnalyticsTracker.
type Client struct {
	http   *clients.Client
	token  string
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Mixpanel tracking client on top of the shared HTTP client
// configuration.
func New(cfg Config, httpCfg clients.Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("project token is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "mixpanel.Client"))

	httpCfg.ServiceName = "mixpanel"
	httpCfg.Logger = logger

	httpClient, err := clients.New(&httpCfg)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	return &Client{
		http:   httpClient,
		token:  cfg.Token,
		logger: logger,
		now:    time.Now,
	}, nil
}

type trackEvent struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
}

// Track sends a single event. Properties must not contain the reserved keys
// token, distinct_id, or time; the client fills those in.
func (c *Client) Track(ctx context.Context, distinctID, event string, properties map[string]any) error {
	props := map[string]any{
		"token":       c.token,
		"distinct_id": distinctID,
		"time":        c.now().Unix(),
	}
	for k, v := range properties {
		props[k] = v
	}

	reqBody, err := json.Marshal([]trackEvent{{Event: event, Properties: props}})
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	resp, err := c.http.Post(ctx, trackPath, bytes.NewReader(reqBody))
	if err != nil {
		return domain.NewUnavailableError("mixpanel", err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return domain.NewUnavailableError("mixpanel", fmt.Sprintf("status %d", resp.StatusCode))
	}

	c.logger.DebugContext(ctx, "event tracked", slog.String("event", event))

	return nil
}
