// Package airtable implements the book catalog lookup against the Airtable
// records API. The catalog is treated as a read-only external directory:
// every call fetches a fresh snapshot so the staleness window is one request.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/lifestore/lifestore-api/internal/adapters/clients"
	"github.com/lifestore/lifestore-api/internal/domain"
)

const defaultTitleField = "Title"

// Config configures the Airtable catalog client.
type Config struct {
	// APIKey is the Airtable personal access token.
	APIKey string

	// BaseID identifies the Airtable base holding the catalog.
	BaseID string

	// Table is the table name or ID listing the permitted books.
	Table string

	// TitleField is the field holding the book title. Defaults to "Title".
	TitleField string

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Client fetches catalog snapshots from Airtable. It implements
// ports.CatalogLookup.
type Client struct {
	http       *clients.Client
	baseID     string
	table      string
	titleField string
	logger     *slog.Logger
}

// New creates an Airtable catalog client on top of the shared HTTP client
// configuration.
func New(cfg Config, httpCfg clients.Config) (*Client, error) {
	if cfg.BaseID == "" || cfg.Table == "" {
		return nil, fmt.Errorf("base ID and table are required")
	}

	if cfg.TitleField == "" {
		cfg.TitleField = defaultTitleField
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "airtable.Client"))

	apiKey := cfg.APIKey
	httpCfg.ServiceName = "airtable"
	httpCfg.Logger = logger
	httpCfg.AuthFunc = func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	httpClient, err := clients.New(&httpCfg)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	return &Client{
		http:       httpClient,
		baseID:     cfg.BaseID,
		table:      cfg.Table,
		titleField: cfg.TitleField,
		logger:     logger,
	}, nil
}

// Name identifies this client for health reporting.
func (c *Client) Name() string { return "airtable" }

// Check reports the circuit breaker state.
func (c *Client) Check(_ context.Context) error {
	if c.http.CircuitState() == clients.StateOpen {
		return fmt.Errorf("circuit breaker open")
	}

	return nil
}

// recordsPage is one page of the Airtable list-records response.
type recordsPage struct {
	Records []struct {
		Fields map[string]any `json:"fields"`
	} `json:"records"`
	Offset string `json:"offset"`
}

// Snapshot returns the current catalog of book titles, following pagination
// until Airtable stops returning an offset. Any failure maps to
// ErrUnavailable: a half-fetched catalog must never constrain validation.
func (c *Client) Snapshot(ctx context.Context) (domain.CatalogSnapshot, error) {
	var titles []string
	offset := ""

	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return domain.CatalogSnapshot{}, err
		}

		for _, record := range page.Records {
			if title, ok := record.Fields[c.titleField].(string); ok && title != "" {
				titles = append(titles, title)
			}
		}

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	c.logger.DebugContext(ctx, "fetched catalog snapshot", slog.Int("titles", len(titles)))

	return domain.CatalogSnapshot{Titles: titles}, nil
}

func (c *Client) fetchPage(ctx context.Context, offset string) (*recordsPage, error) {
	path := fmt.Sprintf("/v0/%s/%s", url.PathEscape(c.baseID), url.PathEscape(c.table))
	if offset != "" {
		path += "?offset=" + url.QueryEscape(offset)
	}

	resp, err := c.http.Get(ctx, path)
	if err != nil {
		c.logger.ErrorContext(ctx, "catalog request failed", slog.Any("error", err))
		return nil, domain.NewUnavailableError("airtable", err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUnavailableError("airtable", fmt.Sprintf("status %d", resp.StatusCode))
	}

	var page recordsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, domain.NewUnavailableError("airtable", "unparseable response body")
	}

	return &page, nil
}
