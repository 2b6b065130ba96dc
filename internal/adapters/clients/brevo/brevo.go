// Package brevo implements the mailing list port against the Brevo contacts
// API.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lifestore/lifestore-api/internal/adapters/clients"
	"github.com/lifestore/lifestore-api/internal/domain"
)

const contactsPath = "/v3/contacts"

// Config configures the Brevo mailing list client.
type Config struct {
	// APIKey is the Brevo API key, sent in the api-key header.
	APIKey string

	// ListID is the contact list new subscribers are added to.
	ListID int64

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Client adds contacts to a Brevo list. It implements ports.MailingList.
type Client struct {
	http   *clients.Client
	listID int64
	logger *slog.Logger
}

// New creates a Brevo mailing list client on top of the shared HTTP client
// configuration.
func New(cfg Config, httpCfg clients.Config) (*Client, error) {
	if cfg.ListID <= 0 {
		return nil, fmt.Errorf("list ID is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "brevo.Client"))

	apiKey := cfg.APIKey
	httpCfg.ServiceName = "brevo"
	httpCfg.Logger = logger
	httpCfg.AuthFunc = func(req *http.Request) {
		req.Header.Set("api-key", apiKey)
	}

	httpClient, err := clients.New(&httpCfg)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	return &Client{
		http:   httpClient,
		listID: cfg.ListID,
		logger: logger,
	}, nil
}

type createContactRequest struct {
	Email   string  `json:"email"`
	ListIDs []int64 `json:"listIds"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Subscribe adds the email address to the configured contact list.
// Subscribing an address that is already on the list succeeds: the caller
// only cares that the address ends up subscribed.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	reqBody, err := json.Marshal(createContactRequest{
		Email:   email,
		ListIDs: []int64{c.listID},
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	resp, err := c.http.Post(ctx, contactsPath, bytes.NewReader(reqBody))
	if err != nil {
		c.logger.ErrorContext(ctx, "subscription request failed", slog.Any("error", err))
		return domain.NewUnavailableError("brevo", err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Code == "duplicate_parameter" {
		c.logger.DebugContext(ctx, "contact already subscribed")
		return nil
	}

	c.logger.ErrorContext(ctx, "subscription rejected",
		slog.Int("status", resp.StatusCode),
		slog.String("code", apiErr.Code),
	)

	return domain.NewUnavailableError("brevo", fmt.Sprintf("status %d", resp.StatusCode))
}
