// Package anthropic implements quote generation against the Anthropic Messages API.
//
// The adapter translates provider responses into domain errors so the rest of
// the service never sees HTTP details:
//   - transport failures and unparseable non-2xx bodies map to ErrUnavailable
//   - provider error envelopes describing rate limits map to ErrRateLimited
//   - any other provider error or unusable 2xx body maps to ErrMalformed
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lifestore/lifestore-api/internal/adapters/clients"
	"github.com/lifestore/lifestore-api/internal/domain"
)

const (
	// apiVersion is the Anthropic API version header value.
	apiVersion = "2023-06-01"

	// messagesPath is the Messages API endpoint.
	messagesPath = "/v1/messages"

	// rateLimitErrorType is the provider error type for rate limiting.
	rateLimitErrorType = "rate_limit_error"

	defaultMaxTokens = 1024
)

// Config configures the Anthropic generation client.
type Config struct {
	// APIKey authenticates against the Anthropic API. An empty key is a
	// configuration error surfaced at call time, not at startup: the
	// service must come up and report the problem per request.
	APIKey string

	// Model is the model identifier (e.g., "claude-sonnet-4-20250514").
	Model string

	// MaxTokens caps the length of the generated completion.
	MaxTokens int

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Client calls the Anthropic Messages API. It implements ports.GenerationClient.
type Client struct {
	http      *clients.Client
	apiKey    string
	model     string
	maxTokens int
	logger    *slog.Logger
}

// New creates an Anthropic generation client on top of the shared HTTP client
// configuration. The adapter owns authentication headers.
func New(cfg Config, httpCfg clients.Config) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "anthropic.Client"))

	apiKey := cfg.APIKey
	httpCfg.ServiceName = "anthropic"
	httpCfg.Logger = logger
	httpCfg.AuthFunc = func(req *http.Request) {
		req.Header.Set("x-api-key", apiKey)
		req.Header.Set("anthropic-version", apiVersion)
	}

	httpClient, err := clients.New(&httpCfg)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	return &Client{
		http:      httpClient,
		apiKey:    apiKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}, nil
}

// Name identifies this client for health reporting.
func (c *Client) Name() string { return "anthropic" }

// Check reports the circuit breaker state. Reachability is not probed:
// readiness polls would burn provider rate limits.
func (c *Client) Check(_ context.Context) error {
	if c.http.CircuitState() == clients.StateOpen {
		return fmt.Errorf("circuit breaker open")
	}

	return nil
}

// messageRequest is the Messages API request body.
type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messageResponse is the Messages API response envelope. Success responses
// carry content blocks; error responses carry an error object instead.
type messageResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Generate sends the prompt to the Messages API and returns the raw completion
// text. Callers are responsible for validating the text against their format.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", domain.NewConfigurationError("anthropic API key")
	}

	reqBody, err := json.Marshal(messageRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	resp, err := c.http.Post(ctx, messagesPath, bytes.NewReader(reqBody))
	if err != nil {
		c.logger.ErrorContext(ctx, "generation request failed", slog.Any("error", err))
		return "", domain.NewUnavailableError("anthropic", err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewUnavailableError("anthropic", "reading response body")
	}

	return c.parseResponse(ctx, resp.StatusCode, body)
}

// parseResponse classifies the provider response into a completion or a
// domain error. Rate-limit detection checks both the provider error type and
// the message text: the error shape has drifted across API versions.
func (c *Client) parseResponse(ctx context.Context, status int, body []byte) (string, error) {
	var envelope messageResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			return "", domain.NewMalformedError("failed to parse response")
		}
		return "", domain.NewUnavailableError("anthropic", fmt.Sprintf("status %d", status))
	}

	if envelope.Error != nil {
		if isRateLimit(envelope.Error) {
			c.logger.WarnContext(ctx, "provider rate limit hit", slog.Int("status", status))
			return "", domain.NewRateLimitError(envelope.Error.Message)
		}

		c.logger.ErrorContext(ctx, "provider returned error",
			slog.Int("status", status),
			slog.String("error_type", envelope.Error.Type),
		)
		return "", domain.NewMalformedError(envelope.Error.Message)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", domain.NewUnavailableError("anthropic", fmt.Sprintf("status %d", status))
	}

	for _, block := range envelope.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return "", domain.NewMalformedError("failed to parse response")
}

func isRateLimit(apiErr *apiError) bool {
	if apiErr.Type == rateLimitErrorType {
		return true
	}

	return strings.Contains(strings.ToLower(apiErr.Message), "rate limit")
}
