// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lifestore/lifestore-api/internal/adapters/clients"
	"github.com/lifestore/lifestore-api/internal/adapters/clients/airtable"
	"github.com/lifestore/lifestore-api/internal/adapters/clients/anthropic"
	"github.com/lifestore/lifestore-api/internal/adapters/clients/brevo"
	"github.com/lifestore/lifestore-api/internal/adapters/clients/mixpanel"
	"github.com/lifestore/lifestore-api/internal/adapters/http"
	"github.com/lifestore/lifestore-api/internal/adapters/http/handlers"
	"github.com/lifestore/lifestore-api/internal/adapters/ratelimit"
	"github.com/lifestore/lifestore-api/internal/app"
	"github.com/lifestore/lifestore-api/internal/platform/config"
	"github.com/lifestore/lifestore-api/internal/platform/logging"
	"github.com/lifestore/lifestore-api/internal/platform/telemetry"
	"github.com/lifestore/lifestore-api/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load .env for local development, then determine the profile.
	// Missing .env is fine; deployed environments set real variables.
	_ = godotenv.Load()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File:    cfg.Log.File,
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	if cfg.Services.Anthropic.APIKey == "" {
		logger.Warn("no generation API key configured, quote endpoints will return errors")
	}

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// httpConfig builds the shared HTTP client settings for one downstream.
	httpConfig := func(baseURL string) clients.Config {
		return clients.Config{
			BaseURL:   baseURL,
			Timeout:   cfg.Client.Timeout,
			Retry:     cfg.Client.Retry,
			Circuit:   cfg.Client.CircuitBreaker,
			Transport: cfg.Client.Transport,
			Logger:    logger,
		}
	}

	// 6. Create downstream clients
	generator, err := anthropic.New(anthropic.Config{
		APIKey:    cfg.Services.Anthropic.APIKey,
		Model:     cfg.Services.Anthropic.Model,
		MaxTokens: cfg.Services.Anthropic.MaxTokens,
		Logger:    logger,
	}, httpConfig(cfg.Services.Anthropic.BaseURL))
	if err != nil {
		return fmt.Errorf("creating anthropic client: %w", err)
	}

	if err := healthRegistry.Register(generator); err != nil {
		return fmt.Errorf("registering anthropic health check: %w", err)
	}

	// The catalog is optional: without it, structured generation reports a
	// configuration error while the other endpoints keep working.
	var catalog ports.CatalogLookup

	if cfg.Services.Airtable.BaseID != "" && cfg.Services.Airtable.Table != "" {
		airtableClient, err := airtable.New(airtable.Config{
			APIKey:     cfg.Services.Airtable.APIKey,
			BaseID:     cfg.Services.Airtable.BaseID,
			Table:      cfg.Services.Airtable.Table,
			TitleField: cfg.Services.Airtable.TitleField,
			Logger:     logger,
		}, httpConfig(cfg.Services.Airtable.BaseURL))
		if err != nil {
			return fmt.Errorf("creating airtable client: %w", err)
		}

		if err := healthRegistry.Register(airtableClient); err != nil {
			return fmt.Errorf("registering airtable health check: %w", err)
		}

		catalog = airtableClient
	}

	mailingList, err := brevo.New(brevo.Config{
		APIKey: cfg.Services.Brevo.APIKey,
		ListID: cfg.Services.Brevo.ListID,
		Logger: logger,
	}, httpConfig(cfg.Services.Brevo.BaseURL))
	if err != nil {
		return fmt.Errorf("creating brevo client: %w", err)
	}

	var analytics ports.AnalyticsTracker

	if cfg.Services.Mixpanel.Token != "" {
		mixpanelClient, err := mixpanel.New(mixpanel.Config{
			Token:  cfg.Services.Mixpanel.Token,
			Logger: logger,
		}, httpConfig(cfg.Services.Mixpanel.BaseURL))
		if err != nil {
			return fmt.Errorf("creating mixpanel client: %w", err)
		}

		analytics = mixpanelClient
	}

	// 7. Create application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Generator: generator,
		Catalog:   catalog,
		Logger:    logger,
	})

	subscriptionService := app.NewSubscriptionService(app.SubscriptionServiceConfig{
		MailingList: mailingList,
		Analytics:   analytics,
		Logger:      logger,
	})

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	learnMoreHandler := handlers.NewLearnMoreHandler(quoteService)
	subscribeHandler := handlers.NewSubscribeHandler(subscriptionService)

	// 9. Create rate limiter
	var limiter ports.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewMemory(ratelimit.Config{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		})
	}

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:           logger,
		AppConfig:        &cfg.App,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		RateLimiter:      limiter,
		QuoteHandler:     quoteHandler,
		LearnMoreHandler: learnMoreHandler,
		SubscribeHandler: subscribeHandler,
		HealthHandler:    healthHandler,
		Timeout:          http.DefaultRequestTimeout,
	})

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
