package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifestore/lifestore-api/internal/adapters/http/handlers"
	"github.com/lifestore/lifestore-api/internal/adapters/http/middleware"
	"github.com/lifestore/lifestore-api/internal/platform/config"
	"github.com/lifestore/lifestore-api/internal/platform/telemetry"
	"github.com/lifestore/lifestore-api/internal/ports"
)

// DefaultRequestTimeout is the default timeout for API requests. Generation
// calls can legitimately take tens of seconds under provider load.
const DefaultRequestTimeout = 60 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// AllowedOrigins is the CORS origin allowlist.
	AllowedOrigins []string

	// RateLimiter limits request rates per client. Optional.
	RateLimiter ports.RateLimiter

	// QuoteHandler handles quote generation endpoints.
	QuoteHandler *handlers.QuoteHandler

	// LearnMoreHandler handles quote explanation endpoints.
	LearnMoreHandler *handlers.LearnMoreHandler

	// SubscribeHandler handles mailing list endpoints.
	SubscribeHandler *handlers.SubscribeHandler

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. CORS - origin allowlist, preflight handling
//
// Business routes additionally get rate limiting and a request deadline.
// The bare and /api-prefixed paths serve identical handlers: deployed
// frontends have called both shapes across revisions.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	// Health endpoints stay outside rate limiting so probes never starve
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	register := func(rg *gin.RouterGroup) {
		rg.Use(middleware.SimpleTimeout(timeout))
		if cfg.RateLimiter != nil {
			rg.Use(middleware.RateLimit(cfg.RateLimiter))
		}

		if cfg.QuoteHandler != nil {
			rg.POST("/quote", cfg.QuoteHandler.GenerateQuote)
			rg.POST("/quotes", cfg.QuoteHandler.GenerateQuoteList)
			rg.POST("/quotes/structured", cfg.QuoteHandler.GenerateStructuredQuotes)
		}

		if cfg.LearnMoreHandler != nil {
			rg.POST("/learn-more", cfg.LearnMoreHandler.Explain)
		}

		if cfg.SubscribeHandler != nil {
			rg.POST("/subscribe", cfg.SubscribeHandler.Subscribe)
		}
	}

	register(engine.Group(""))
	register(engine.Group("/api"))
}
