package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifestore/lifestore-api/internal/adapters/http/dto"
	"github.com/lifestore/lifestore-api/internal/platform/logging"
	"github.com/lifestore/lifestore-api/internal/ports"
)

// RateLimit returns middleware that rejects requests exceeding the per-client
// budget with 429 and the standard error envelope. Clients are keyed by IP
// (gin resolves proxies via trusted platform headers).
func RateLimit(limiter ports.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.Next()
			return
		}

		logger := logging.FromContext(c.Request.Context())
		logger.Warn("request rate limited",
			"client_ip", c.ClientIP(),
			"path", c.Request.URL.Path,
		)

		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
			dto.MessageRateLimited,
			"request rate limit exceeded",
		))
	}
}
