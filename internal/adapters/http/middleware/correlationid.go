package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/lifestore/lifestore-api/internal/platform/logging"
)

const (
	// HeaderCorrelationID carries the cross-service transaction ID. A
	// request ID is scoped to one request; the correlation ID survives
	// hops between services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates an inbound
// X-Correlation-ID or mints one at the transaction origin, echoes it on
// the response, stores it in the request context, and tags the context
// logger with it.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		contextEnricher: func(ctx context.Context, id string) context.Context {
			return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
		},
	})
}

// GetCorrelationID returns the correlation ID from the gin context, or "".
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID returns the correlation ID, or "unknown" when the
// middleware was not applied.
func MustGetCorrelationID(c *gin.Context) string {
	if id := GetCorrelationID(c); id != "" {
		return id
	}

	return "unknown"
}
