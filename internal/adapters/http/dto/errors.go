// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/lifestore/lifestore-api/internal/domain"
	"github.com/lifestore/lifestore-api/internal/platform/logging"
)

// User-facing error messages. These strings are rendered directly in the
// frontend, so they must stay stable across releases.
const (
	// MessageRateLimited is returned when the generation provider is rate limiting.
	MessageRateLimited = "We're experiencing high demand. Please try again in a few minutes."

	// MessageMalformed is returned when the provider response failed validation.
	MessageMalformed = "We couldn't generate a proper response. Please try again or rephrase your query."

	// MessageUnexpected is returned for any other failure.
	MessageUnexpected = "An unexpected error occurred. Please try again later."

	// MessageMissingFields is returned when a request omits required fields.
	MessageMissingFields = "Some information is missing. Please try asking your question again."
)

// ErrorResponse is the error envelope for all quote and learn-more endpoints.
// Error carries the stable user-facing message; DevError carries the
// diagnostic detail and is never shown to end users.
type ErrorResponse struct {
	Error    string `json:"error"`
	DevError string `json:"dev_error"`
	TraceID  string `json:"traceId,omitempty"`
}

// NewErrorResponse creates an error response envelope.
func NewErrorResponse(userMessage, devMessage string) *ErrorResponse {
	return &ErrorResponse{
		Error:    userMessage,
		DevError: devMessage,
	}
}

// MessageResponse is the envelope used by the subscription endpoint, for both
// success and failure.
type MessageResponse struct {
	Message string `json:"message"`
}

// MapDomainError maps a domain error to an HTTP status code and error
// response. The user-facing message depends only on the error class, never
// on provider output; the raw error text goes into dev_error.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsRateLimited(err):
		return http.StatusTooManyRequests, NewErrorResponse(MessageRateLimited, err.Error())

	case domain.IsMalformed(err):
		return http.StatusBadRequest, NewErrorResponse(MessageMalformed, err.Error())

	case domain.IsValidation(err):
		return http.StatusBadRequest, NewErrorResponse(MessageMissingFields, err.Error())

	default:
		// Unavailable, configuration, and unknown errors all collapse to a
		// generic 500 to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(MessageUnexpected, err.Error())
	}
}

// HandleError writes an error response to the gin.Context.
// It maps domain errors to HTTP responses and includes the trace ID if available.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)

	// Add trace ID if available from OpenTelemetry
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	// Log internal errors with full details
	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// HandleBadRequest writes a 400 response for adapter-level failures
// (binding, missing fields) that never reached a service call.
func HandleBadRequest(c *gin.Context, userMessage, devMessage string) {
	errResp := NewErrorResponse(userMessage, devMessage)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.JSON(http.StatusBadRequest, errResp)
}
