// Package clients provides the shared HTTP client used by the provider adapters.
package clients

import "errors"

// Infrastructure-level failures. Provider adapters translate these into
// domain errors before they reach the application layer.
var (
	// ErrCircuitOpen is returned while the circuit breaker is rejecting
	// requests to an unhealthy provider.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned once the retry budget is spent.
	// The last attempt's error is wrapped.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
