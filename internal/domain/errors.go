// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// Every generation call terminates in exactly one of these classifications
// (or succeeds); callers are forced to handle each kind explicitly rather
// than catching thrown faults.
var (
	// ErrRateLimited indicates the generation provider is load-shedding.
	// It is surfaced immediately, never retried by this service.
	ErrRateLimited = errors.New("rate limited")

	// ErrMalformed indicates the provider returned parseable but
	// contract-violating output, or the validator rejected the content.
	ErrMalformed = errors.New("malformed response")

	// ErrUnavailable indicates a transport-level failure talking to a
	// required dependency, after retries were exhausted.
	ErrUnavailable = errors.New("unavailable")

	// ErrConfiguration indicates a required credential or setting is missing.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation indicates the inbound request failed validation.
	ErrValidation = errors.New("validation failed")
)

// RateLimitError provides context for provider rate limiting.
type RateLimitError struct {
	Reason string
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.Reason != "" {
		return "rate limited: " + e.Reason
	}

	return "API rate limit exceeded"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// NewRateLimitError creates a rate limit error with the provider's message.
func NewRateLimitError(reason string) error {
	return &RateLimitError{Reason: reason}
}

// MalformedError provides context for contract-violating model output.
type MalformedError struct {
	Reason string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return "malformed response: " + e.Reason
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// NewMalformedError creates a malformed-response error with a diagnostic reason.
func NewMalformedError(reason string) error {
	return &MalformedError{Reason: reason}
}

// UnavailableError provides context for transport failures.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// ConfigurationError provides context for missing credentials or settings.
type ConfigurationError struct {
	Setting string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Setting)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// NewConfigurationError creates a configuration error naming the missing setting.
func NewConfigurationError(setting string) error {
	return &ConfigurationError{Setting: setting}
}

// ValidationError provides context for inbound request validation failures.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsRateLimited checks if an error is a rate limit error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsMalformed checks if an error is a malformed-response error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
