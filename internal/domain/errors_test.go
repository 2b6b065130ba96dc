package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"rate limited", NewRateLimitError("overloaded"), IsRateLimited},
		{"rate limited without reason", NewRateLimitError(""), IsRateLimited},
		{"malformed", NewMalformedError("invalid quote format"), IsMalformed},
		{"unavailable", NewUnavailableError("anthropic", "connection refused"), IsUnavailable},
		{"configuration", NewConfigurationError("anthropic api key"), IsConfiguration},
		{"validation", NewValidationError("query", "is required"), IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

// A classification must match only its own kind; a rate-limit error can
// never also register as malformed.
func TestErrorClassification_Disjoint(t *testing.T) {
	err := NewRateLimitError("rate limit exceeded")

	assert.True(t, IsRateLimited(err))
	assert.False(t, IsMalformed(err))
	assert.False(t, IsUnavailable(err))
	assert.False(t, IsConfiguration(err))
}

func TestErrorClassification_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("generating quote: %w", NewMalformedError("failed to parse response"))

	assert.True(t, IsMalformed(err))

	var malformed *MalformedError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, "failed to parse response", malformed.Reason)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "API rate limit exceeded", NewRateLimitError("").Error())
	assert.Equal(t, "malformed response: bad shape", NewMalformedError("bad shape").Error())
	assert.Equal(t, `service "airtable" unavailable: timeout`, NewUnavailableError("airtable", "timeout").Error())
	assert.Equal(t, "missing configuration: anthropic api key", NewConfigurationError("anthropic api key").Error())
	assert.Equal(t, "validation failed for email: is required", NewValidationError("email", "is required").Error())
}
