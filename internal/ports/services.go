// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrRateLimited, ErrMalformed, etc.)
//   - Methods represent business operations, not CRUD operations
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/lifestore/lifestore-api/internal/domain"
)

// GenerationClient calls the remote text-generation endpoint.
// Implementations classify every failure into the domain taxonomy:
//   - domain.ErrRateLimited for a parseable provider rate-limit signal
//   - domain.ErrMalformed for a parseable error envelope of any other kind,
//     or a success envelope whose content cannot be extracted
//   - domain.ErrUnavailable for transport failures after retries
//   - domain.ErrConfiguration when the generation credential is missing
type GenerationClient interface {
	// Generate sends one prompt and returns the raw text content of the
	// model's reply. The returned text has not been validated against any
	// structural contract; that is the caller's job.
	Generate(ctx context.Context, prompt string) (string, error)
}

// CatalogLookup supplies the authoritative list of permitted book titles
// used to constrain and validate structured quote generation.
type CatalogLookup interface {
	// Snapshot fetches a fresh catalog. It is called once per structured
	// generation; implementations must not cache across calls.
	// Returns domain.ErrUnavailable if the catalog service is unreachable.
	Snapshot(ctx context.Context) (domain.CatalogSnapshot, error)
}

// MailingList forwards newsletter signups to the mailing-list provider.
type MailingList interface {
	// Subscribe adds an email address to the configured contact list.
	// Returns domain.ErrUnavailable if the provider is unreachable and
	// domain.ErrValidation if the provider rejected the address.
	Subscribe(ctx context.Context, email string) error
}

// AnalyticsTracker records usage analytics events.
// Analytics is fire-and-forget: implementations return errors so callers
// can log them, but no user-facing operation fails on a tracking error.
type AnalyticsTracker interface {
	// Track records one event for the given distinct identity.
	Track(ctx context.Context, distinctID, event string, properties map[string]any) error
}

// RateLimiter bounds request rate per client identity.
// The in-process adapter is a single-instance stopgap; a multi-instance
// deployment should back this port with a shared counter store.
type RateLimiter interface {
	// Allow reports whether the client identified by key may proceed.
	Allow(ctx context.Context, key string) bool
}
