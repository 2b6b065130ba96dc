package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lifestore/lifestore-api/internal/domain"
	"github.com/lifestore/lifestore-api/internal/ports"
)

// SubscriptionService forwards newsletter signups to the mailing-list
// provider and records a Subscribe analytics event.
type SubscriptionService struct {
	list      ports.MailingList
	analytics ports.AnalyticsTracker
	logger    *slog.Logger
}

// SubscriptionServiceConfig contains configuration for the subscription service.
type SubscriptionServiceConfig struct {
	MailingList ports.MailingList
	Analytics   ports.AnalyticsTracker
	Logger      *slog.Logger
}

// NewSubscriptionService creates a new subscription service.
// Panics if MailingList is nil. Analytics may be nil, in which case no
// events are recorded. Defaults logger to slog.Default() if nil.
func NewSubscriptionService(cfg SubscriptionServiceConfig) *SubscriptionService {
	if cfg.MailingList == nil {
		panic("SubscriptionService: MailingList is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SubscriptionService{
		list:      cfg.MailingList,
		analytics: cfg.Analytics,
		logger:    logger,
	}
}

// Subscribe adds an email address to the mailing list. A tracking failure
// never fails the signup: analytics is fire-and-forget, so errors are
// logged and swallowed.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.NewValidationError("email", "is required")
	}

	if err := s.list.Subscribe(ctx, email); err != nil {
		s.logger.ErrorContext(ctx, "mailing list subscribe failed", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "subscription successful")

	if s.analytics != nil {
		err := s.analytics.Track(ctx, email, "Subscribe", map[string]any{
			"previous_interactions": 0,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "analytics track failed", slog.Any("error", err))
		}
	}

	return nil
}
