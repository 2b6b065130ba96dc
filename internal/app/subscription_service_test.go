package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifestore/lifestore-api/internal/domain"
)

type fakeMailingList struct {
	err    error
	emails []string
}

func (f *fakeMailingList) Subscribe(_ context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.emails = append(f.emails, email)
	return nil
}

type fakeTracker struct {
	err    error
	events []string
}

func (f *fakeTracker) Track(_ context.Context, _, event string, _ map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func TestNewSubscriptionService_PanicsWithoutMailingList(t *testing.T) {
	assert.Panics(t, func() {
		NewSubscriptionService(SubscriptionServiceConfig{MailingList: nil})
	})
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	t.Run("forwards email and tracks event", func(t *testing.T) {
		list := &fakeMailingList{}
		tracker := &fakeTracker{}
		svc := NewSubscriptionService(SubscriptionServiceConfig{
			MailingList: list,
			Analytics:   tracker,
			Logger:      discardLogger(),
		})

		err := svc.Subscribe(context.Background(), "reader@example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"reader@example.com"}, list.emails)
		assert.Equal(t, []string{"Subscribe"}, tracker.events)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		svc := NewSubscriptionService(SubscriptionServiceConfig{
			MailingList: &fakeMailingList{},
			Logger:      discardLogger(),
		})

		err := svc.Subscribe(context.Background(), "  ")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		svc := NewSubscriptionService(SubscriptionServiceConfig{
			MailingList: &fakeMailingList{err: domain.NewUnavailableError("brevo", "503")},
			Logger:      discardLogger(),
		})

		err := svc.Subscribe(context.Background(), "reader@example.com")

		require.Error(t, err)
		assert.True(t, domain.IsUnavailable(err))
	})

	t.Run("tracking failure never fails the signup", func(t *testing.T) {
		list := &fakeMailingList{}
		svc := NewSubscriptionService(SubscriptionServiceConfig{
			MailingList: list,
			Analytics:   &fakeTracker{err: domain.NewUnavailableError("mixpanel", "timeout")},
			Logger:      discardLogger(),
		})

		err := svc.Subscribe(context.Background(), "reader@example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"reader@example.com"}, list.emails)
	})

	t.Run("nil analytics is fine", func(t *testing.T) {
		svc := NewSubscriptionService(SubscriptionServiceConfig{
			MailingList: &fakeMailingList{},
			Logger:      discardLogger(),
		})

		require.NoError(t, svc.Subscribe(context.Background(), "reader@example.com"))
	})
}
