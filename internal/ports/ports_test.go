package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (c *stubChecker) Name() string { return c.name }

func (c *stubChecker) Check(_ context.Context) error { return c.err }

func TestHealthRegistry_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "anthropic-config"}))
	require.NoError(t, registry.Register(&stubChecker{name: "airtable-config"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["anthropic-config"].Status)
}

func TestHealthRegistry_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "anthropic-config"}))
	require.NoError(t, registry.Register(&stubChecker{
		name: "airtable-config",
		err:  errors.New("missing base ID"),
	}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["anthropic-config"].Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["airtable-config"].Status)
	assert.Contains(t, result.Checks["airtable-config"].Message, "missing base ID")
}

func TestHealthRegistry_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "anthropic-config"}))

	err := registry.Register(&stubChecker{name: "anthropic-config"})
	require.Error(t, err)
}

func TestHealthRegistry_Empty(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
}
