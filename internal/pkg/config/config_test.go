//go:build unit

package config_test

import (
	"testing"

	"appointment-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, config.NewTestConfig().Validate())

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		expectErr string
	}{
		{name: "unknown store driver", mutate: func(c *config.Config) { c.Store.Driver = "redis" }, expectErr: "STORE_DRIVER"},
		{name: "zero slot length", mutate: func(c *config.Config) { c.Schedule.SlotMinutes = 0 }, expectErr: "BOOKING_SLOT_MINUTES"},
		{name: "window past midnight", mutate: func(c *config.Config) { c.Schedule.CloseHour = 25 }, expectErr: "outside a day"},
		{name: "zero rate", mutate: func(c *config.Config) { c.RateLimit.RPS = 0 }, expectErr: "RATE_LIMIT_RPS"},
		{name: "negative rate", mutate: func(c *config.Config) { c.RateLimit.RPS = -1 }, expectErr: "RATE_LIMIT_RPS"},
		{name: "zero burst", mutate: func(c *config.Config) { c.RateLimit.Burst = 0 }, expectErr: "RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestLoadConfig_RejectsZeroBurst(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT_BURST", "0")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
}
