package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.7, cfg.Dashboard.EstimateRatio)
	assert.Equal(t, 5*time.Minute, cfg.Worker.RefreshInterval)
	assert.Equal(t, "0 6 * * 1", cfg.Worker.ReminderSchedule)
	assert.Equal(t, 2*time.Second, cfg.Worker.ImportPollInterval)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DASHBOARD_COGS_ESTIMATE_RATIO", "0.65")
	t.Setenv("COGS_REFRESH_INTERVAL", "1m")
	t.Setenv("COGS_REMINDER_ENABLED", "false")
	t.Setenv("DASHBOARD_TIMEZONE", "America/Sao_Paulo")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 0.65, cfg.Dashboard.EstimateRatio)
	assert.Equal(t, time.Minute, cfg.Worker.RefreshInterval)
	assert.False(t, cfg.Worker.ReminderEnabled)
	assert.Equal(t, "America/Sao_Paulo", cfg.Dashboard.Location().String())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("DASHBOARD_COGS_ESTIMATE_RATIO", "seventy")
	t.Setenv("DASHBOARD_TIMEZONE", "Mars/Olympus")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.7, cfg.Dashboard.EstimateRatio)
	assert.Equal(t, time.UTC, cfg.Dashboard.Location())
}
