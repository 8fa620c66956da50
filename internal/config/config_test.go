package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "5 0 * * *", cfg.Scheduler.Cron)
	assert.Equal(t, 10*time.Minute, cfg.Scheduler.LockTTL)
	assert.Equal(t, 90*24*time.Hour, cfg.Scheduler.UsageRetention)
	assert.Equal(t, 1000, cfg.Quota.BaseDaily)
	assert.InDelta(t, 0.4, cfg.Quota.PerCampaignCap, 1e-9)
	assert.Equal(t, 5*time.Minute, cfg.Batch.RetryBackoff)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QUOTA_BASE_DAILY", "2500")
	t.Setenv("SCHEDULER_TIMEZONE", "America/Chicago")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("BATCH_PENDING_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.Quota.BaseDaily)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 25, cfg.Batch.PendingLimit)

	loc, err := cfg.Scheduler.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", loc.String())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SCHEDULER_LOCK_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}
