package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-scheduler/internal/core/domain"
)

func TestDecodeSettings(t *testing.T) {
	var c domain.Campaign
	require.NoError(t, decodeSettings([]byte(`{"batch_size": 50, "max_daily_targets": 200, "allowed_hours_start": "08:30"}`), &c))
	assert.Equal(t, 50, c.Settings.BatchSize)
	require.NotNil(t, c.Settings.MaxDailyTargets)
	assert.Equal(t, 200, *c.Settings.MaxDailyTargets)
	assert.Equal(t, "08:30", c.Settings.AllowedHoursStart)
	assert.Nil(t, c.Settings.RetryMax)

	var empty domain.Campaign
	require.NoError(t, decodeSettings(nil, &empty))
	assert.Equal(t, domain.BatchSettings{}, empty.Settings)

	bad := domain.Campaign{ID: 3}
	assert.ErrorContains(t, decodeSettings([]byte(`{"batch_size": "many"}`), &bad), "campaign 3")
}
