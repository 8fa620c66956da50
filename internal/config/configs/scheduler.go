package configs

import (
	"fmt"
	"time"
)

// Scheduler configures when the daily pass and the usage maintenance run.
// Cron expressions use the standard five fields and are evaluated in
// Timezone, which also defines calendar days for batch dates.
type Scheduler struct {
	Cron            string        `env:"CRON" envDefault:"5 0 * * *"`
	MaintenanceCron string        `env:"MAINTENANCE_CRON" envDefault:"30 0 * * *"`
	Timezone        string        `env:"TIMEZONE" envDefault:"UTC"`
	LockTTL         time.Duration `env:"LOCK_TTL" envDefault:"10m"`
	// UsageRetention is how long aggregated raw usage rows are kept.
	UsageRetention time.Duration `env:"USAGE_RETENTION" envDefault:"2160h"`
	// RunOnStart runs one pass for today right after startup.
	RunOnStart bool `env:"RUN_ON_START" envDefault:"false"`
}

// Location loads Timezone.
func (c Scheduler) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
