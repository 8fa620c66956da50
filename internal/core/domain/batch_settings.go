package domain

import (
	"fmt"
	"time"
)

// MaxBatchRetries bounds how many times a failed batch is put back to
// pending before it stays failed.
const MaxBatchRetries = 3

const clockLayout = "15:04"

// BatchSettings is the per-campaign batching configuration, stored as JSON
// on the campaign row. Zero values are filled from defaults by WithDefaults.
type BatchSettings struct {
	BatchSize            int    `json:"batch_size,omitempty"`
	MaxConcurrentBatches int    `json:"max_concurrent_batches,omitempty"`
	DelaySeconds         int    `json:"delay_between_batches,omitempty"`
	RetryMax             *int   `json:"retry_max,omitempty"`
	MaxDailyTargets      *int   `json:"max_daily_targets,omitempty"`
	AllowedHoursStart    string `json:"allowed_hours_start,omitempty"`
	AllowedHoursEnd      string `json:"allowed_hours_end,omitempty"`
}

// DefaultBatchSettings returns the settings applied when a campaign leaves
// a field unset.
func DefaultBatchSettings() BatchSettings {
	retry := MaxBatchRetries
	return BatchSettings{
		BatchSize:            100,
		MaxConcurrentBatches: 5,
		DelaySeconds:         60,
		RetryMax:             &retry,
		AllowedHoursStart:    "09:00",
		AllowedHoursEnd:      "17:00",
	}
}

// WithDefaults fills every unset field from def.
func (s BatchSettings) WithDefaults(def BatchSettings) BatchSettings {
	if s.BatchSize <= 0 {
		s.BatchSize = def.BatchSize
	}
	if s.MaxConcurrentBatches <= 0 {
		s.MaxConcurrentBatches = def.MaxConcurrentBatches
	}
	if s.DelaySeconds <= 0 {
		s.DelaySeconds = def.DelaySeconds
	}
	if s.RetryMax == nil {
		s.RetryMax = def.RetryMax
	}
	if s.MaxDailyTargets == nil {
		s.MaxDailyTargets = def.MaxDailyTargets
	}
	if s.AllowedHoursStart == "" {
		s.AllowedHoursStart = def.AllowedHoursStart
	}
	if s.AllowedHoursEnd == "" {
		s.AllowedHoursEnd = def.AllowedHoursEnd
	}
	return s
}

// Delay is the spacing between consecutive batches of one campaign.
func (s BatchSettings) Delay() time.Duration {
	return time.Duration(s.DelaySeconds) * time.Second
}

// Retries is the retry bound clamped to [0, MaxBatchRetries].
func (s BatchSettings) Retries() int {
	if s.RetryMax == nil {
		return MaxBatchRetries
	}
	return min(max(*s.RetryMax, 0), MaxBatchRetries)
}

// Window returns the allowed processing hours as wall-clock times of day.
func (s BatchSettings) Window() (start, end time.Duration, err error) {
	start, err = parseClock(s.AllowedHoursStart)
	if err != nil {
		return 0, 0, err
	}
	end, err = parseClock(s.AllowedHoursEnd)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("%w: allowed hours %s-%s", ErrInvalidBatchSettings, s.AllowedHoursStart, s.AllowedHoursEnd)
	}
	return start, end, nil
}

// Validate checks a settings value after defaults were applied.
func (s BatchSettings) Validate() error {
	if s.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size %d", ErrInvalidBatchSettings, s.BatchSize)
	}
	if s.MaxConcurrentBatches <= 0 {
		return fmt.Errorf("%w: max concurrent batches %d", ErrInvalidBatchSettings, s.MaxConcurrentBatches)
	}
	if s.DelaySeconds < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalidBatchSettings)
	}
	if s.MaxDailyTargets != nil && *s.MaxDailyTargets < 0 {
		return fmt.Errorf("%w: negative max daily targets", ErrInvalidBatchSettings)
	}
	_, _, err := s.Window()
	return err
}

func parseClock(v string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 0, fmt.Errorf("%w: clock %q", ErrInvalidBatchSettings, v)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
