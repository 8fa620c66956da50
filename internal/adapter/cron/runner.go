package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
)

// Config holds the runner schedules.
type Config struct {
	// PassSchedule triggers the daily scheduling pass.
	PassSchedule string
	// MaintenanceSchedule triggers usage rollup and pruning.
	MaintenanceSchedule string
	// Location evaluates schedules and defines calendar days.
	Location *time.Location
	// UsageRetention is how long aggregated raw usage rows are kept.
	UsageRetention time.Duration
}

// Runner triggers the daily pass and usage maintenance on cron schedules.
type Runner struct {
	scheduler port.BatchScheduler
	quota     port.QuotaTracker
	universes port.UniverseManager
	cfg       Config
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

// New validates the schedules and builds a runner. Jobs are registered
// by Run. universes may be nil, in which case maintenance skips the
// universe refresh.
func New(scheduler port.BatchScheduler, quota port.QuotaTracker, universes port.UniverseManager, cfg Config, logger *slog.Logger) (*Runner, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("component", "cron_runner"))

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	for name, spec := range map[string]string{"pass": cfg.PassSchedule, "maintenance": cfg.MaintenanceSchedule} {
		if _, err := parser.Parse(spec); err != nil {
			return nil, fmt.Errorf("%s schedule %q: %w", name, spec, err)
		}
	}

	cl := cronLogger{logger: logger}
	return &Runner{
		scheduler: scheduler,
		quota:     quota,
		universes: universes,
		cfg:       cfg,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(cfg.Location),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Run starts the schedules and blocks until ctx is cancelled, then waits
// for running jobs to finish.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := r.cron.AddFunc(r.cfg.PassSchedule, func() { _ = r.RunDailyPass(ctx) }); err != nil {
		return fmt.Errorf("register pass: %w", err)
	}
	if _, err := r.cron.AddFunc(r.cfg.MaintenanceSchedule, func() { _ = r.RunMaintenance(ctx) }); err != nil {
		return fmt.Errorf("register maintenance: %w", err)
	}

	r.cron.Start()
	r.logger.Info("cron runner started",
		slog.String("pass_schedule", r.cfg.PassSchedule),
		slog.String("maintenance_schedule", r.cfg.MaintenanceSchedule),
		slog.String("timezone", r.cfg.Location.String()),
	)

	<-ctx.Done()
	<-r.cron.Stop().Done()
	r.logger.Info("cron runner stopped")
	return nil
}

// RunDailyPass creates today's batches. A pass already running elsewhere
// is not an error.
func (r *Runner) RunDailyPass(ctx context.Context) error {
	today := r.now().In(r.cfg.Location)
	ids, err := r.scheduler.CreateDailyBatches(ctx, today)
	if errors.Is(err, domain.ErrPassInProgress) {
		r.logger.Info("daily pass already running", slog.String("date", today.Format(domain.DateLayout)))
		return nil
	}
	if err != nil {
		r.logger.Error("daily pass failed", slog.Any("error", err))
		return err
	}
	r.logger.Info("daily pass finished", slog.Int("batches", len(ids)))
	return nil
}

// RunMaintenance rolls yesterday's usage up, prunes aggregated usage older
// than the retention and refreshes active universes. Every step runs even
// if an earlier one fails.
func (r *Runner) RunMaintenance(ctx context.Context) error {
	now := r.now().In(r.cfg.Location)
	yesterday := domain.DayStart(now, r.cfg.Location).AddDate(0, 0, -1)

	var errs []error
	if _, err := r.quota.AggregateDailyUsage(ctx, yesterday); err != nil {
		errs = append(errs, err)
	}
	if r.cfg.UsageRetention > 0 {
		if _, err := r.quota.PruneUsage(ctx, now.Add(-r.cfg.UsageRetention)); err != nil {
			errs = append(errs, err)
		}
	}
	if r.universes != nil {
		n, err := r.universes.RefreshActive(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		r.logger.Info("universes refreshed", slog.Int("count", n))
	}
	err := errors.Join(errs...)
	if err != nil {
		r.logger.Error("usage maintenance failed", slog.Any("error", err))
	}
	return err
}

// cronLogger routes robfig/cron logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
