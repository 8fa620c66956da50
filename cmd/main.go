package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"campaign-scheduler/internal/adapter/cron"
	httpadapter "campaign-scheduler/internal/adapter/http"
	"campaign-scheduler/internal/adapter/metrics"
	"campaign-scheduler/internal/adapter/postgres"
	redisadapter "campaign-scheduler/internal/adapter/redis"
	"campaign-scheduler/internal/adapter/usecase"
	"campaign-scheduler/internal/config"
	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
	"campaign-scheduler/internal/db"
)

// main is the entry point of the campaign scheduler. It loads
// configuration, optionally runs database migrations and the demo seed,
// wires repositories and services, then runs the cron runner and the ops
// HTTP server until a termination signal arrives.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	if err = run(cfg, logger); err != nil {
		logger.Error("scheduler stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	checks := map[string]httpadapter.Check{"postgres": pool.Ping}

	var locker port.Locker = redisadapter.NopLocker{}
	if cfg.Redis.Enabled {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		locker = redisadapter.NewLocker(client)
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	} else {
		logger.Warn("redis disabled, relying on the batch unique constraint for pass exclusion")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	campaigns := postgres.NewCampaignRepository(pool)
	batches := postgres.NewBatchRepository(pool)
	usage := postgres.NewUsageRepository(pool)
	universes := postgres.NewUniverseRepository(pool)

	quota := usecase.NewQuotaTracker(usage, usecase.QuotaConfig{
		BaseDaily:      cfg.Quota.BaseDaily,
		PerCampaignCap: cfg.Quota.PerCampaignCap,
		WindowDays:     cfg.Quota.WindowDays,
		Utilization: domain.UtilizationPolicy{
			Low:    cfg.Quota.LowUtilization,
			High:   cfg.Quota.HighUtilization,
			Shrink: cfg.Quota.ShrinkFactor,
			Grow:   cfg.Quota.GrowFactor,
		},
		Location: loc,
	}, logger, m)

	scheduler := usecase.NewBatchScheduler(campaigns, batches, quota, locker, usecase.SchedulerConfig{
		Location:     loc,
		LockTTL:      cfg.Scheduler.LockTTL,
		RetryBackoff: cfg.Batch.RetryBackoff,
		PendingLimit: cfg.Batch.PendingLimit,
		Defaults:     domain.DefaultBatchSettings(),
	}, logger, usecase.WithSchedulerMetrics(m))

	universeSvc := usecase.NewUniverseService(universes, usecase.NewGeoValidator(), logger)

	runner, err := cron.New(scheduler, quota, universeSvc, cron.Config{
		PassSchedule:        cfg.Scheduler.Cron,
		MaintenanceSchedule: cfg.Scheduler.MaintenanceCron,
		Location:            loc,
		UsageRetention:      cfg.Scheduler.UsageRetention,
	}, logger)
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(checks, registry, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runner.Run(gctx) })
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if cfg.Scheduler.RunOnStart {
		g.Go(func() error {
			_ = runner.RunDailyPass(gctx)
			return nil
		})
	}

	return g.Wait()
}
