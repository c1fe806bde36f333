package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"swim-academy-api/cmd/bootstrap"
	"swim-academy-api/internal/handler/middleware"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/usecase/commands"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// The sweeper runs the periodic maintenance passes as a separate process:
// hold expiry, locker release after lesson end, usage resync, and the
// monthly usage reset.
func startSweeper(lc fx.Lifecycle, sweep commands.SweepCommands, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	run := func(interval time.Duration, name string, fn func(context.Context) error) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := fn(ctx); err != nil {
					logger.Error("sweep failed", "sweep", name, "error", err)
				}
			}
		}
	}

	// The usage reset must land on the calendar boundary; a fixed-duration
	// ticker drifts because months are not equal length.
	runMonthly := func(name string, fn func(context.Context) error) {
		for {
			timer := time.NewTimer(time.Until(nextMonthStart(time.Now())))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				if err := fn(ctx); err != nil {
					logger.Error("sweep failed", "sweep", name, "error", err)
				}
			}
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting sweeper",
				"expiry_interval", cfg.Sweep.ExpiryInterval,
				"release_interval", cfg.Sweep.ReleaseInterval,
				"resync_interval", cfg.Sweep.ResyncInterval,
			)

			go run(cfg.Sweep.ExpiryInterval, "expire_holds", func(ctx context.Context) error {
				n, err := sweep.ExpireStaleHolds(ctx)
				if err == nil && n > 0 {
					logger.Info("expired stale holds", "count", n)
				}
				return err
			})
			go run(cfg.Sweep.ReleaseInterval, "release_lockers", func(ctx context.Context) error {
				n, err := sweep.ReleaseLockersForEndedLessons(ctx)
				if err == nil && n > 0 {
					logger.Info("released lockers for ended lessons", "count", n)
				}
				return err
			})
			go run(cfg.Sweep.ResyncInterval, "resync_locker_usage", func(ctx context.Context) error {
				n, err := sweep.ResyncLockerUsage(ctx)
				if err == nil && n > 0 {
					logger.Warn("corrected locker usage drift", "rows", n)
				}
				return err
			})
			go runMonthly("reset_locker_usage", func(ctx context.Context) error {
				n, err := sweep.ResetLockerUsage(ctx)
				if err == nil {
					logger.Info("reset locker usage counters", "rows", n)
				}
				return err
			})
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping sweeper")
			cancel()
			return nil
		},
	})
}

// nextMonthStart returns midnight on the first day of the month after t,
// in t's location.
func nextMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

func main() {
	_ = godotenv.Load()

	app := fx.New(
		bootstrap.SweeperModule,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
		),
		fx.Invoke(
			startSweeper,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("sweeper failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("sweeper failed to stop cleanly", "error", err)
	}

	slog.Info("sweeper stopped")
}
