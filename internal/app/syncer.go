package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/adapter/connectivity"
	"github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/item"
	libraryrepo "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/library"
	"github.com/heartmarshall/vocamemo-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/vocamemo-backend/internal/config"
	"github.com/heartmarshall/vocamemo-backend/internal/reminder"
	"github.com/heartmarshall/vocamemo-backend/internal/service/syncer"
)

// SyncOptions select what the device agent does.
type SyncOptions struct {
	UserID uuid.UUID
	// Once runs a single sync and returns instead of looping.
	Once bool
}

// RunSyncer is the device-side entry point: it opens the local cache,
// keeps it in sync with the remote store and emits study reminders until
// ctx is cancelled.
func RunSyncer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts SyncOptions) error {
	if opts.UserID == uuid.Nil {
		return errors.New("syncer: user id is required")
	}

	cache, err := sqlite.Open(ctx, cfg.Cache.Path, logger)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cache.Close()

	// the device may start offline, so the pool must not require a connection
	pool, err := postgres.NewLazyPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	checker := connectivity.NewChecker(pool, cfg.Sync.ProbeTimeout, logger)
	s := syncer.NewSyncer(logger, cache,
		libraryrepo.New(pool), itemrepo.New(pool),
		checker, cfg.Sync.OperationTimeout,
	)

	if opts.Once {
		res, err := s.Sync(ctx, opts.UserID)
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		pending, err := cache.QueueLen(ctx)
		if err != nil {
			return fmt.Errorf("queue length: %w", err)
		}
		logger.Info("sync completed",
			slog.Bool("offline", res.Offline),
			slog.Int("pushed", res.Pushed),
			slog.Int("libraries", res.Libraries),
			slog.Int("items", res.Items),
			slog.Int("pending", pending),
		)
		return nil
	}

	if !cfg.Reminder.Disabled {
		sched := reminder.NewScheduler(logger, cache, reminder.NewLogNotifier(logger), cfg.Reminder.Interval)
		handle := sched.Start(ctx)
		defer handle.Stop()
	}

	logger.Info("syncer started",
		slog.String("user_id", opts.UserID.String()),
		slog.Duration("interval", cfg.Sync.Interval),
		slog.String("cache", cfg.Cache.Path),
	)
	s.Run(ctx, opts.UserID, cfg.Sync.Interval)
	return nil
}
