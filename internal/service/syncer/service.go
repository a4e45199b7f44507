// Package syncer replays locally queued mutations against the remote store
// and mirrors remote state back into the local cache.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// ErrSyncInProgress is returned when Sync is called while another run of the
// same Syncer has not finished.
var ErrSyncInProgress = fmt.Errorf("%w: sync already in progress", domain.ErrConflict)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type localStore interface {
	Queue(ctx context.Context) ([]domain.SyncQueueEntry, error)
	DeleteQueueEntry(ctx context.Context, id int64) error
	PutLibrary(ctx context.Context, lib domain.Library) error
	PutItem(ctx context.Context, it domain.Item) error
}

type remoteLibraries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Library, error)
	Upsert(ctx context.Context, lib domain.Library) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type remoteItems interface {
	ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	Upsert(ctx context.Context, it domain.Item) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type connectivity interface {
	IsOnline(ctx context.Context) bool
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Result describes one Sync run.
type Result struct {
	Offline   bool
	Pushed    int
	Libraries int
	Items     int
}

// Syncer pushes the local queue and pulls remote state. Entries are
// replayed strictly in queue order; the first failure stops the push and
// leaves the failed entry and everything after it queued.
type Syncer struct {
	local     localStore
	libraries remoteLibraries
	items     remoteItems
	conn      connectivity
	log       *slog.Logger
	timeout   time.Duration

	running atomic.Bool
}

// NewSyncer creates a Syncer. timeout bounds one Sync run; zero disables it.
func NewSyncer(
	log *slog.Logger,
	local localStore,
	libraries remoteLibraries,
	items remoteItems,
	conn connectivity,
	timeout time.Duration,
) *Syncer {
	return &Syncer{
		local:     local,
		libraries: libraries,
		items:     items,
		conn:      conn,
		log:       log.With("service", "syncer"),
		timeout:   timeout,
	}
}

// IsOnline reports whether the remote store is reachable.
func (s *Syncer) IsOnline(ctx context.Context) bool {
	return s.conn.IsOnline(ctx)
}

// Sync pushes all pending changes, then pulls the user's remote state.
// It does nothing when the remote store is unreachable. The pull is skipped
// when the push fails.
func (s *Syncer) Sync(ctx context.Context, userID uuid.UUID) (Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Result{}, ErrSyncInProgress
	}
	defer s.running.Store(false)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if !s.IsOnline(ctx) {
		s.log.InfoContext(ctx, "sync skipped: offline")
		return Result{Offline: true}, nil
	}

	var res Result

	pushed, err := s.PushChanges(ctx)
	res.Pushed = pushed
	if err != nil {
		return res, err
	}

	pulled, err := s.PullChanges(ctx, userID)
	res.Libraries = pulled.Libraries
	res.Items = pulled.Items
	if err != nil {
		return res, err
	}

	s.log.InfoContext(ctx, "sync complete",
		slog.String("user_id", userID.String()),
		slog.Int("pushed", res.Pushed),
		slog.Int("libraries", res.Libraries),
		slog.Int("items", res.Items),
	)
	return res, nil
}

// PushChanges replays queued entries in order and returns how many were
// applied and removed from the queue.
func (s *Syncer) PushChanges(ctx context.Context) (int, error) {
	entries, err := s.local.Queue(ctx)
	if err != nil {
		return 0, fmt.Errorf("read sync queue: %w", err)
	}

	pushed := 0
	for _, entry := range entries {
		if err := s.replay(ctx, entry); err != nil {
			s.log.ErrorContext(ctx, "sync queue halted",
				slog.Int64("entry_id", entry.ID),
				slog.String("table", entry.TableName),
				slog.String("action", entry.Action.String()),
				slog.String("row_id", entry.RowID.String()),
				slog.Int("remaining", len(entries)-pushed),
				slog.String("error", err.Error()),
			)
			return pushed, fmt.Errorf("replay entry %d: %w", entry.ID, err)
		}

		if err := s.local.DeleteQueueEntry(ctx, entry.ID); err != nil {
			return pushed, fmt.Errorf("dequeue entry %d: %w", entry.ID, err)
		}
		pushed++
	}
	return pushed, nil
}

// PullResult counts the rows mirrored by PullChanges.
type PullResult struct {
	Libraries int
	Items     int
}

// PullChanges mirrors every remote library of the user, and each library's
// items, into the local cache.
func (s *Syncer) PullChanges(ctx context.Context, userID uuid.UUID) (PullResult, error) {
	var res PullResult

	libs, err := s.libraries.ListByUser(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("pull libraries: %w", err)
	}

	for _, lib := range libs {
		if err := s.local.PutLibrary(ctx, lib); err != nil {
			return res, fmt.Errorf("cache library %s: %w", lib.ID, err)
		}
		res.Libraries++

		items, err := s.items.ListByLibrary(ctx, lib.ID)
		if err != nil {
			return res, fmt.Errorf("pull items of library %s: %w", lib.ID, err)
		}
		for _, it := range items {
			if err := s.local.PutItem(ctx, it); err != nil {
				return res, fmt.Errorf("cache item %s: %w", it.ID, err)
			}
			res.Items++
		}
	}
	return res, nil
}

// Run syncs every interval until ctx is cancelled. Failures are logged and
// retried on the next tick.
func (s *Syncer) Run(ctx context.Context, userID uuid.UUID, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Sync(ctx, userID); err != nil && !errors.Is(err, context.Canceled) {
			s.log.WarnContext(ctx, "sync failed", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
