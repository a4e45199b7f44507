// Package reminder periodically nudges the learner when unlearned items are
// waiting in the local cache.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Source reports how many items still need study.
type Source interface {
	CountUnlearned(ctx context.Context) (int, error)
}

// Notifier delivers a reminder.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// Reminder is one delivered nudge.
type Reminder struct {
	Pending int
	At      time.Time
}

// Message renders the reminder text.
func (r Reminder) Message() string {
	if r.Pending == 1 {
		return "1 item is waiting for review"
	}
	return fmt.Sprintf("%d items are waiting for review", r.Pending)
}

// Scheduler fires a check every interval. It holds no timer state itself;
// each Start returns a Handle that owns the running loop.
type Scheduler struct {
	source   Source
	notifier Notifier
	interval time.Duration
	log      *slog.Logger
	clock    func() time.Time
}

// NewScheduler creates a Scheduler.
func NewScheduler(log *slog.Logger, source Source, notifier Notifier, interval time.Duration) *Scheduler {
	return &Scheduler{
		source:   source,
		notifier: notifier,
		interval: interval,
		log:      log.With("component", "reminder"),
		clock:    time.Now,
	}
}

// Handle controls one running scheduler loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the loop and waits for it to exit. Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start launches the loop. It runs until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()

	return h
}

// Tick runs one check. Failures are logged, never returned.
func (s *Scheduler) Tick(ctx context.Context) {
	pending, err := s.source.CountUnlearned(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "reminder source failed", slog.String("error", err.Error()))
		return
	}
	if pending == 0 {
		return
	}

	r := Reminder{Pending: pending, At: s.clock()}
	if err := s.notifier.Notify(ctx, r); err != nil {
		s.log.WarnContext(ctx, "reminder delivery failed",
			slog.Int("pending", pending),
			slog.String("error", err.Error()),
		)
	}
}
