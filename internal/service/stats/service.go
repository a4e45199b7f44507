package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/internal/service/study"
	"github.com/heartmarshall/vocamemo-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type studyLogRepo interface {
	ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.StudyLog, error)
	ListDatesDesc(ctx context.Context, userID uuid.UUID, limit int) ([]time.Time, error)
	ListDatesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]time.Time, error)
}

type itemRepo interface {
	CountByStatus(ctx context.Context, userID uuid.UUID, libraryID *uuid.UUID) ([]domain.StatusCount, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const (
	defaultRecentDays = 7
	// streakLookback bounds how many log dates a streak walk reads.
	streakLookback = 3660
)

// Options tune the statistics service. Zero values fall back to defaults.
type Options struct {
	Timezone   *time.Location
	RecentDays int
	Clock      func() time.Time
}

// Service derives read-side statistics from study logs and items.
type Service struct {
	logs       studyLogRepo
	items      itemRepo
	log        *slog.Logger
	loc        *time.Location
	recentDays int
	clock      func() time.Time
}

// NewService creates a new statistics service.
func NewService(log *slog.Logger, logs studyLogRepo, items itemRepo, opts Options) *Service {
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	if opts.RecentDays <= 0 {
		opts.RecentDays = defaultRecentDays
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Service{
		logs:       logs,
		items:      items,
		log:        log.With("service", "stats"),
		loc:        opts.Timezone,
		recentDays: opts.RecentDays,
		clock:      opts.Clock,
	}
}

func (s *Service) today() time.Time {
	return study.CalendarDay(s.clock(), s.loc)
}

// RecentStats returns the logs of the last days calendar days (today
// included), oldest first, together with their totals.
// days <= 0 selects the configured default.
func (s *Service) RecentStats(ctx context.Context, days int) (RecentStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return RecentStats{}, domain.ErrUnauthorized
	}
	if days <= 0 {
		days = s.recentDays
	}

	from := s.today().AddDate(0, 0, -(days - 1))
	logs, err := s.logs.ListSince(ctx, userID, from)
	if err != nil {
		return RecentStats{}, fmt.Errorf("recent stats: %w", err)
	}

	return RecentStats{
		Days:   days,
		Logs:   logs,
		Totals: Summarize(logs),
	}, nil
}

// Streak returns the number of consecutive study days ending today, or
// yesterday when nothing was studied yet today.
func (s *Service) Streak(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	dates, err := s.logs.ListDatesDesc(ctx, userID, streakLookback)
	if err != nil {
		return 0, fmt.Errorf("streak: %w", err)
	}
	return CalculateStreak(dates, s.today()), nil
}

// Distribution counts the user's items per study status, optionally
// restricted to one library.
func (s *Service) Distribution(ctx context.Context, libraryID *uuid.UUID) (domain.StatusDistribution, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StatusDistribution{}, domain.ErrUnauthorized
	}
	if libraryID != nil && *libraryID == uuid.Nil {
		return domain.StatusDistribution{}, domain.NewValidationError("library_id", "invalid")
	}

	counts, err := s.items.CountByStatus(ctx, userID, libraryID)
	if err != nil {
		return domain.StatusDistribution{}, fmt.Errorf("distribution: %w", err)
	}

	var dist domain.StatusDistribution
	for _, c := range counts {
		dist.Add(c.Status, c.Count)
	}
	return dist, nil
}

// MonthlyActivity returns the ISO dates (YYYY-MM-DD) in the given month
// that have at least one study log, ascending.
func (s *Service) MonthlyActivity(ctx context.Context, input MonthlyActivityInput) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	dates, err := s.logs.ListDatesBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly activity: %w", err)
	}

	out := make([]string, 0, len(dates))
	seen := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		key := d.UTC().Format(time.DateOnly)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, nil
}

// Overview loads recent stats, streak and distribution concurrently.
func (s *Service) Overview(ctx context.Context) (domain.StudyOverview, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.StudyOverview{}, domain.ErrUnauthorized
	}

	var (
		recent RecentStats
		streak int
		dist   domain.StatusDistribution
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		recent, err = s.RecentStats(gctx, 0)
		return err
	})

	g.Go(func() error {
		var err error
		streak, err = s.Streak(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		dist, err = s.Distribution(gctx, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "overview failed", slog.String("error", err.Error()))
		return domain.StudyOverview{}, fmt.Errorf("overview: %w", err)
	}

	return domain.StudyOverview{
		Recent:       recent.Logs,
		Totals:       recent.Totals,
		Streak:       streak,
		Distribution: dist,
	}, nil
}
