package study

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type libraryRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Library, error)
}

type itemRepo interface {
	ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	RecordOutcome(ctx context.Context, id uuid.UUID, status domain.StudyStatus) error
}

type studyLogRepo interface {
	Upsert(ctx context.Context, delta domain.StudyLogDelta) (*domain.StudyLog, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const (
	defaultMaxSessionItems    = 1000
	defaultStatusWriteTimeout = 5 * time.Second
	defaultSessionTTL         = 6 * time.Hour
)

// Options tune the study service. Zero values fall back to defaults.
type Options struct {
	Timezone           *time.Location
	MaxSessionItems    int
	StatusWriteTimeout time.Duration
	SessionTTL         time.Duration

	// Shuffle permutes the session items in place. Defaults to a uniform
	// random permutation.
	Shuffle func([]domain.Item)
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// Service runs flip-card study sessions.
type Service struct {
	libraries libraryRepo
	items     itemRepo
	logs      studyLogRepo
	registry  *Registry
	log       *slog.Logger

	loc          *time.Location
	maxItems     int
	writeTimeout time.Duration
	shuffle      func([]domain.Item)
	clock        func() time.Time

	// in-flight item status writes
	wg sync.WaitGroup
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	libraries libraryRepo,
	items itemRepo,
	logs studyLogRepo,
	opts Options,
) *Service {
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	if opts.MaxSessionItems <= 0 {
		opts.MaxSessionItems = defaultMaxSessionItems
	}
	if opts.StatusWriteTimeout <= 0 {
		opts.StatusWriteTimeout = defaultStatusWriteTimeout
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.Shuffle == nil {
		opts.Shuffle = shuffleItems
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Service{
		libraries:    libraries,
		items:        items,
		logs:         logs,
		registry:     NewRegistry(opts.SessionTTL),
		log:          log.With("service", "study"),
		loc:          opts.Timezone,
		maxItems:     opts.MaxSessionItems,
		writeTimeout: opts.StatusWriteTimeout,
		shuffle:      opts.Shuffle,
		clock:        opts.Clock,
	}
}

func shuffleItems(items []domain.Item) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// StartSession loads the library's items into a new session.
// If the items cannot be loaded the session is still returned, left in
// Loading with Err set, together with the error.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.libraries.GetByID(ctx, userID, input.LibraryID); err != nil {
		return nil, fmt.Errorf("get library: %w", err)
	}

	sess := newSession(userID, input.LibraryID, s)
	s.registry.Put(sess, s.clock())

	items, err := s.items.ListByLibrary(ctx, input.LibraryID)
	if err != nil {
		err = fmt.Errorf("load items: %w", err)
		sess.fail(err)
		s.log.ErrorContext(ctx, "study session load failed",
			slog.String("session_id", sess.id.String()),
			slog.String("library_id", input.LibraryID.String()),
			slog.String("error", err.Error()),
		)
		return sess, err
	}

	s.shuffle(items)
	if len(items) > s.maxItems {
		items = items[:s.maxItems]
	}
	sess.load(items)

	s.log.InfoContext(ctx, "study session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sess.id.String()),
		slog.Int("items", len(items)),
	)

	return sess, nil
}

// GetSession returns a session owned by the caller.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	sess, found := s.registry.Get(userID, sessionID)
	if !found {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return sess, nil
}

// Flip toggles the current card of a session.
func (s *Service) Flip(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Flip(); err != nil {
		return nil, err
	}
	return sess, nil
}

// RecordOutcome records an answer on a session.
// When the day's log write fails the finished session is returned with the error.
func (s *Service) RecordOutcome(ctx context.Context, input RecordOutcomeInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	sess, err := s.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Record(ctx, input.Success); err != nil {
		if sess.IsFinished() {
			return sess, err
		}
		return nil, err
	}

	if sess.IsFinished() {
		res := sess.Results()
		s.log.InfoContext(ctx, "study session finished",
			slog.String("session_id", sess.id.String()),
			slog.Int("correct", res.Correct),
			slog.Int("wrong", res.Wrong),
		)
	}
	return sess, nil
}

// Discard drops a session. Answers already recorded are kept.
func (s *Service) Discard(ctx context.Context, sessionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !s.registry.Remove(userID, sessionID) {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// ActiveSessions returns the number of sessions held in memory.
func (s *Service) ActiveSessions() int {
	return s.registry.Len()
}

// Wait blocks until all in-flight item status writes complete.
func (s *Service) Wait() {
	s.wg.Wait()
}

// ---------------------------------------------------------------------------
// outcomeSink
// ---------------------------------------------------------------------------

func (s *Service) recordStatus(ctx context.Context, itemID uuid.UUID, status domain.StudyStatus) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		if err := s.items.RecordOutcome(writeCtx, itemID, status); err != nil {
			s.log.WarnContext(writeCtx, "item status update failed",
				slog.String("item_id", itemID.String()),
				slog.String("status", status.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (s *Service) finish(ctx context.Context, delta domain.StudyLogDelta) error {
	if _, err := s.logs.Upsert(ctx, delta); err != nil {
		s.log.ErrorContext(ctx, "study log write failed",
			slog.String("user_id", delta.UserID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("write study log: %w", err)
	}
	return nil
}

func (s *Service) now() time.Time {
	return s.clock()
}

func (s *Service) studyDay(t time.Time) time.Time {
	return CalendarDay(t, s.loc)
}
