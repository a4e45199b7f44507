package study

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// SessionState is the lifecycle state of a study session.
type SessionState string

const (
	StateLoading    SessionState = "loading"
	StateInProgress SessionState = "in_progress"
	StateFinished   SessionState = "finished"
)

// ErrSessionNotInProgress is returned when an answer is recorded on a
// session that is still loading or already finished.
var ErrSessionNotInProgress = fmt.Errorf("%w: session is not in progress", domain.ErrConflict)

// outcomeSink receives the side effects of answers. Implemented by Service.
type outcomeSink interface {
	recordStatus(ctx context.Context, itemID uuid.UUID, status domain.StudyStatus)
	finish(ctx context.Context, delta domain.StudyLogDelta) error
	now() time.Time
	studyDay(t time.Time) time.Time
}

// Session is one flip-card pass over a library's items.
// Transitions: Loading -> InProgress -> Finished, never backwards.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	userID    uuid.UUID
	libraryID uuid.UUID
	sink      outcomeSink

	state      SessionState
	items      []domain.Item
	cursor     int
	flipped    bool
	correct    int
	wrong      int
	startedAt  time.Time
	finishedAt time.Time
	err        error
}

// Results holds the running answer tally.
type Results struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Snapshot is an immutable view of a session.
type Snapshot struct {
	ID         uuid.UUID
	LibraryID  uuid.UUID
	State      SessionState
	Total      int
	Cursor     int
	Position   int
	Progress   float64
	Flipped    bool
	Current    *domain.Item
	Results    Results
	StartedAt  time.Time
	FinishedAt *time.Time
	Err        error
}

func newSession(userID, libraryID uuid.UUID, sink outcomeSink) *Session {
	return &Session{
		id:        uuid.New(),
		userID:    userID,
		libraryID: libraryID,
		sink:      sink,
		state:     StateLoading,
		startedAt: sink.now(),
	}
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// UserID returns the owner of the session.
func (s *Session) UserID() uuid.UUID { return s.userID }

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the last critical failure (item load or daily log write).
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// IsFinished reports whether the session reached its terminal state.
func (s *Session) IsFinished() bool {
	return s.State() == StateFinished
}

// Progress is answered/total: exactly k/N after the k-th outcome, 0 before
// the first answer and for an empty session, 1 once finished.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress()
}

func (s *Session) progress() float64 {
	if len(s.items) == 0 {
		return 0
	}
	return float64(s.correct+s.wrong) / float64(len(s.items))
}

// position is the 1-based number of the card on screen (cursor+1), 0 when
// there are no items.
func (s *Session) position() int {
	if len(s.items) == 0 {
		return 0
	}
	return s.cursor + 1
}

// Results returns the running answer tally.
func (s *Session) Results() Results {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Results{Correct: s.correct, Wrong: s.wrong}
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:        s.id,
		LibraryID: s.libraryID,
		State:     s.state,
		Total:     len(s.items),
		Cursor:    s.cursor,
		Position:  s.position(),
		Progress:  s.progress(),
		Flipped:   s.flipped,
		Results:   Results{Correct: s.correct, Wrong: s.wrong},
		StartedAt: s.startedAt,
		Err:       s.err,
	}
	if s.state == StateInProgress && len(s.items) > 0 {
		current := s.items[s.cursor]
		snap.Current = &current
	}
	if s.state == StateFinished {
		finished := s.finishedAt
		snap.FinishedAt = &finished
	}
	return snap
}

// load moves the session to InProgress with the given (already shuffled) items.
func (s *Session) load(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.state = StateInProgress
}

// fail records a load failure. The session stays in Loading.
func (s *Session) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Flip toggles the current card between question and answer.
func (s *Session) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrSessionNotInProgress
	}
	s.flipped = !s.flipped
	return nil
}

// Record registers the learner's answer for the current card.
// The item status update is best-effort and never fails the call.
// On the last card the day's study log is written and the session finishes;
// a failed log write is returned and kept in Err, the session still finishes.
func (s *Session) Record(ctx context.Context, success bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrSessionNotInProgress
	}
	if len(s.items) == 0 {
		return domain.NewValidationError("session", "has no items to answer")
	}

	if success {
		s.correct++
	} else {
		s.wrong++
	}

	current := s.items[s.cursor]
	s.sink.recordStatus(ctx, current.ID, domain.StatusForOutcome(success))

	if s.cursor < len(s.items)-1 {
		s.flipped = false
		s.cursor++
		return nil
	}

	now := s.sink.now()
	delta := domain.StudyLogDelta{
		UserID:           s.userID,
		StudyDate:        s.sink.studyDay(now),
		ItemsCount:       len(s.items),
		CorrectCount:     s.correct,
		StudyTimeSeconds: int(now.Sub(s.startedAt) / time.Second),
	}

	s.state = StateFinished
	s.finishedAt = now

	if err := s.sink.finish(ctx, delta); err != nil {
		s.err = err
		return err
	}
	return nil
}
