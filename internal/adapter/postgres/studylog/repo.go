// Package studylog implements the StudyLog repository using PostgreSQL.
// The daily aggregate is written with a single upsert keyed by
// (user_id, study_date); reads go through squirrel + scany.
package studylog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

const studyLogsTable = "study_logs"

var studyLogColumns = []string{
	"id", "user_id", "study_date", "items_count", "correct_count",
	"study_time_seconds", "created_at", "updated_at",
}

const upsertSQL = `
INSERT INTO study_logs (id, user_id, study_date, items_count, correct_count, study_time_seconds)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, study_date) DO UPDATE SET
    items_count        = study_logs.items_count + EXCLUDED.items_count,
    correct_count      = study_logs.correct_count + EXCLUDED.correct_count,
    study_time_seconds = study_logs.study_time_seconds + EXCLUDED.study_time_seconds,
    updated_at         = now()
RETURNING id, user_id, study_date, items_count, correct_count, study_time_seconds, created_at, updated_at`

type studyLogRow struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	StudyDate        time.Time `db:"study_date"`
	ItemsCount       int       `db:"items_count"`
	CorrectCount     int       `db:"correct_count"`
	StudyTimeSeconds int       `db:"study_time_seconds"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Repo provides study log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new study log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert adds delta to the user's log for delta.StudyDate, creating the row
// if this is the first session of the day.
func (r *Repo) Upsert(ctx context.Context, delta domain.StudyLogDelta) (*domain.StudyLog, error) {
	var row studyLogRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		uuid.New(), delta.UserID, delta.StudyDate,
		delta.ItemsCount, delta.CorrectCount, delta.StudyTimeSeconds,
	)
	if err != nil {
		return nil, postgres.MapError(err, "study_log", delta.UserID)
	}

	log := domain.StudyLog(row)
	return &log, nil
}

// ListSince returns the user's logs dated on or after from, oldest first.
func (r *Repo) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.StudyLog, error) {
	query, args, err := postgres.Builder().
		Select(studyLogColumns...).
		From(studyLogsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"study_date": from}).
		OrderBy("study_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list study logs: %w", err)
	}

	var rows []studyLogRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list study logs: %w", err)
	}

	logs := make([]domain.StudyLog, len(rows))
	for i, row := range rows {
		logs[i] = domain.StudyLog(row)
	}
	return logs, nil
}

// ListDatesDesc returns up to limit study dates of the user, most recent first.
func (r *Repo) ListDatesDesc(ctx context.Context, userID uuid.UUID, limit int) ([]time.Time, error) {
	query, args, err := postgres.Builder().
		Select("study_date").
		From(studyLogsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("study_date DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list study dates: %w", err)
	}

	var dates []time.Time
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &dates, query, args...); err != nil {
		return nil, fmt.Errorf("list study dates: %w", err)
	}
	return dates, nil
}

// ListDatesBetween returns the distinct study dates in [from, to), ascending.
func (r *Repo) ListDatesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	query, args, err := postgres.Builder().
		Select("DISTINCT study_date").
		From(studyLogsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"study_date": from}).
		Where(squirrel.Lt{"study_date": to}).
		OrderBy("study_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list study dates between: %w", err)
	}

	var dates []time.Time
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &dates, query, args...); err != nil {
		return nil, fmt.Errorf("list study dates between: %w", err)
	}
	return dates, nil
}
