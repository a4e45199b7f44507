// Package item implements the Item repository using PostgreSQL.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

const itemsTable = "items"

var itemColumns = []string{
	"id", "library_id", "section_id", "question", "answer", "memo", "study_status",
	"display_order", "success_count", "fail_count", "created_at", "updated_at",
}

type itemRow struct {
	ID           uuid.UUID  `db:"id"`
	LibraryID    uuid.UUID  `db:"library_id"`
	SectionID    *uuid.UUID `db:"section_id"`
	Question     string     `db:"question"`
	Answer       string     `db:"answer"`
	Memo         *string    `db:"memo"`
	StudyStatus  string     `db:"study_status"`
	DisplayOrder int        `db:"display_order"`
	SuccessCount int        `db:"success_count"`
	FailCount    int        `db:"fail_count"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:           r.ID,
		LibraryID:    r.LibraryID,
		SectionID:    r.SectionID,
		Question:     r.Question,
		Answer:       r.Answer,
		Memo:         r.Memo,
		StudyStatus:  domain.ParseStudyStatus(r.StudyStatus),
		DisplayOrder: r.DisplayOrder,
		SuccessCount: r.SuccessCount,
		FailCount:    r.FailCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Raw SQL for statements squirrel does not express well
// ---------------------------------------------------------------------------

// recordOutcomeSQL sets the status and bumps the matching counter in one statement.
const recordOutcomeSQL = `
UPDATE items SET
    study_status  = $2,
    success_count = success_count + CASE WHEN $2 = 'learned' THEN 1 ELSE 0 END,
    fail_count    = fail_count + CASE WHEN $2 = 'confused' THEN 1 ELSE 0 END,
    updated_at    = now()
WHERE id = $1`

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByLibrary returns all items of a library in display order.
func (r *Repo) ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error) {
	query, args, err := postgres.Builder().
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"library_id": libraryID}).
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list items of library %s: %w", libraryID, err)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

// Create inserts an item at the end of the library's ordering.
func (r *Repo) Create(ctx context.Context, it domain.Item) (*domain.Item, error) {
	nextOrder := squirrel.Expr(
		"(SELECT COALESCE(MAX(display_order) + 1, 0) FROM items WHERE library_id = ?)", it.LibraryID,
	)

	query, args, err := postgres.Builder().
		Insert(itemsTable).
		Columns(itemColumns...).
		Values(
			it.ID, it.LibraryID, it.SectionID, it.Question, it.Answer, it.Memo, it.StudyStatus.String(),
			nextOrder, it.SuccessCount, it.FailCount, it.CreatedAt, it.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create item: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Upsert inserts it or overwrites the row with the same id.
func (r *Repo) Upsert(ctx context.Context, it domain.Item) error {
	query, args, err := postgres.Builder().
		Insert(itemsTable).
		Columns(itemColumns...).
		Values(
			it.ID, it.LibraryID, it.SectionID, it.Question, it.Answer, it.Memo, it.StudyStatus.String(),
			it.DisplayOrder, it.SuccessCount, it.FailCount, it.CreatedAt, it.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			library_id = EXCLUDED.library_id,
			section_id = EXCLUDED.section_id,
			question = EXCLUDED.question,
			answer = EXCLUDED.answer,
			memo = EXCLUDED.memo,
			study_status = EXCLUDED.study_status,
			display_order = EXCLUDED.display_order,
			success_count = EXCLUDED.success_count,
			fail_count = EXCLUDED.fail_count,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert item: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", it.ID)
	}
	return nil
}

// DeleteByID removes an item. Deleting a missing row is not an error.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(itemsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", id)
	}
	return nil
}

// RecordOutcome stores the status an answer produced and bumps the
// success or fail counter.
func (r *Repo) RecordOutcome(ctx context.Context, id uuid.UUID, status domain.StudyStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recordOutcomeSQL, id, status.String())
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByStatus groups the user's items by raw study_status. When libraryID
// is set only that library is counted.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID, libraryID *uuid.UUID) ([]domain.StatusCount, error) {
	where := squirrel.Eq{"l.user_id": userID}
	if libraryID != nil {
		where["i.library_id"] = *libraryID
	}

	query, args, err := postgres.Builder().
		Select("i.study_status AS status", "count(*) AS count").
		From("items i").
		Join("libraries l ON l.id = i.library_id").
		Where(where).
		GroupBy("i.study_status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count items by status: %w", err)
	}

	var counts []domain.StatusCount
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &counts, query, args...); err != nil {
		return nil, fmt.Errorf("count items by status: %w", err)
	}
	return counts, nil
}
