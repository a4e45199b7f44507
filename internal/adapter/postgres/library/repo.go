// Package library implements the Library and Section repositories using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

const librariesTable = "libraries"

var libraryColumns = []string{"id", "user_id", "title", "description", "created_at", "updated_at"}

type libraryRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r libraryRow) toDomain() domain.Library {
	return domain.Library{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides library persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new library repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a library owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Library, error) {
	query, args, err := postgres.Builder().
		Select(libraryColumns...).
		From(librariesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get library: %w", err)
	}

	var row libraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "library", id)
	}

	lib := row.toDomain()
	return &lib, nil
}

// ListByUser returns all libraries of userID, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Library, error) {
	query, args, err := postgres.Builder().
		Select(libraryColumns...).
		From(librariesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list libraries: %w", err)
	}

	var rows []libraryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	libs := make([]domain.Library, len(rows))
	for i, row := range rows {
		libs[i] = row.toDomain()
	}
	return libs, nil
}

// Create inserts a new library and returns the persisted row.
func (r *Repo) Create(ctx context.Context, lib domain.Library) (*domain.Library, error) {
	query, args, err := postgres.Builder().
		Insert(librariesTable).
		Columns(libraryColumns...).
		Values(lib.ID, lib.UserID, lib.Title, lib.Description, lib.CreatedAt, lib.UpdatedAt).
		Suffix("RETURNING " + columnList(libraryColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create library: %w", err)
	}

	var row libraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "library", lib.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Upsert inserts lib or overwrites the row with the same id.
func (r *Repo) Upsert(ctx context.Context, lib domain.Library) error {
	query, args, err := postgres.Builder().
		Insert(librariesTable).
		Columns(libraryColumns...).
		Values(lib.ID, lib.UserID, lib.Title, lib.Description, lib.CreatedAt, lib.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert library: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "library", lib.ID)
	}
	return nil
}

// Delete removes a library owned by userID. Items and sections cascade.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.delete(ctx, squirrel.Eq{"id": id, "user_id": userID}, id)
}

// DeleteByID removes a library by primary key. Deleting a missing row is not an error.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	err := r.delete(ctx, squirrel.Eq{"id": id}, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func (r *Repo) delete(ctx context.Context, where squirrel.Eq, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(librariesTable).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete library: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "library", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("library %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
