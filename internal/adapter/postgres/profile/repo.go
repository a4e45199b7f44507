// Package profile implements the Profile repository using PostgreSQL.
package profile

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

const upsertNicknameSQL = `
INSERT INTO profiles (user_id, nickname)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET
    nickname   = EXCLUDED.nickname,
    updated_at = now()
RETURNING user_id, nickname, created_at, updated_at`

type profileRow struct {
	UserID    uuid.UUID `db:"user_id"`
	Nickname  string    `db:"nickname"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUserID returns the profile of userID.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "nickname", "created_at", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get profile: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	p := domain.Profile(row)
	return &p, nil
}

// UpsertNickname sets the nickname, creating the profile on first use.
func (r *Repo) UpsertNickname(ctx context.Context, userID uuid.UUID, nickname string) (*domain.Profile, error) {
	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertNicknameSQL, userID, nickname); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	p := domain.Profile(row)
	return &p, nil
}
