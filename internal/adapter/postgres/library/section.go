package library

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

const sectionsTable = "sections"

var sectionColumns = []string{"id", "library_id", "title", "display_order", "created_at"}

type sectionRow struct {
	ID           uuid.UUID `db:"id"`
	LibraryID    uuid.UUID `db:"library_id"`
	Title        string    `db:"title"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
}

// SectionRepo provides section persistence backed by PostgreSQL.
type SectionRepo struct {
	db postgres.Querier
}

// NewSectionRepo creates a new section repository.
func NewSectionRepo(db postgres.Querier) *SectionRepo {
	return &SectionRepo{db: db}
}

// ListByLibrary returns sections of a library ordered by display_order.
func (r *SectionRepo) ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Section, error) {
	query, args, err := postgres.Builder().
		Select(sectionColumns...).
		From(sectionsTable).
		Where(squirrel.Eq{"library_id": libraryID}).
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sections: %w", err)
	}

	var rows []sectionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	sections := make([]domain.Section, len(rows))
	for i, row := range rows {
		sections[i] = domain.Section(row)
	}
	return sections, nil
}

// Create inserts a section at the end of the library's ordering.
func (r *SectionRepo) Create(ctx context.Context, s domain.Section) (*domain.Section, error) {
	nextOrder := squirrel.Expr(
		"(SELECT COALESCE(MAX(display_order) + 1, 0) FROM sections WHERE library_id = ?)", s.LibraryID,
	)

	query, args, err := postgres.Builder().
		Insert(sectionsTable).
		Columns(sectionColumns...).
		Values(s.ID, s.LibraryID, s.Title, nextOrder, s.CreatedAt).
		Suffix("RETURNING " + columnList(sectionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create section: %w", err)
	}

	var row sectionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "section", s.ID)
	}

	created := domain.Section(row)
	return &created, nil
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}
