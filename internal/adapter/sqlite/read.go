package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// ListLibraries returns the cached libraries of userID.
func (c *Cache) ListLibraries(ctx context.Context, userID uuid.UUID) ([]domain.Library, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM libraries WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list cached libraries: %w", err)
	}
	defer rows.Close()

	var libs []domain.Library
	for rows.Next() {
		var (
			lib                  domain.Library
			createdAt, updatedAt string
		)
		if err := rows.Scan(&lib.ID, &lib.UserID, &lib.Title, &lib.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan cached library: %w", err)
		}
		if lib.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if lib.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	return libs, rows.Err()
}

// ListItems returns the cached items of a library in display order.
func (c *Cache) ListItems(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, library_id, section_id, question, answer, memo, study_status,
		       display_order, success_count, fail_count, created_at, updated_at
		FROM items WHERE library_id = ?
		ORDER BY display_order ASC, created_at ASC`, libraryID.String())
	if err != nil {
		return nil, fmt.Errorf("list cached items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			it                   domain.Item
			sectionID            uuid.NullUUID
			status               string
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&it.ID, &it.LibraryID, &sectionID, &it.Question, &it.Answer, &it.Memo, &status,
			&it.DisplayOrder, &it.SuccessCount, &it.FailCount, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cached item: %w", err)
		}
		if sectionID.Valid {
			it.SectionID = &sectionID.UUID
		}
		it.StudyStatus = domain.ParseStudyStatus(status)
		if it.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// CountUnlearned returns how many cached items are not yet learned.
func (c *Cache) CountUnlearned(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx,
		`SELECT count(*) FROM items WHERE study_status <> ?`, domain.StudyStatusLearned.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unlearned items: %w", err)
	}
	return n, nil
}
