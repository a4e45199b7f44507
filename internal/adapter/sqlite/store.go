package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const upsertLibrarySQL = `
INSERT INTO libraries (id, user_id, title, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    user_id     = excluded.user_id,
    title       = excluded.title,
    description = excluded.description,
    created_at  = excluded.created_at,
    updated_at  = excluded.updated_at`

const upsertItemSQL = `
INSERT INTO items (id, library_id, section_id, question, answer, memo, study_status,
                   display_order, success_count, fail_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    library_id    = excluded.library_id,
    section_id    = excluded.section_id,
    question      = excluded.question,
    answer        = excluded.answer,
    memo          = excluded.memo,
    study_status  = excluded.study_status,
    display_order = excluded.display_order,
    success_count = excluded.success_count,
    fail_count    = excluded.fail_count,
    created_at    = excluded.created_at,
    updated_at    = excluded.updated_at`

func putLibrary(ctx context.Context, db execer, lib domain.Library) error {
	_, err := db.ExecContext(ctx, upsertLibrarySQL,
		lib.ID.String(), lib.UserID.String(), lib.Title, lib.Description,
		formatTime(lib.CreatedAt), formatTime(lib.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put library %s: %w", lib.ID, err)
	}
	return nil
}

func putItem(ctx context.Context, db execer, it domain.Item) error {
	var sectionID *string
	if it.SectionID != nil {
		s := it.SectionID.String()
		sectionID = &s
	}

	_, err := db.ExecContext(ctx, upsertItemSQL,
		it.ID.String(), it.LibraryID.String(), sectionID, it.Question, it.Answer, it.Memo,
		it.StudyStatus.String(), it.DisplayOrder, it.SuccessCount, it.FailCount,
		formatTime(it.CreatedAt), formatTime(it.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put item %s: %w", it.ID, err)
	}
	return nil
}

func exists(ctx context.Context, db execer, table string, id uuid.UUID) (bool, error) {
	var found bool
	// table is always one of the package constants, never user input.
	err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id = ?)`, id.String()).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("check %s %s: %w", table, id, err)
	}
	return found, nil
}

// ---------------------------------------------------------------------------
// Local mutations: cache write + queue entry in one transaction
// ---------------------------------------------------------------------------

// SaveLibrary writes lib to the cache and queues an INSERT (new row) or
// UPDATE (existing row) for the remote store.
func (c *Cache) SaveLibrary(ctx context.Context, lib domain.Library) error {
	payload, err := domain.MarshalLibraryPayload(lib)
	if err != nil {
		return err
	}

	return c.runInTx(ctx, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, domain.TableLibraries, lib.ID)
		if err != nil {
			return err
		}
		if err := putLibrary(ctx, tx, lib); err != nil {
			return err
		}
		return c.enqueue(ctx, tx, domain.TableLibraries, actionFor(found), lib.ID, payload)
	})
}

// SaveItem writes it to the cache and queues an INSERT or UPDATE.
func (c *Cache) SaveItem(ctx context.Context, it domain.Item) error {
	payload, err := domain.MarshalItemPayload(it)
	if err != nil {
		return err
	}

	return c.runInTx(ctx, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, domain.TableItems, it.ID)
		if err != nil {
			return err
		}
		if err := putItem(ctx, tx, it); err != nil {
			return err
		}
		return c.enqueue(ctx, tx, domain.TableItems, actionFor(found), it.ID, payload)
	})
}

// DeleteLibrary removes the library (and, by cascade, its cached items) and
// queues a DELETE. The remote store cascades the same way.
func (c *Cache) DeleteLibrary(ctx context.Context, id uuid.UUID) error {
	return c.deleteRow(ctx, domain.TableLibraries, id)
}

// DeleteItem removes the item and queues a DELETE.
func (c *Cache) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return c.deleteRow(ctx, domain.TableItems, id)
}

func (c *Cache) deleteRow(ctx context.Context, table string, id uuid.UUID) error {
	payload, err := marshalDeletePayload(id)
	if err != nil {
		return err
	}

	return c.runInTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id.String()); err != nil {
			return fmt.Errorf("delete %s %s: %w", table, id, err)
		}
		return c.enqueue(ctx, tx, table, domain.SyncActionDelete, id, payload)
	})
}

func actionFor(existed bool) domain.SyncAction {
	if existed {
		return domain.SyncActionUpdate
	}
	return domain.SyncActionInsert
}

// ---------------------------------------------------------------------------
// Mirror writes: used by pull, never queued
// ---------------------------------------------------------------------------

// PutLibrary inserts or replaces a library row without queueing it.
func (c *Cache) PutLibrary(ctx context.Context, lib domain.Library) error {
	return putLibrary(ctx, c.db, lib)
}

// PutItem inserts or replaces an item row without queueing it.
func (c *Cache) PutItem(ctx context.Context, it domain.Item) error {
	return putItem(ctx, c.db, it)
}
