package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// Queue returns every pending entry, oldest first.
func (c *Cache) Queue(ctx context.Context) ([]domain.SyncQueueEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, table_name, action_type, row_id, payload, created_at
		FROM sync_queue
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sync queue: %w", err)
	}
	defer rows.Close()

	var entries []domain.SyncQueueEntry
	for rows.Next() {
		var (
			e         domain.SyncQueueEntry
			action    string
			payload   string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.TableName, &action, &e.RowID, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan sync queue entry: %w", err)
		}
		e.Action = domain.SyncAction(action)
		e.Payload = []byte(payload)
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("sync queue entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync queue: %w", err)
	}
	return entries, nil
}

// QueueLen returns the number of pending entries.
func (c *Cache) QueueLen(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM sync_queue`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sync queue: %w", err)
	}
	return n, nil
}

// DeleteQueueEntry removes an entry once the remote store confirmed it.
func (c *Cache) DeleteQueueEntry(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sync queue entry %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("sync queue entry %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (c *Cache) enqueue(ctx context.Context, tx *sql.Tx, table string, action domain.SyncAction, rowID uuid.UUID, payload []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sync_queue (table_name, action_type, row_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		table, action.String(), rowID.String(), string(payload), formatTime(c.now()),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s %s %s: %w", action, table, rowID, err)
	}
	return nil
}

type deletePayload struct {
	ID string `json:"id"`
}

func marshalDeletePayload(id uuid.UUID) ([]byte, error) {
	return json.Marshal(deletePayload{ID: id.String()})
}
