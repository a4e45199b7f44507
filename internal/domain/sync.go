package domain

import (
	"time"

	"github.com/google/uuid"
)

// Table names shared by the local cache, the sync queue and the remote store.
const (
	TableLibraries = "libraries"
	TableItems     = "items"
)

// SyncQueueEntry is a pending local mutation awaiting replay on the remote store.
// Entries are replayed in ID order.
type SyncQueueEntry struct {
	ID        int64
	TableName string
	Action    SyncAction
	RowID     uuid.UUID
	Payload   []byte
	CreatedAt time.Time
}
