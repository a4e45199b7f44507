package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// ErrUnknownTable is returned for queue entries naming a table the remote
// store does not mirror.
var ErrUnknownTable = errors.New("unknown sync table")

// ErrUnknownAction is returned for queue entries with an unrecognised action.
var ErrUnknownAction = errors.New("unknown sync action")

func (s *Syncer) replay(ctx context.Context, e domain.SyncQueueEntry) error {
	if !e.Action.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, e.Action)
	}

	switch e.TableName {
	case domain.TableLibraries:
		if e.Action == domain.SyncActionDelete {
			return s.libraries.DeleteByID(ctx, e.RowID)
		}
		lib, err := domain.UnmarshalLibraryPayload(e.Payload)
		if err != nil {
			return err
		}
		return s.libraries.Upsert(ctx, lib)

	case domain.TableItems:
		if e.Action == domain.SyncActionDelete {
			return s.items.DeleteByID(ctx, e.RowID)
		}
		it, err := domain.UnmarshalItemPayload(e.Payload)
		if err != nil {
			return err
		}
		return s.items.Upsert(ctx, it)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownTable, e.TableName)
	}
}
