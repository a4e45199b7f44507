package syncer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

var _ localStore = &localStoreMock{}

type localStoreMock struct {
	QueueFunc            func(ctx context.Context) ([]domain.SyncQueueEntry, error)
	DeleteQueueEntryFunc func(ctx context.Context, id int64) error
	PutLibraryFunc       func(ctx context.Context, lib domain.Library) error
	PutItemFunc          func(ctx context.Context, it domain.Item) error

	calls struct {
		Queue []struct{}
		DeleteQueueEntry []struct {
			ID int64
		}
		PutLibrary []struct {
			Lib domain.Library
		}
		PutItem []struct {
			It domain.Item
		}
	}
	lockQueue            sync.RWMutex
	lockDeleteQueueEntry sync.RWMutex
	lockPutLibrary       sync.RWMutex
	lockPutItem          sync.RWMutex
}

func (mock *localStoreMock) Queue(ctx context.Context) ([]domain.SyncQueueEntry, error) {
	if mock.QueueFunc == nil {
		panic("localStoreMock.QueueFunc: method is nil but localStore.Queue was just called")
	}
	callInfo := struct{}{}
	mock.lockQueue.Lock()
	mock.calls.Queue = append(mock.calls.Queue, callInfo)
	mock.lockQueue.Unlock()
	return mock.QueueFunc(ctx)
}

func (mock *localStoreMock) QueueCalls() []struct{} {
	mock.lockQueue.RLock()
	calls := mock.calls.Queue
	mock.lockQueue.RUnlock()
	return calls
}

func (mock *localStoreMock) DeleteQueueEntry(ctx context.Context, id int64) error {
	if mock.DeleteQueueEntryFunc == nil {
		panic("localStoreMock.DeleteQueueEntryFunc: method is nil but localStore.DeleteQueueEntry was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockDeleteQueueEntry.Lock()
	mock.calls.DeleteQueueEntry = append(mock.calls.DeleteQueueEntry, callInfo)
	mock.lockDeleteQueueEntry.Unlock()
	return mock.DeleteQueueEntryFunc(ctx, id)
}

func (mock *localStoreMock) DeleteQueueEntryCalls() []struct {
	ID int64
} {
	mock.lockDeleteQueueEntry.RLock()
	calls := mock.calls.DeleteQueueEntry
	mock.lockDeleteQueueEntry.RUnlock()
	return calls
}

func (mock *localStoreMock) PutLibrary(ctx context.Context, lib domain.Library) error {
	if mock.PutLibraryFunc == nil {
		panic("localStoreMock.PutLibraryFunc: method is nil but localStore.PutLibrary was just called")
	}
	callInfo := struct{ Lib domain.Library }{Lib: lib}
	mock.lockPutLibrary.Lock()
	mock.calls.PutLibrary = append(mock.calls.PutLibrary, callInfo)
	mock.lockPutLibrary.Unlock()
	return mock.PutLibraryFunc(ctx, lib)
}

func (mock *localStoreMock) PutLibraryCalls() []struct {
	Lib domain.Library
} {
	mock.lockPutLibrary.RLock()
	calls := mock.calls.PutLibrary
	mock.lockPutLibrary.RUnlock()
	return calls
}

func (mock *localStoreMock) PutItem(ctx context.Context, it domain.Item) error {
	if mock.PutItemFunc == nil {
		panic("localStoreMock.PutItemFunc: method is nil but localStore.PutItem was just called")
	}
	callInfo := struct{ It domain.Item }{It: it}
	mock.lockPutItem.Lock()
	mock.calls.PutItem = append(mock.calls.PutItem, callInfo)
	mock.lockPutItem.Unlock()
	return mock.PutItemFunc(ctx, it)
}

func (mock *localStoreMock) PutItemCalls() []struct {
	It domain.Item
} {
	mock.lockPutItem.RLock()
	calls := mock.calls.PutItem
	mock.lockPutItem.RUnlock()
	return calls
}

var _ remoteLibraries = &remoteLibrariesMock{}

type remoteLibrariesMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Library, error)
	UpsertFunc     func(ctx context.Context, lib domain.Library) error
	DeleteByIDFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListByUser []struct {
			UserID uuid.UUID
		}
		Upsert []struct {
			Lib domain.Library
		}
		DeleteByID []struct {
			ID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
	lockUpsert     sync.RWMutex
	lockDeleteByID sync.RWMutex
}

func (mock *remoteLibrariesMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Library, error) {
	if mock.ListByUserFunc == nil {
		panic("remoteLibrariesMock.ListByUserFunc: method is nil but remoteLibraries.ListByUser was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *remoteLibrariesMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *remoteLibrariesMock) Upsert(ctx context.Context, lib domain.Library) error {
	if mock.UpsertFunc == nil {
		panic("remoteLibrariesMock.UpsertFunc: method is nil but remoteLibraries.Upsert was just called")
	}
	callInfo := struct{ Lib domain.Library }{Lib: lib}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, lib)
}

func (mock *remoteLibrariesMock) UpsertCalls() []struct {
	Lib domain.Library
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *remoteLibrariesMock) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteByIDFunc == nil {
		panic("remoteLibrariesMock.DeleteByIDFunc: method is nil but remoteLibraries.DeleteByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *remoteLibrariesMock) DeleteByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}

var _ remoteItems = &remoteItemsMock{}

type remoteItemsMock struct {
	ListByLibraryFunc func(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	UpsertFunc        func(ctx context.Context, it domain.Item) error
	DeleteByIDFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListByLibrary []struct {
			LibraryID uuid.UUID
		}
		Upsert []struct {
			It domain.Item
		}
		DeleteByID []struct {
			ID uuid.UUID
		}
	}
	lockListByLibrary sync.RWMutex
	lockUpsert        sync.RWMutex
	lockDeleteByID    sync.RWMutex
}

func (mock *remoteItemsMock) ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error) {
	if mock.ListByLibraryFunc == nil {
		panic("remoteItemsMock.ListByLibraryFunc: method is nil but remoteItems.ListByLibrary was just called")
	}
	callInfo := struct{ LibraryID uuid.UUID }{LibraryID: libraryID}
	mock.lockListByLibrary.Lock()
	mock.calls.ListByLibrary = append(mock.calls.ListByLibrary, callInfo)
	mock.lockListByLibrary.Unlock()
	return mock.ListByLibraryFunc(ctx, libraryID)
}

func (mock *remoteItemsMock) ListByLibraryCalls() []struct {
	LibraryID uuid.UUID
} {
	mock.lockListByLibrary.RLock()
	calls := mock.calls.ListByLibrary
	mock.lockListByLibrary.RUnlock()
	return calls
}

func (mock *remoteItemsMock) Upsert(ctx context.Context, it domain.Item) error {
	if mock.UpsertFunc == nil {
		panic("remoteItemsMock.UpsertFunc: method is nil but remoteItems.Upsert was just called")
	}
	callInfo := struct{ It domain.Item }{It: it}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, it)
}

func (mock *remoteItemsMock) UpsertCalls() []struct {
	It domain.Item
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *remoteItemsMock) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteByIDFunc == nil {
		panic("remoteItemsMock.DeleteByIDFunc: method is nil but remoteItems.DeleteByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *remoteItemsMock) DeleteByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}
