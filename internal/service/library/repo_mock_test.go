package library

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

var _ libraryRepo = &libraryRepoMock{}

type libraryRepoMock struct {
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Library, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Library, error)
	CreateFunc     func(ctx context.Context, lib domain.Library) (*domain.Library, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		Create []struct {
			Lib domain.Library
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *libraryRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Library, error) {
	if mock.GetByIDFunc == nil {
		panic("libraryRepoMock.GetByIDFunc: method is nil but libraryRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *libraryRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *libraryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Library, error) {
	if mock.ListByUserFunc == nil {
		panic("libraryRepoMock.ListByUserFunc: method is nil but libraryRepo.ListByUser was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *libraryRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *libraryRepoMock) Create(ctx context.Context, lib domain.Library) (*domain.Library, error) {
	if mock.CreateFunc == nil {
		panic("libraryRepoMock.CreateFunc: method is nil but libraryRepo.Create was just called")
	}
	callInfo := struct{ Lib domain.Library }{Lib: lib}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, lib)
}

func (mock *libraryRepoMock) CreateCalls() []struct {
	Lib domain.Library
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *libraryRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("libraryRepoMock.DeleteFunc: method is nil but libraryRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *libraryRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	ListByLibraryFunc func(ctx context.Context, libraryID uuid.UUID) ([]domain.Section, error)
	CreateFunc        func(ctx context.Context, s domain.Section) (*domain.Section, error)

	calls struct {
		ListByLibrary []struct {
			LibraryID uuid.UUID
		}
		Create []struct {
			S domain.Section
		}
	}
	lockListByLibrary sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *sectionRepoMock) ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Section, error) {
	if mock.ListByLibraryFunc == nil {
		panic("sectionRepoMock.ListByLibraryFunc: method is nil but sectionRepo.ListByLibrary was just called")
	}
	callInfo := struct{ LibraryID uuid.UUID }{LibraryID: libraryID}
	mock.lockListByLibrary.Lock()
	mock.calls.ListByLibrary = append(mock.calls.ListByLibrary, callInfo)
	mock.lockListByLibrary.Unlock()
	return mock.ListByLibraryFunc(ctx, libraryID)
}

func (mock *sectionRepoMock) ListByLibraryCalls() []struct {
	LibraryID uuid.UUID
} {
	mock.lockListByLibrary.RLock()
	calls := mock.calls.ListByLibrary
	mock.lockListByLibrary.RUnlock()
	return calls
}

func (mock *sectionRepoMock) Create(ctx context.Context, s domain.Section) (*domain.Section, error) {
	if mock.CreateFunc == nil {
		panic("sectionRepoMock.CreateFunc: method is nil but sectionRepo.Create was just called")
	}
	callInfo := struct{ S domain.Section }{S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sectionRepoMock) CreateCalls() []struct {
	S domain.Section
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListByLibraryFunc func(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	CreateFunc        func(ctx context.Context, it domain.Item) (*domain.Item, error)

	calls struct {
		ListByLibrary []struct {
			LibraryID uuid.UUID
		}
		Create []struct {
			It domain.Item
		}
	}
	lockListByLibrary sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *itemRepoMock) ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error) {
	if mock.ListByLibraryFunc == nil {
		panic("itemRepoMock.ListByLibraryFunc: method is nil but itemRepo.ListByLibrary was just called")
	}
	callInfo := struct{ LibraryID uuid.UUID }{LibraryID: libraryID}
	mock.lockListByLibrary.Lock()
	mock.calls.ListByLibrary = append(mock.calls.ListByLibrary, callInfo)
	mock.lockListByLibrary.Unlock()
	return mock.ListByLibraryFunc(ctx, libraryID)
}

func (mock *itemRepoMock) ListByLibraryCalls() []struct {
	LibraryID uuid.UUID
} {
	mock.lockListByLibrary.RLock()
	calls := mock.calls.ListByLibrary
	mock.lockListByLibrary.RUnlock()
	return calls
}

func (mock *itemRepoMock) Create(ctx context.Context, it domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct{ It domain.Item }{It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	It domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct{ Fn func(ctx context.Context) error }{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
