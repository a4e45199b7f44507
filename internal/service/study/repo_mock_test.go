package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

var _ libraryRepo = &libraryRepoMock{}

type libraryRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.Library, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *libraryRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Library, error) {
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

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListByLibraryFunc func(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	RecordOutcomeFunc func(ctx context.Context, id uuid.UUID, status domain.StudyStatus) error

	calls struct {
		ListByLibrary []struct {
			LibraryID uuid.UUID
		}
		RecordOutcome []struct {
			ID     uuid.UUID
			Status domain.StudyStatus
		}
	}
	lockListByLibrary sync.RWMutex
	lockRecordOutcome sync.RWMutex
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

func (mock *itemRepoMock) RecordOutcome(ctx context.Context, id uuid.UUID, status domain.StudyStatus) error {
	if mock.RecordOutcomeFunc == nil {
		panic("itemRepoMock.RecordOutcomeFunc: method is nil but itemRepo.RecordOutcome was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.StudyStatus
	}{ID: id, Status: status}
	mock.lockRecordOutcome.Lock()
	mock.calls.RecordOutcome = append(mock.calls.RecordOutcome, callInfo)
	mock.lockRecordOutcome.Unlock()
	return mock.RecordOutcomeFunc(ctx, id, status)
}

func (mock *itemRepoMock) RecordOutcomeCalls() []struct {
	ID     uuid.UUID
	Status domain.StudyStatus
} {
	mock.lockRecordOutcome.RLock()
	calls := mock.calls.RecordOutcome
	mock.lockRecordOutcome.RUnlock()
	return calls
}

var _ studyLogRepo = &studyLogRepoMock{}

type studyLogRepoMock struct {
	UpsertFunc func(ctx context.Context, delta domain.StudyLogDelta) (*domain.StudyLog, error)

	calls struct {
		Upsert []struct {
			Delta domain.StudyLogDelta
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *studyLogRepoMock) Upsert(ctx context.Context, delta domain.StudyLogDelta) (*domain.StudyLog, error) {
	if mock.UpsertFunc == nil {
		panic("studyLogRepoMock.UpsertFunc: method is nil but studyLogRepo.Upsert was just called")
	}
	callInfo := struct{ Delta domain.StudyLogDelta }{Delta: delta}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, delta)
}

func (mock *studyLogRepoMock) UpsertCalls() []struct {
	Delta domain.StudyLogDelta
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
