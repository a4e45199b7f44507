package stats

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

var _ studyLogRepo = &studyLogRepoMock{}

type studyLogRepoMock struct {
	ListSinceFunc        func(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.StudyLog, error)
	ListDatesDescFunc    func(ctx context.Context, userID uuid.UUID, limit int) ([]time.Time, error)
	ListDatesBetweenFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]time.Time, error)

	calls struct {
		ListSince []struct {
			UserID uuid.UUID
			From   time.Time
		}
		ListDatesDesc []struct {
			UserID uuid.UUID
			Limit  int
		}
		ListDatesBetween []struct {
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockListSince        sync.RWMutex
	lockListDatesDesc    sync.RWMutex
	lockListDatesBetween sync.RWMutex
}

func (mock *studyLogRepoMock) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.StudyLog, error) {
	if mock.ListSinceFunc == nil {
		panic("studyLogRepoMock.ListSinceFunc: method is nil but studyLogRepo.ListSince was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		From   time.Time
	}{UserID: userID, From: from}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, userID, from)
}

func (mock *studyLogRepoMock) ListSinceCalls() []struct {
	UserID uuid.UUID
	From   time.Time
} {
	mock.lockListSince.RLock()
	calls := mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}

func (mock *studyLogRepoMock) ListDatesDesc(ctx context.Context, userID uuid.UUID, limit int) ([]time.Time, error) {
	if mock.ListDatesDescFunc == nil {
		panic("studyLogRepoMock.ListDatesDescFunc: method is nil but studyLogRepo.ListDatesDesc was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Limit  int
	}{UserID: userID, Limit: limit}
	mock.lockListDatesDesc.Lock()
	mock.calls.ListDatesDesc = append(mock.calls.ListDatesDesc, callInfo)
	mock.lockListDatesDesc.Unlock()
	return mock.ListDatesDescFunc(ctx, userID, limit)
}

func (mock *studyLogRepoMock) ListDatesDescCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListDatesDesc.RLock()
	calls := mock.calls.ListDatesDesc
	mock.lockListDatesDesc.RUnlock()
	return calls
}

func (mock *studyLogRepoMock) ListDatesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	if mock.ListDatesBetweenFunc == nil {
		panic("studyLogRepoMock.ListDatesBetweenFunc: method is nil but studyLogRepo.ListDatesBetween was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{UserID: userID, From: from, To: to}
	mock.lockListDatesBetween.Lock()
	mock.calls.ListDatesBetween = append(mock.calls.ListDatesBetween, callInfo)
	mock.lockListDatesBetween.Unlock()
	return mock.ListDatesBetweenFunc(ctx, userID, from, to)
}

func (mock *studyLogRepoMock) ListDatesBetweenCalls() []struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListDatesBetween.RLock()
	calls := mock.calls.ListDatesBetween
	mock.lockListDatesBetween.RUnlock()
	return calls
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID, libraryID *uuid.UUID) ([]domain.StatusCount, error)

	calls struct {
		CountByStatus []struct {
			UserID    uuid.UUID
			LibraryID *uuid.UUID
		}
	}
	lockCountByStatus sync.RWMutex
}

func (mock *itemRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID, libraryID *uuid.UUID) ([]domain.StatusCount, error) {
	if mock.CountByStatusFunc == nil {
		panic("itemRepoMock.CountByStatusFunc: method is nil but itemRepo.CountByStatus was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		LibraryID *uuid.UUID
	}{UserID: userID, LibraryID: libraryID}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, userID, libraryID)
}

func (mock *itemRepoMock) CountByStatusCalls() []struct {
	UserID    uuid.UUID
	LibraryID *uuid.UUID
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}
