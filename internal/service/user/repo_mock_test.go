package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertNicknameFunc func(ctx context.Context, userID uuid.UUID, nickname string) (*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			UserID uuid.UUID
		}
		UpsertNickname []struct {
			UserID   uuid.UUID
			Nickname string
		}
	}
	lockGetByUserID    sync.RWMutex
	lockUpsertNickname sync.RWMutex
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *profileRepoMock) GetByUserIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpsertNickname(ctx context.Context, userID uuid.UUID, nickname string) (*domain.Profile, error) {
	if mock.UpsertNicknameFunc == nil {
		panic("profileRepoMock.UpsertNicknameFunc: method is nil but profileRepo.UpsertNickname was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		Nickname string
	}{UserID: userID, Nickname: nickname}
	mock.lockUpsertNickname.Lock()
	mock.calls.UpsertNickname = append(mock.calls.UpsertNickname, callInfo)
	mock.lockUpsertNickname.Unlock()
	return mock.UpsertNicknameFunc(ctx, userID, nickname)
}

func (mock *profileRepoMock) UpsertNicknameCalls() []struct {
	UserID   uuid.UUID
	Nickname string
} {
	mock.lockUpsertNickname.RLock()
	calls := mock.calls.UpsertNickname
	mock.lockUpsertNickname.RUnlock()
	return calls
}
