package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc          func(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error)
	DeleteByUserFunc    func(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteOlderThanFunc func(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.ActivityLog, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.ActivityLog
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteOlderThan []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Cutoff time.Time
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate          sync.RWMutex
	lockDeleteByUser    sync.RWMutex
	lockDeleteOlderThan sync.RWMutex
	lockListByUser      sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.ActivityLog
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.ActivityLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.DeleteByUserFunc == nil {
		panic("activityRepoMock.DeleteByUserFunc: method is nil but activityRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *activityRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}

func (mock *activityRepoMock) DeleteOlderThan(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error) {
	if mock.DeleteOlderThanFunc == nil {
		panic("activityRepoMock.DeleteOlderThanFunc: method is nil but activityRepo.DeleteOlderThan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Cutoff time.Time
	}{Ctx: ctx, UserID: userID, Cutoff: cutoff}
	mock.lockDeleteOlderThan.Lock()
	mock.calls.DeleteOlderThan = append(mock.calls.DeleteOlderThan, callInfo)
	mock.lockDeleteOlderThan.Unlock()
	return mock.DeleteOlderThanFunc(ctx, userID, cutoff)
}

func (mock *activityRepoMock) DeleteOlderThanCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Cutoff time.Time
} {
	mock.lockDeleteOlderThan.RLock()
	calls := mock.calls.DeleteOlderThan
	mock.lockDeleteOlderThan.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.ActivityLog, error) {
	if mock.ListByUserFunc == nil {
		panic("activityRepoMock.ListByUserFunc: method is nil but activityRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *activityRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
