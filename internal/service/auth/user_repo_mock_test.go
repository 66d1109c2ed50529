package auth

import (
	"context"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ExistsFunc     func(ctx context.Context, id uuid.UUID) (bool, error)
	EnsureUserFunc func(ctx context.Context, email string, username string) (*domain.User, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		EnsureUser []struct {
			Ctx      context.Context
			Email    string
			Username string
		}
	}
	lockExists     sync.RWMutex
	lockEnsureUser sync.RWMutex
}

func (mock *userRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("userRepoMock.ExistsFunc: method is nil but userRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *userRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *userRepoMock) EnsureUser(ctx context.Context, email string, username string) (*domain.User, error) {
	if mock.EnsureUserFunc == nil {
		panic("userRepoMock.EnsureUserFunc: method is nil but userRepo.EnsureUser was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Username string
	}{Ctx: ctx, Email: email, Username: username}
	mock.lockEnsureUser.Lock()
	mock.calls.EnsureUser = append(mock.calls.EnsureUser, callInfo)
	mock.lockEnsureUser.Unlock()
	return mock.EnsureUserFunc(ctx, email, username)
}

func (mock *userRepoMock) EnsureUserCalls() []struct {
	Ctx      context.Context
	Email    string
	Username string
} {
	mock.lockEnsureUser.RLock()
	calls := mock.calls.EnsureUser
	mock.lockEnsureUser.RUnlock()
	return calls
}
