package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)

	calls struct {
		ValidateToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockValidateToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.ValidateTokenFunc == nil {
		panic("tokenValidatorMock.ValidateTokenFunc: method is nil but tokenValidator.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}

func (mock *tokenValidatorMock) ValidateTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}

var _ boardGetter = &boardGetterMock{}

type boardGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *boardGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if mock.GetByIDFunc == nil {
		panic("boardGetterMock.GetByIDFunc: method is nil but boardGetter.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boardGetterMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ roleResolver = &roleResolverMock{}

type roleResolverMock struct {
	ResolveRoleFunc func(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)

	calls struct {
		ResolveRole []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Board  *domain.Board
		}
	}
	lockResolveRole sync.RWMutex
}

func (mock *roleResolverMock) ResolveRole(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error) {
	if mock.ResolveRoleFunc == nil {
		panic("roleResolverMock.ResolveRoleFunc: method is nil but roleResolver.ResolveRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Board  *domain.Board
	}{Ctx: ctx, UserID: userID, Board: board}
	mock.lockResolveRole.Lock()
	mock.calls.ResolveRole = append(mock.calls.ResolveRole, callInfo)
	mock.lockResolveRole.Unlock()
	return mock.ResolveRoleFunc(ctx, userID, board)
}

func (mock *roleResolverMock) ResolveRoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Board  *domain.Board
} {
	mock.lockResolveRole.RLock()
	calls := mock.calls.ResolveRole
	mock.lockResolveRole.RUnlock()
	return calls
}
