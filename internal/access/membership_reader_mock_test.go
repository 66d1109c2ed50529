package access

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

var _ membershipReader = &membershipReaderMock{}

type membershipReaderMock struct {
	GetMembershipFunc func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Membership, error)

	calls struct {
		GetMembership []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockGetMembership sync.RWMutex
}

func (mock *membershipReaderMock) GetMembership(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Membership, error) {
	if mock.GetMembershipFunc == nil {
		panic("membershipReaderMock.GetMembershipFunc: method is nil but membershipReader.GetMembership was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockGetMembership.Lock()
	mock.calls.GetMembership = append(mock.calls.GetMembership, callInfo)
	mock.lockGetMembership.Unlock()
	return mock.GetMembershipFunc(ctx, boardID, userID)
}

func (mock *membershipReaderMock) GetMembershipCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockGetMembership.RLock()
	calls := mock.calls.GetMembership
	mock.lockGetMembership.RUnlock()
	return calls
}
