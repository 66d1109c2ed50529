package board

import (
	"context"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	GetByInviteTokenFunc func(ctx context.Context, token uuid.UUID) (*domain.Board, error)
	CreateFunc           func(ctx context.Context, b *domain.Board) (*domain.Board, error)
	UpdateFunc           func(ctx context.Context, b *domain.Board) (*domain.Board, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ListForUserFunc      func(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.BoardSummary, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByInviteToken []struct {
			Ctx   context.Context
			Token uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			B   *domain.Board
		}
		Update []struct {
			Ctx context.Context
			B   *domain.Board
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListForUser []struct {
			Ctx             context.Context
			UserID          uuid.UUID
			IncludeArchived bool
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByInviteToken sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockListForUser      sync.RWMutex
}

func (mock *boardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if mock.GetByIDFunc == nil {
		panic("boardRepoMock.GetByIDFunc: method is nil but boardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *boardRepoMock) GetByInviteToken(ctx context.Context, token uuid.UUID) (*domain.Board, error) {
	if mock.GetByInviteTokenFunc == nil {
		panic("boardRepoMock.GetByInviteTokenFunc: method is nil but boardRepo.GetByInviteToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token uuid.UUID
	}{Ctx: ctx, Token: token}
	mock.lockGetByInviteToken.Lock()
	mock.calls.GetByInviteToken = append(mock.calls.GetByInviteToken, callInfo)
	mock.lockGetByInviteToken.Unlock()
	return mock.GetByInviteTokenFunc(ctx, token)
}

func (mock *boardRepoMock) GetByInviteTokenCalls() []struct {
	Ctx   context.Context
	Token uuid.UUID
} {
	mock.lockGetByInviteToken.RLock()
	calls := mock.calls.GetByInviteToken
	mock.lockGetByInviteToken.RUnlock()
	return calls
}

func (mock *boardRepoMock) Create(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	if mock.CreateFunc == nil {
		panic("boardRepoMock.CreateFunc: method is nil but boardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Board
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *boardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Board
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *boardRepoMock) Update(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	if mock.UpdateFunc == nil {
		panic("boardRepoMock.UpdateFunc: method is nil but boardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Board
	}{Ctx: ctx, B: b}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, b)
}

func (mock *boardRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	B   *domain.Board
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *boardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("boardRepoMock.DeleteFunc: method is nil but boardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *boardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *boardRepoMock) ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.BoardSummary, error) {
	if mock.ListForUserFunc == nil {
		panic("boardRepoMock.ListForUserFunc: method is nil but boardRepo.ListForUser was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		UserID          uuid.UUID
		IncludeArchived bool
	}{Ctx: ctx, UserID: userID, IncludeArchived: includeArchived}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID, includeArchived)
}

func (mock *boardRepoMock) ListForUserCalls() []struct {
	Ctx             context.Context
	UserID          uuid.UUID
	IncludeArchived bool
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	GetMembershipFunc    func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Membership, error)
	CreateMembershipFunc func(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	UpdateMembershipFunc func(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	DeleteMembershipFunc func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error
	ListMembersFunc      func(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error)

	calls struct {
		GetMembership []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		CreateMembership []struct {
			Ctx context.Context
			M   *domain.Membership
		}
		UpdateMembership []struct {
			Ctx context.Context
			M   *domain.Membership
		}
		DeleteMembership []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		ListMembers []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
	}
	lockGetMembership    sync.RWMutex
	lockCreateMembership sync.RWMutex
	lockUpdateMembership sync.RWMutex
	lockDeleteMembership sync.RWMutex
	lockListMembers      sync.RWMutex
}

func (mock *membershipRepoMock) GetMembership(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Membership, error) {
	if mock.GetMembershipFunc == nil {
		panic("membershipRepoMock.GetMembershipFunc: method is nil but membershipRepo.GetMembership was just called")
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

func (mock *membershipRepoMock) GetMembershipCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockGetMembership.RLock()
	calls := mock.calls.GetMembership
	mock.lockGetMembership.RUnlock()
	return calls
}

func (mock *membershipRepoMock) CreateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	if mock.CreateMembershipFunc == nil {
		panic("membershipRepoMock.CreateMembershipFunc: method is nil but membershipRepo.CreateMembership was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Membership
	}{Ctx: ctx, M: m}
	mock.lockCreateMembership.Lock()
	mock.calls.CreateMembership = append(mock.calls.CreateMembership, callInfo)
	mock.lockCreateMembership.Unlock()
	return mock.CreateMembershipFunc(ctx, m)
}

func (mock *membershipRepoMock) CreateMembershipCalls() []struct {
	Ctx context.Context
	M   *domain.Membership
} {
	mock.lockCreateMembership.RLock()
	calls := mock.calls.CreateMembership
	mock.lockCreateMembership.RUnlock()
	return calls
}

func (mock *membershipRepoMock) UpdateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	if mock.UpdateMembershipFunc == nil {
		panic("membershipRepoMock.UpdateMembershipFunc: method is nil but membershipRepo.UpdateMembership was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Membership
	}{Ctx: ctx, M: m}
	mock.lockUpdateMembership.Lock()
	mock.calls.UpdateMembership = append(mock.calls.UpdateMembership, callInfo)
	mock.lockUpdateMembership.Unlock()
	return mock.UpdateMembershipFunc(ctx, m)
}

func (mock *membershipRepoMock) UpdateMembershipCalls() []struct {
	Ctx context.Context
	M   *domain.Membership
} {
	mock.lockUpdateMembership.RLock()
	calls := mock.calls.UpdateMembership
	mock.lockUpdateMembership.RUnlock()
	return calls
}

func (mock *membershipRepoMock) DeleteMembership(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error {
	if mock.DeleteMembershipFunc == nil {
		panic("membershipRepoMock.DeleteMembershipFunc: method is nil but membershipRepo.DeleteMembership was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockDeleteMembership.Lock()
	mock.calls.DeleteMembership = append(mock.calls.DeleteMembership, callInfo)
	mock.lockDeleteMembership.Unlock()
	return mock.DeleteMembershipFunc(ctx, boardID, userID)
}

func (mock *membershipRepoMock) DeleteMembershipCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockDeleteMembership.RLock()
	calls := mock.calls.DeleteMembership
	mock.lockDeleteMembership.RUnlock()
	return calls
}

func (mock *membershipRepoMock) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error) {
	if mock.ListMembersFunc == nil {
		panic("membershipRepoMock.ListMembersFunc: method is nil but membershipRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, boardID)
}

func (mock *membershipRepoMock) ListMembersCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}

var _ listCreator = &listCreatorMock{}

type listCreatorMock struct {
	CreateFunc func(ctx context.Context, l *domain.List) (*domain.List, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.List
		}
	}
	lockCreate sync.RWMutex
}

func (mock *listCreatorMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listCreatorMock.CreateFunc: method is nil but listCreator.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.List
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listCreatorMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.List
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ userFinder = &userFinderMock{}

type userFinderMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *userFinderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userFinderMock.GetByIDFunc: method is nil but userFinder.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userFinderMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userFinderMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userFinderMock.GetByEmailFunc: method is nil but userFinder.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userFinderMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

var _ accessGuard = &accessGuardMock{}

type accessGuardMock struct {
	AccessFunc func(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)

	calls struct {
		Access []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Board  *domain.Board
		}
	}
	lockAccess sync.RWMutex
}

func (mock *accessGuardMock) Access(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error) {
	if mock.AccessFunc == nil {
		panic("accessGuardMock.AccessFunc: method is nil but accessGuard.Access was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Board  *domain.Board
	}{Ctx: ctx, UserID: userID, Board: board}
	mock.lockAccess.Lock()
	mock.calls.Access = append(mock.calls.Access, callInfo)
	mock.lockAccess.Unlock()
	return mock.AccessFunc(ctx, userID, board)
}

func (mock *accessGuardMock) AccessCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Board  *domain.Board
} {
	mock.lockAccess.RLock()
	calls := mock.calls.Access
	mock.lockAccess.RUnlock()
	return calls
}

var _ activityRecorder = &activityRecorderMock{}

type activityRecorderMock struct {
	RecordFunc func(ctx context.Context, entry domain.ActivityLog) error

	calls struct {
		Record []struct {
			Ctx   context.Context
			Entry domain.ActivityLog
		}
	}
	lockRecord sync.RWMutex
}

func (mock *activityRecorderMock) Record(ctx context.Context, entry domain.ActivityLog) error {
	if mock.RecordFunc == nil {
		panic("activityRecorderMock.RecordFunc: method is nil but activityRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.ActivityLog
	}{Ctx: ctx, Entry: entry}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, entry)
}

func (mock *activityRecorderMock) RecordCalls() []struct {
	Ctx   context.Context
	Entry domain.ActivityLog
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
