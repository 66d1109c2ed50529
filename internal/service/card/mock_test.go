package card

import (
	"context"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ boardGetter = &boardGetterMock{}

type boardGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
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
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boardGetterMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ listGetter = &listGetterMock{}

type listGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.List, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *listGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listGetterMock.GetByIDFunc: method is nil but listGetter.GetByID was just called")
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

func (mock *listGetterMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListFunc           func(ctx context.Context, f domain.CardFilter) ([]domain.Card, error)
	LastPositionFunc   func(ctx context.Context, listID uuid.UUID) (*domain.Position, error)
	PositionAfterFunc  func(ctx context.Context, listID uuid.UUID, pos domain.Position) (*domain.Position, error)
	CreateFunc         func(ctx context.Context, c *domain.Card) (*domain.Card, error)
	UpdateFunc         func(ctx context.Context, c *domain.Card) (*domain.Card, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	AddAssigneeFunc    func(ctx context.Context, cardID uuid.UUID, userID uuid.UUID) error
	RemoveAssigneeFunc func(ctx context.Context, cardID uuid.UUID, userID uuid.UUID) error
	SetLabelsFunc      func(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.CardFilter
		}
		LastPosition []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		PositionAfter []struct {
			Ctx    context.Context
			ListID uuid.UUID
			Pos    domain.Position
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Card
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Card
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		AddAssignee []struct {
			Ctx    context.Context
			CardID uuid.UUID
			UserID uuid.UUID
		}
		RemoveAssignee []struct {
			Ctx    context.Context
			CardID uuid.UUID
			UserID uuid.UUID
		}
		SetLabels []struct {
			Ctx      context.Context
			CardID   uuid.UUID
			LabelIDs []uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockLastPosition   sync.RWMutex
	lockPositionAfter  sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockAddAssignee    sync.RWMutex
	lockRemoveAssignee sync.RWMutex
	lockSetLabels      sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
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

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) List(ctx context.Context, f domain.CardFilter) ([]domain.Card, error) {
	if mock.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CardFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *cardRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.CardFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cardRepoMock) LastPosition(ctx context.Context, listID uuid.UUID) (*domain.Position, error) {
	if mock.LastPositionFunc == nil {
		panic("cardRepoMock.LastPositionFunc: method is nil but cardRepo.LastPosition was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockLastPosition.Lock()
	mock.calls.LastPosition = append(mock.calls.LastPosition, callInfo)
	mock.lockLastPosition.Unlock()
	return mock.LastPositionFunc(ctx, listID)
}

func (mock *cardRepoMock) LastPositionCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockLastPosition.RLock()
	calls := mock.calls.LastPosition
	mock.lockLastPosition.RUnlock()
	return calls
}

func (mock *cardRepoMock) PositionAfter(ctx context.Context, listID uuid.UUID, pos domain.Position) (*domain.Position, error) {
	if mock.PositionAfterFunc == nil {
		panic("cardRepoMock.PositionAfterFunc: method is nil but cardRepo.PositionAfter was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		Pos    domain.Position
	}{Ctx: ctx, ListID: listID, Pos: pos}
	mock.lockPositionAfter.Lock()
	mock.calls.PositionAfter = append(mock.calls.PositionAfter, callInfo)
	mock.lockPositionAfter.Unlock()
	return mock.PositionAfterFunc(ctx, listID, pos)
}

func (mock *cardRepoMock) PositionAfterCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	Pos    domain.Position
} {
	mock.lockPositionAfter.RLock()
	calls := mock.calls.PositionAfter
	mock.lockPositionAfter.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Card
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Card
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Card
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
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

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) AddAssignee(ctx context.Context, cardID uuid.UUID, userID uuid.UUID) error {
	if mock.AddAssigneeFunc == nil {
		panic("cardRepoMock.AddAssigneeFunc: method is nil but cardRepo.AddAssignee was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, CardID: cardID, UserID: userID}
	mock.lockAddAssignee.Lock()
	mock.calls.AddAssignee = append(mock.calls.AddAssignee, callInfo)
	mock.lockAddAssignee.Unlock()
	return mock.AddAssigneeFunc(ctx, cardID, userID)
}

func (mock *cardRepoMock) AddAssigneeCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockAddAssignee.RLock()
	calls := mock.calls.AddAssignee
	mock.lockAddAssignee.RUnlock()
	return calls
}

func (mock *cardRepoMock) RemoveAssignee(ctx context.Context, cardID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveAssigneeFunc == nil {
		panic("cardRepoMock.RemoveAssigneeFunc: method is nil but cardRepo.RemoveAssignee was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, CardID: cardID, UserID: userID}
	mock.lockRemoveAssignee.Lock()
	mock.calls.RemoveAssignee = append(mock.calls.RemoveAssignee, callInfo)
	mock.lockRemoveAssignee.Unlock()
	return mock.RemoveAssigneeFunc(ctx, cardID, userID)
}

func (mock *cardRepoMock) RemoveAssigneeCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockRemoveAssignee.RLock()
	calls := mock.calls.RemoveAssignee
	mock.lockRemoveAssignee.RUnlock()
	return calls
}

func (mock *cardRepoMock) SetLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error {
	if mock.SetLabelsFunc == nil {
		panic("cardRepoMock.SetLabelsFunc: method is nil but cardRepo.SetLabels was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CardID   uuid.UUID
		LabelIDs []uuid.UUID
	}{Ctx: ctx, CardID: cardID, LabelIDs: labelIDs}
	mock.lockSetLabels.Lock()
	mock.calls.SetLabels = append(mock.calls.SetLabels, callInfo)
	mock.lockSetLabels.Unlock()
	return mock.SetLabelsFunc(ctx, cardID, labelIDs)
}

func (mock *cardRepoMock) SetLabelsCalls() []struct {
	Ctx      context.Context
	CardID   uuid.UUID
	LabelIDs []uuid.UUID
} {
	mock.lockSetLabels.RLock()
	calls := mock.calls.SetLabels
	mock.lockSetLabels.RUnlock()
	return calls
}

var _ labelLister = &labelListerMock{}

type labelListerMock struct {
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)

	calls struct {
		ListByBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
	}
	lockListByBoard sync.RWMutex
}

func (mock *labelListerMock) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error) {
	if mock.ListByBoardFunc == nil {
		panic("labelListerMock.ListByBoardFunc: method is nil but labelLister.ListByBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID)
}

func (mock *labelListerMock) ListByBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListByBoard.RLock()
	calls := mock.calls.ListByBoard
	mock.lockListByBoard.RUnlock()
	return calls
}

var _ checklistRepo = &checklistRepoMock{}

type checklistRepoMock struct {
	ListByCardFunc func(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	CreateFunc     func(ctx context.Context, c *domain.Checklist) (*domain.Checklist, error)
	CreateItemFunc func(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error)

	calls struct {
		ListByCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Checklist
		}
		CreateItem []struct {
			Ctx context.Context
			It  *domain.ChecklistItem
		}
	}
	lockListByCard sync.RWMutex
	lockCreate     sync.RWMutex
	lockCreateItem sync.RWMutex
}

func (mock *checklistRepoMock) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error) {
	if mock.ListByCardFunc == nil {
		panic("checklistRepoMock.ListByCardFunc: method is nil but checklistRepo.ListByCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockListByCard.Lock()
	mock.calls.ListByCard = append(mock.calls.ListByCard, callInfo)
	mock.lockListByCard.Unlock()
	return mock.ListByCardFunc(ctx, cardID)
}

func (mock *checklistRepoMock) ListByCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockListByCard.RLock()
	calls := mock.calls.ListByCard
	mock.lockListByCard.RUnlock()
	return calls
}

func (mock *checklistRepoMock) Create(ctx context.Context, c *domain.Checklist) (*domain.Checklist, error) {
	if mock.CreateFunc == nil {
		panic("checklistRepoMock.CreateFunc: method is nil but checklistRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Checklist
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *checklistRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Checklist
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *checklistRepoMock) CreateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error) {
	if mock.CreateItemFunc == nil {
		panic("checklistRepoMock.CreateItemFunc: method is nil but checklistRepo.CreateItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.ChecklistItem
	}{Ctx: ctx, It: it}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, it)
}

func (mock *checklistRepoMock) CreateItemCalls() []struct {
	Ctx context.Context
	It  *domain.ChecklistItem
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

var _ accessGuard = &accessGuardMock{}

type accessGuardMock struct {
	RoleFunc   func(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)
	AccessFunc func(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)

	calls struct {
		Role []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Board  *domain.Board
		}
		Access []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Board  *domain.Board
		}
	}
	lockRole   sync.RWMutex
	lockAccess sync.RWMutex
}

func (mock *accessGuardMock) Role(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error) {
	if mock.RoleFunc == nil {
		panic("accessGuardMock.RoleFunc: method is nil but accessGuard.Role was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Board  *domain.Board
	}{Ctx: ctx, UserID: userID, Board: board}
	mock.lockRole.Lock()
	mock.calls.Role = append(mock.calls.Role, callInfo)
	mock.lockRole.Unlock()
	return mock.RoleFunc(ctx, userID, board)
}

func (mock *accessGuardMock) RoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Board  *domain.Board
} {
	mock.lockRole.RLock()
	calls := mock.calls.Role
	mock.lockRole.RUnlock()
	return calls
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
