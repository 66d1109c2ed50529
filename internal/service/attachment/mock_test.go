package attachment

import (
	"context"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/google/uuid"
	"io"
	"sync"
	"time"
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

var _ cardGetter = &cardGetterMock{}

type cardGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *cardGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardGetterMock.GetByIDFunc: method is nil but cardGetter.GetByID was just called")
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

func (mock *cardGetterMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ attachmentRepo = &attachmentRepoMock{}

type attachmentRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByCardFunc func(ctx context.Context, cardID uuid.UUID) ([]domain.Attachment, error)
	CreateFunc     func(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Attachment
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByCard sync.RWMutex
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *attachmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if mock.GetByIDFunc == nil {
		panic("attachmentRepoMock.GetByIDFunc: method is nil but attachmentRepo.GetByID was just called")
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

func (mock *attachmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *attachmentRepoMock) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Attachment, error) {
	if mock.ListByCardFunc == nil {
		panic("attachmentRepoMock.ListByCardFunc: method is nil but attachmentRepo.ListByCard was just called")
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

func (mock *attachmentRepoMock) ListByCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockListByCard.RLock()
	calls := mock.calls.ListByCard
	mock.lockListByCard.RUnlock()
	return calls
}

func (mock *attachmentRepoMock) Create(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	if mock.CreateFunc == nil {
		panic("attachmentRepoMock.CreateFunc: method is nil but attachmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Attachment
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *attachmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Attachment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *attachmentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("attachmentRepoMock.DeleteFunc: method is nil but attachmentRepo.Delete was just called")
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

func (mock *attachmentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc        func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	RemoveFunc     func(ctx context.Context, key string) error
	PresignGetFunc func(ctx context.Context, key string, filename string, ttl time.Duration) (string, error)

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			R           io.Reader
			Size        int64
			ContentType string
		}
		Remove []struct {
			Ctx context.Context
			Key string
		}
		PresignGet []struct {
			Ctx      context.Context
			Key      string
			Filename string
			Ttl      time.Duration
		}
	}
	lockPut        sync.RWMutex
	lockRemove     sync.RWMutex
	lockPresignGet sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		R           io.Reader
		Size        int64
		ContentType string
	}{Ctx: ctx, Key: key, R: r, Size: size, ContentType: contentType}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, r, size, contentType)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	R           io.Reader
	Size        int64
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *blobStoreMock) Remove(ctx context.Context, key string) error {
	if mock.RemoveFunc == nil {
		panic("blobStoreMock.RemoveFunc: method is nil but blobStore.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, key)
}

func (mock *blobStoreMock) RemoveCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *blobStoreMock) PresignGet(ctx context.Context, key string, filename string, ttl time.Duration) (string, error) {
	if mock.PresignGetFunc == nil {
		panic("blobStoreMock.PresignGetFunc: method is nil but blobStore.PresignGet was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Key      string
		Filename string
		Ttl      time.Duration
	}{Ctx: ctx, Key: key, Filename: filename, Ttl: ttl}
	mock.lockPresignGet.Lock()
	mock.calls.PresignGet = append(mock.calls.PresignGet, callInfo)
	mock.lockPresignGet.Unlock()
	return mock.PresignGetFunc(ctx, key, filename, ttl)
}

func (mock *blobStoreMock) PresignGetCalls() []struct {
	Ctx      context.Context
	Key      string
	Filename string
	Ttl      time.Duration
} {
	mock.lockPresignGet.RLock()
	calls := mock.calls.PresignGet
	mock.lockPresignGet.RUnlock()
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
