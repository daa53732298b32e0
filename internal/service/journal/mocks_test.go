package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/distribution"
	"github.com/journalmind/journalmind-backend/internal/service/pattern"
)

var (
	_ entryRepo           = &entryRepoMock{}
	_ settlementSubmitter = &settlementSubmitterMock{}
	_ patternRecorder     = &patternRecorderMock{}
	_ txManager           = &txManagerMock{}
)

type entryRepoMock struct {
	CreateFunc  func(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByIDFunc func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.JournalEntry
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.JournalEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.JournalEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, entryID)
}

func (mock *entryRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit, offset)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

type settlementSubmitterMock struct {
	SubmitForSettlementFunc func(ctx context.Context, entryID uuid.UUID) (*distribution.SubmitResult, error)

	calls struct {
		SubmitForSettlement []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockSubmitForSettlement sync.RWMutex
}

func (mock *settlementSubmitterMock) SubmitForSettlement(ctx context.Context, entryID uuid.UUID) (*distribution.SubmitResult, error) {
	if mock.SubmitForSettlementFunc == nil {
		panic("settlementSubmitterMock.SubmitForSettlementFunc: method is nil but settlementSubmitter.SubmitForSettlement was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockSubmitForSettlement.Lock()
	mock.calls.SubmitForSettlement = append(mock.calls.SubmitForSettlement, callInfo)
	mock.lockSubmitForSettlement.Unlock()
	return mock.SubmitForSettlementFunc(ctx, entryID)
}

func (mock *settlementSubmitterMock) SubmitForSettlementCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockSubmitForSettlement.RLock()
	calls := mock.calls.SubmitForSettlement
	mock.lockSubmitForSettlement.RUnlock()
	return calls
}

type patternRecorderMock struct {
	RecordFunc func(ctx context.Context, input pattern.RecordInput) (*domain.Pattern, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Input pattern.RecordInput
		}
	}
	lockRecord sync.RWMutex
}

func (mock *patternRecorderMock) Record(ctx context.Context, input pattern.RecordInput) (*domain.Pattern, error) {
	if mock.RecordFunc == nil {
		panic("patternRecorderMock.RecordFunc: method is nil but patternRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pattern.RecordInput
	}{Ctx: ctx, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *patternRecorderMock) RecordCalls() []struct {
	Ctx   context.Context
	Input pattern.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

// txManagerMock runs the callback directly, without a transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
