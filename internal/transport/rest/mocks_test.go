package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/distribution"
	"github.com/journalmind/journalmind-backend/internal/service/journal"
	"github.com/journalmind/journalmind-backend/internal/service/pattern"
)

var (
	_ journalService      = &journalServiceMock{}
	_ patternService      = &patternServiceMock{}
	_ distributionService = &distributionServiceMock{}
	_ dbPinger            = &dbPingerMock{}
)

type journalServiceMock struct {
	CreateEntryFunc func(ctx context.Context, input journal.CreateEntryInput) (*journal.CreateEntryResult, error)
	GetEntryFunc    func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListEntriesFunc func(ctx context.Context, input journal.ListInput) ([]*domain.JournalEntry, int, error)

	calls struct {
		CreateEntry []struct {
			Ctx   context.Context
			Input journal.CreateEntryInput
		}
	}
	lockCreateEntry sync.RWMutex
}

func (mock *journalServiceMock) CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*journal.CreateEntryResult, error) {
	if mock.CreateEntryFunc == nil {
		panic("journalServiceMock.CreateEntryFunc: method is nil but journalService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *journalServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input journal.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("journalServiceMock.GetEntryFunc: method is nil but journalService.GetEntry was just called")
	}
	return mock.GetEntryFunc(ctx, entryID)
}

func (mock *journalServiceMock) ListEntries(ctx context.Context, input journal.ListInput) ([]*domain.JournalEntry, int, error) {
	if mock.ListEntriesFunc == nil {
		panic("journalServiceMock.ListEntriesFunc: method is nil but journalService.ListEntries was just called")
	}
	return mock.ListEntriesFunc(ctx, input)
}

type patternServiceMock struct {
	RecordFunc      func(ctx context.Context, input pattern.RecordInput) (*domain.Pattern, error)
	FindSimilarFunc func(ctx context.Context, input pattern.FindSimilarInput) ([]domain.PatternMatch, error)
}

func (mock *patternServiceMock) Record(ctx context.Context, input pattern.RecordInput) (*domain.Pattern, error) {
	if mock.RecordFunc == nil {
		panic("patternServiceMock.RecordFunc: method is nil but patternService.Record was just called")
	}
	return mock.RecordFunc(ctx, input)
}

func (mock *patternServiceMock) FindSimilar(ctx context.Context, input pattern.FindSimilarInput) ([]domain.PatternMatch, error) {
	if mock.FindSimilarFunc == nil {
		panic("patternServiceMock.FindSimilarFunc: method is nil but patternService.FindSimilar was just called")
	}
	return mock.FindSimilarFunc(ctx, input)
}

type distributionServiceMock struct {
	SubmitForSettlementFunc func(ctx context.Context, entryID uuid.UUID) (*distribution.SubmitResult, error)
	ApproveFunc             func(ctx context.Context, input distribution.ApproveInput) (*distribution.ApproveResult, error)
	DenyFunc                func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	GetStatsFunc            func(ctx context.Context) (*distribution.Stats, error)

	calls struct {
		Approve []struct {
			Ctx   context.Context
			Input distribution.ApproveInput
		}
	}
	lockApprove sync.RWMutex
}

func (mock *distributionServiceMock) SubmitForSettlement(ctx context.Context, entryID uuid.UUID) (*distribution.SubmitResult, error) {
	if mock.SubmitForSettlementFunc == nil {
		panic("distributionServiceMock.SubmitForSettlementFunc: method is nil but distributionService.SubmitForSettlement was just called")
	}
	return mock.SubmitForSettlementFunc(ctx, entryID)
}

func (mock *distributionServiceMock) Approve(ctx context.Context, input distribution.ApproveInput) (*distribution.ApproveResult, error) {
	if mock.ApproveFunc == nil {
		panic("distributionServiceMock.ApproveFunc: method is nil but distributionService.Approve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input distribution.ApproveInput
	}{Ctx: ctx, Input: input}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, input)
}

func (mock *distributionServiceMock) ApproveCalls() []struct {
	Ctx   context.Context
	Input distribution.ApproveInput
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *distributionServiceMock) Deny(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.DenyFunc == nil {
		panic("distributionServiceMock.DenyFunc: method is nil but distributionService.Deny was just called")
	}
	return mock.DenyFunc(ctx, entryID)
}

func (mock *distributionServiceMock) GetStats(ctx context.Context) (*distribution.Stats, error) {
	if mock.GetStatsFunc == nil {
		panic("distributionServiceMock.GetStatsFunc: method is nil but distributionService.GetStats was just called")
	}
	return mock.GetStatsFunc(ctx)
}

type dbPingerMock struct {
	PingFunc func(ctx context.Context) error
}

func (mock *dbPingerMock) Ping(ctx context.Context) error {
	if mock.PingFunc == nil {
		return nil
	}
	return mock.PingFunc(ctx)
}
