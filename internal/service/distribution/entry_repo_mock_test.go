package distribution

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc         func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	GetPreviousFunc     func(ctx context.Context, userID uuid.UUID, before time.Time) (*domain.JournalEntry, error)
	SetRewardAmountFunc func(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount) error
	SettleApprovedFunc  func(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount, distributedAt time.Time) error
	SettleDeniedFunc    func(ctx context.Context, entryID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetPrevious []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Before time.Time
		}
		SetRewardAmount []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			Amount  *domain.TokenAmount
		}
		SettleApproved []struct {
			Ctx           context.Context
			EntryID       uuid.UUID
			Amount        *domain.TokenAmount
			DistributedAt time.Time
		}
		SettleDenied []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockGetPrevious     sync.RWMutex
	lockSetRewardAmount sync.RWMutex
	lockSettleApproved  sync.RWMutex
	lockSettleDenied    sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, entryID)
}

func (mock *entryRepoMock) GetPrevious(ctx context.Context, userID uuid.UUID, before time.Time) (*domain.JournalEntry, error) {
	if mock.GetPreviousFunc == nil {
		panic("entryRepoMock.GetPreviousFunc: method is nil but entryRepo.GetPrevious was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Before time.Time
	}{Ctx: ctx, UserID: userID, Before: before}
	mock.lockGetPrevious.Lock()
	mock.calls.GetPrevious = append(mock.calls.GetPrevious, callInfo)
	mock.lockGetPrevious.Unlock()
	return mock.GetPreviousFunc(ctx, userID, before)
}

func (mock *entryRepoMock) SetRewardAmount(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount) error {
	if mock.SetRewardAmountFunc == nil {
		panic("entryRepoMock.SetRewardAmountFunc: method is nil but entryRepo.SetRewardAmount was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
		Amount  *domain.TokenAmount
	}{Ctx: ctx, EntryID: entryID, Amount: amount}
	mock.lockSetRewardAmount.Lock()
	mock.calls.SetRewardAmount = append(mock.calls.SetRewardAmount, callInfo)
	mock.lockSetRewardAmount.Unlock()
	return mock.SetRewardAmountFunc(ctx, entryID, amount)
}

func (mock *entryRepoMock) SetRewardAmountCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	Amount  *domain.TokenAmount
} {
	mock.lockSetRewardAmount.RLock()
	calls := mock.calls.SetRewardAmount
	mock.lockSetRewardAmount.RUnlock()
	return calls
}

func (mock *entryRepoMock) SettleApproved(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount, distributedAt time.Time) error {
	if mock.SettleApprovedFunc == nil {
		panic("entryRepoMock.SettleApprovedFunc: method is nil but entryRepo.SettleApproved was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		EntryID       uuid.UUID
		Amount        *domain.TokenAmount
		DistributedAt time.Time
	}{Ctx: ctx, EntryID: entryID, Amount: amount, DistributedAt: distributedAt}
	mock.lockSettleApproved.Lock()
	mock.calls.SettleApproved = append(mock.calls.SettleApproved, callInfo)
	mock.lockSettleApproved.Unlock()
	return mock.SettleApprovedFunc(ctx, entryID, amount, distributedAt)
}

func (mock *entryRepoMock) SettleApprovedCalls() []struct {
	Ctx           context.Context
	EntryID       uuid.UUID
	Amount        *domain.TokenAmount
	DistributedAt time.Time
} {
	mock.lockSettleApproved.RLock()
	calls := mock.calls.SettleApproved
	mock.lockSettleApproved.RUnlock()
	return calls
}

func (mock *entryRepoMock) SettleDenied(ctx context.Context, entryID uuid.UUID) error {
	if mock.SettleDeniedFunc == nil {
		panic("entryRepoMock.SettleDeniedFunc: method is nil but entryRepo.SettleDenied was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockSettleDenied.Lock()
	mock.calls.SettleDenied = append(mock.calls.SettleDenied, callInfo)
	mock.lockSettleDenied.Unlock()
	return mock.SettleDeniedFunc(ctx, entryID)
}

func (mock *entryRepoMock) SettleDeniedCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockSettleDenied.RLock()
	calls := mock.calls.SettleDenied
	mock.lockSettleDenied.RUnlock()
	return calls
}
