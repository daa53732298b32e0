package distribution

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/journalmind/journalmind-backend/internal/adapter/chain"
)

var _ tokenClient = &tokenClientMock{}

type tokenClientMock struct {
	DistributorBalanceFunc  func(ctx context.Context) (*big.Int, error)
	TotalSupplyFunc         func(ctx context.Context) (*big.Int, error)
	TransferFunc            func(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
	DistributionHistoryFunc func(ctx context.Context) (*chain.DistributionHistory, error)

	calls struct {
		DistributorBalance []struct {
			Ctx context.Context
		}
		TotalSupply []struct {
			Ctx context.Context
		}
		Transfer []struct {
			Ctx    context.Context
			To     common.Address
			Amount *big.Int
		}
		DistributionHistory []struct {
			Ctx context.Context
		}
	}
	lockDistributorBalance  sync.RWMutex
	lockTotalSupply         sync.RWMutex
	lockTransfer            sync.RWMutex
	lockDistributionHistory sync.RWMutex
}

func (mock *tokenClientMock) DistributorBalance(ctx context.Context) (*big.Int, error) {
	if mock.DistributorBalanceFunc == nil {
		panic("tokenClientMock.DistributorBalanceFunc: method is nil but tokenClient.DistributorBalance was just called")
	}
	mock.lockDistributorBalance.Lock()
	mock.calls.DistributorBalance = append(mock.calls.DistributorBalance, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockDistributorBalance.Unlock()
	return mock.DistributorBalanceFunc(ctx)
}

func (mock *tokenClientMock) TotalSupply(ctx context.Context) (*big.Int, error) {
	if mock.TotalSupplyFunc == nil {
		panic("tokenClientMock.TotalSupplyFunc: method is nil but tokenClient.TotalSupply was just called")
	}
	mock.lockTotalSupply.Lock()
	mock.calls.TotalSupply = append(mock.calls.TotalSupply, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockTotalSupply.Unlock()
	return mock.TotalSupplyFunc(ctx)
}

func (mock *tokenClientMock) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	if mock.TransferFunc == nil {
		panic("tokenClientMock.TransferFunc: method is nil but tokenClient.Transfer was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		To     common.Address
		Amount *big.Int
	}{Ctx: ctx, To: to, Amount: amount}
	mock.lockTransfer.Lock()
	mock.calls.Transfer = append(mock.calls.Transfer, callInfo)
	mock.lockTransfer.Unlock()
	return mock.TransferFunc(ctx, to, amount)
}

func (mock *tokenClientMock) TransferCalls() []struct {
	Ctx    context.Context
	To     common.Address
	Amount *big.Int
} {
	mock.lockTransfer.RLock()
	calls := mock.calls.Transfer
	mock.lockTransfer.RUnlock()
	return calls
}

func (mock *tokenClientMock) DistributionHistory(ctx context.Context) (*chain.DistributionHistory, error) {
	if mock.DistributionHistoryFunc == nil {
		panic("tokenClientMock.DistributionHistoryFunc: method is nil but tokenClient.DistributionHistory was just called")
	}
	mock.lockDistributionHistory.Lock()
	mock.calls.DistributionHistory = append(mock.calls.DistributionHistory, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockDistributionHistory.Unlock()
	return mock.DistributionHistoryFunc(ctx)
}
