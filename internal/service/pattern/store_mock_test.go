package pattern

import (
	"context"
	"sync"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

var _ patternStore = &patternStoreMock{}

type patternStoreMock struct {
	InsertFunc func(ctx context.Context, p *domain.Pattern) (*domain.Pattern, error)
	TopKFunc   func(ctx context.Context, queryVec []float32, k int, minScore float64) ([]domain.PatternMatch, error)
	CountFunc  func(ctx context.Context) (int, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			P   *domain.Pattern
		}
		TopK []struct {
			Ctx      context.Context
			QueryVec []float32
			K        int
			MinScore float64
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockInsert sync.RWMutex
	lockTopK   sync.RWMutex
	lockCount  sync.RWMutex
}

func (mock *patternStoreMock) Insert(ctx context.Context, p *domain.Pattern) (*domain.Pattern, error) {
	if mock.InsertFunc == nil {
		panic("patternStoreMock.InsertFunc: method is nil but patternStore.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Pattern
	}{Ctx: ctx, P: p}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, p)
}

func (mock *patternStoreMock) InsertCalls() []struct {
	Ctx context.Context
	P   *domain.Pattern
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *patternStoreMock) TopK(ctx context.Context, queryVec []float32, k int, minScore float64) ([]domain.PatternMatch, error) {
	if mock.TopKFunc == nil {
		panic("patternStoreMock.TopKFunc: method is nil but patternStore.TopK was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		QueryVec []float32
		K        int
		MinScore float64
	}{Ctx: ctx, QueryVec: queryVec, K: k, MinScore: minScore}
	mock.lockTopK.Lock()
	mock.calls.TopK = append(mock.calls.TopK, callInfo)
	mock.lockTopK.Unlock()
	return mock.TopKFunc(ctx, queryVec, k, minScore)
}

func (mock *patternStoreMock) TopKCalls() []struct {
	Ctx      context.Context
	QueryVec []float32
	K        int
	MinScore float64
} {
	mock.lockTopK.RLock()
	calls := mock.calls.TopK
	mock.lockTopK.RUnlock()
	return calls
}

func (mock *patternStoreMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("patternStoreMock.CountFunc: method is nil but patternStore.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}
