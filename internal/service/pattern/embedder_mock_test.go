package pattern

import (
	"context"
	"sync"
)

var _ embedder = &embedderMock{}

type embedderMock struct {
	EmbedFunc      func(ctx context.Context, texts []string) ([][]float32, error)
	DimensionsFunc func() int

	calls struct {
		Embed []struct {
			Ctx   context.Context
			Texts []string
		}
		Dimensions []struct{}
	}
	lockEmbed      sync.RWMutex
	lockDimensions sync.RWMutex
}

func (mock *embedderMock) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if mock.EmbedFunc == nil {
		panic("embedderMock.EmbedFunc: method is nil but embedder.Embed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Texts []string
	}{Ctx: ctx, Texts: texts}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, texts)
}

func (mock *embedderMock) EmbedCalls() []struct {
	Ctx   context.Context
	Texts []string
} {
	mock.lockEmbed.RLock()
	calls := mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}

func (mock *embedderMock) Dimensions() int {
	if mock.DimensionsFunc == nil {
		panic("embedderMock.DimensionsFunc: method is nil but embedder.Dimensions was just called")
	}
	mock.lockDimensions.Lock()
	mock.calls.Dimensions = append(mock.calls.Dimensions, struct{}{})
	mock.lockDimensions.Unlock()
	return mock.DimensionsFunc()
}
