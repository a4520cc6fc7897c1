package history

import (
	"context"
	"sync"

	"github.com/heartmarshall/approveit/internal/domain"
)

var _ changeStore = &changeStoreMock{}

type changeStoreMock struct {
	AppendBatchFunc func(ctx context.Context, entries []domain.ChangeEntry) error

	calls struct {
		AppendBatch []struct {
			Ctx     context.Context
			Entries []domain.ChangeEntry
		}
	}
	lockAppendBatch sync.RWMutex
}

func (mock *changeStoreMock) AppendBatch(ctx context.Context, entries []domain.ChangeEntry) error {
	if mock.AppendBatchFunc == nil {
		panic("changeStoreMock.AppendBatchFunc: method is nil but changeStore.AppendBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.ChangeEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockAppendBatch.Lock()
	mock.calls.AppendBatch = append(mock.calls.AppendBatch, callInfo)
	mock.lockAppendBatch.Unlock()
	return mock.AppendBatchFunc(ctx, entries)
}

func (mock *changeStoreMock) AppendBatchCalls() []struct {
	Ctx     context.Context
	Entries []domain.ChangeEntry
} {
	mock.lockAppendBatch.RLock()
	calls := mock.calls.AppendBatch
	mock.lockAppendBatch.RUnlock()
	return calls
}
