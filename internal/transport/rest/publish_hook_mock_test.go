package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/approveit/internal/service/publish"
)

var _ publishHook = &publishHookMock{}

type publishHookMock struct {
	SendingToPublishFunc func(ctx context.Context, ev publish.Event) (publish.Result, error)

	calls struct {
		SendingToPublish []struct {
			Ctx context.Context
			Ev  publish.Event
		}
	}
	lockSendingToPublish sync.RWMutex
}

func (mock *publishHookMock) SendingToPublish(ctx context.Context, ev publish.Event) (publish.Result, error) {
	if mock.SendingToPublishFunc == nil {
		panic("publishHookMock.SendingToPublishFunc: method is nil but publishHook.SendingToPublish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  publish.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockSendingToPublish.Lock()
	mock.calls.SendingToPublish = append(mock.calls.SendingToPublish, callInfo)
	mock.lockSendingToPublish.Unlock()
	return mock.SendingToPublishFunc(ctx, ev)
}

func (mock *publishHookMock) SendingToPublishCalls() []struct {
	Ctx context.Context
	Ev  publish.Event
} {
	mock.lockSendingToPublish.RLock()
	calls := mock.calls.SendingToPublish
	mock.lockSendingToPublish.RUnlock()
	return calls
}
