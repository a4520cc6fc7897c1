package publish

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/approveit/internal/domain"
)

var _ changeRecorder = &changeRecorderMock{}

type changeRecorderMock struct {
	RecordChangesFunc func(ctx context.Context, previous, candidate *domain.Record, actor string, now time.Time) (int, error)

	calls struct {
		RecordChanges []struct {
			Ctx       context.Context
			Previous  *domain.Record
			Candidate *domain.Record
			Actor     string
			Now       time.Time
		}
	}
	lockRecordChanges sync.RWMutex
}

func (mock *changeRecorderMock) RecordChanges(ctx context.Context, previous, candidate *domain.Record, actor string, now time.Time) (int, error) {
	if mock.RecordChangesFunc == nil {
		panic("changeRecorderMock.RecordChangesFunc: method is nil but changeRecorder.RecordChanges was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Previous  *domain.Record
		Candidate *domain.Record
		Actor     string
		Now       time.Time
	}{Ctx: ctx, Previous: previous, Candidate: candidate, Actor: actor, Now: now}
	mock.lockRecordChanges.Lock()
	mock.calls.RecordChanges = append(mock.calls.RecordChanges, callInfo)
	mock.lockRecordChanges.Unlock()
	return mock.RecordChangesFunc(ctx, previous, candidate, actor, now)
}

func (mock *changeRecorderMock) RecordChangesCalls() []struct {
	Ctx       context.Context
	Previous  *domain.Record
	Candidate *domain.Record
	Actor     string
	Now       time.Time
} {
	mock.lockRecordChanges.RLock()
	calls := mock.calls.RecordChanges
	mock.lockRecordChanges.RUnlock()
	return calls
}
