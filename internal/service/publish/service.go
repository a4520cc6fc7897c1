// Package publish connects the host's "sending to publish" lifecycle point to
// the change recorder.
package publish

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/approveit/internal/domain"
)

type changeRecorder interface {
	RecordChanges(ctx context.Context, previous, candidate *domain.Record, actor string, now time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Hook handles publish events. It resolves the acting user from the context
// and stamps every event with one clock reading.
type Hook struct {
	recorder changeRecorder
	tx       txManager
	clock    func() time.Time
	log      *slog.Logger
}

// NewHook creates a new publish Hook.
func NewHook(
	log *slog.Logger,
	recorder changeRecorder,
	tx txManager,
) *Hook {
	return &Hook{
		recorder: recorder,
		tx:       tx,
		clock:    func() time.Time { return time.Now().UTC() },
		log:      log.With("service", "publish"),
	}
}
