// Package history records field-level changes of a record at publish time as
// append-only audit entries.
package history

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/approveit/internal/domain"
)

// changeStore appends a batch of entries atomically: after AppendBatch
// returns, either all entries are durable or none are.
type changeStore interface {
	AppendBatch(ctx context.Context, entries []domain.ChangeEntry) error
}

// Service is the change recorder. It holds no mutable state, so concurrent
// invocations are independent.
type Service struct {
	store changeStore
	log   *slog.Logger
}

// NewService creates a new change recorder.
func NewService(log *slog.Logger, store changeStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "history"),
	}
}
