package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/approveit/internal/domain"
	"github.com/heartmarshall/approveit/internal/metrics"
)

// RecordChanges diffs candidate against previous and appends one entry per
// changed field in a single atomic batch. It returns the number of entries
// appended.
//
// An empty candidate is a no-op and never touches actor or store. A blank
// actor fails with domain.ErrActorResolution before any diffing. An entry
// holding text the store cannot keep (NUL bytes, invalid UTF-8) fails the
// whole batch with a *domain.ValidationError before the append. A failed
// append fails with domain.ErrPersistence and leaves nothing visible.
// Calling twice with the same input appends two identical batches.
func (s *Service) RecordChanges(ctx context.Context, previous, candidate *domain.Record, actor string, now time.Time) (int, error) {
	if !candidate.HasFields() {
		metrics.HistoryInvocations.WithLabelValues(metrics.OutcomeNoop).Inc()
		return 0, nil
	}

	if strings.TrimSpace(actor) == "" {
		metrics.HistoryInvocations.WithLabelValues(metrics.OutcomeActorError).Inc()
		return 0, fmt.Errorf("%w: no acting user for record %s", domain.ErrActorResolution, candidate.ID)
	}

	entries := Diff(previous, candidate, actor, now)
	if len(entries) == 0 {
		metrics.HistoryInvocations.WithLabelValues(metrics.OutcomeNoop).Inc()
		s.log.DebugContext(ctx, "no field changes",
			slog.String("record_id", candidate.ID),
			slog.Bool("has_previous", previous != nil),
		)
		return 0, nil
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			metrics.HistoryInvocations.WithLabelValues(metrics.OutcomeValidationError).Inc()
			return 0, fmt.Errorf("record %s: %w", candidate.ID, err)
		}
	}

	if err := s.store.AppendBatch(ctx, entries); err != nil {
		metrics.HistoryInvocations.WithLabelValues(metrics.OutcomePersistenceError).Inc()
		s.log.ErrorContext(ctx, "append change batch failed",
			slog.String("record_id", candidate.ID),
			slog.Int("entries", len(entries)),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("%w: append change batch for record %s: %w", domain.ErrPersistence, candidate.ID, err)
	}

	metrics.HistoryInvocations.WithLabelValues(metrics.OutcomeRecorded).Inc()
	metrics.HistoryEntriesAppended.Add(float64(len(entries)))

	s.log.DebugContext(ctx, "field changes recorded",
		slog.String("record_id", candidate.ID),
		slog.String("actor", actor),
		slog.Int("entries", len(entries)),
	)

	return len(entries), nil
}
