package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/approveit/internal/domain"
	"github.com/heartmarshall/approveit/pkg/ctxutil"
)

// SendingToPublish records the field changes of ev inside one transaction.
// An event without candidate fields is acknowledged without resolving the
// actor or touching storage.
func (h *Hook) SendingToPublish(ctx context.Context, ev Event) (Result, error) {
	if err := ev.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{RecordID: ev.RecordID}

	if !ev.Candidate.HasFields() {
		h.log.DebugContext(ctx, "publish event without fields", slog.String("record_id", ev.RecordID))
		return res, nil
	}

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return Result{}, fmt.Errorf("%w: no authenticated user for record %s", domain.ErrActorResolution, ev.RecordID)
	}

	now := h.clock()

	err := h.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := h.recorder.RecordChanges(ctx, ev.Previous, ev.Candidate, actor, now)
		if err != nil {
			return err
		}
		res.Appended = n
		return nil
	})
	if err != nil {
		// Begin and commit failures never pass through the recorder.
		if !errors.Is(err, domain.ErrPersistence) && !errors.Is(err, domain.ErrActorResolution) && !errors.Is(err, domain.ErrValidation) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return Result{}, fmt.Errorf("record changes: %w", err)
	}

	h.log.InfoContext(ctx, "publish event recorded",
		slog.String("record_id", ev.RecordID),
		slog.String("actor", actor),
		slog.Int("appended", res.Appended),
	)

	return res, nil
}
