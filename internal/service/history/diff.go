package history

import (
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/approveit/internal/domain"
)

// Diff returns one entry per candidate field whose serialized value differs
// from the same field in previous. Fields absent from previous, or null there,
// yield nothing. Every entry carries the candidate's record id, actor and now.
// Entries are ordered by field id; a repeated candidate field id is diffed once.
func Diff(previous, candidate *domain.Record, actor string, now time.Time) []domain.ChangeEntry {
	if !candidate.HasFields() || !previous.HasFields() {
		return nil
	}

	prev := previous.FieldIndex()
	seen := make(map[string]struct{}, len(candidate.Fields))

	var entries []domain.ChangeEntry
	for _, f := range candidate.Fields {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}

		p, ok := prev[f.ID]
		if !ok {
			continue
		}
		prevValue, ok := domain.SerializeValue(p.Value)
		if !ok {
			continue
		}
		currValue, _ := domain.SerializeValue(f.Value)
		if prevValue == currValue {
			continue
		}

		entries = append(entries, domain.ChangeEntry{
			FieldID:       f.ID,
			FieldAlias:    f.Alias,
			FieldTypeTag:  f.TypeTag,
			RecordID:      candidate.ID,
			Timestamp:     now,
			Actor:         actor,
			PreviousValue: prevValue,
			CurrentValue:  currValue,
		})
	}

	slices.SortStableFunc(entries, func(a, b domain.ChangeEntry) int {
		return strings.Compare(a.FieldID, b.FieldID)
	})

	return entries
}
