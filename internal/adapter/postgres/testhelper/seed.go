package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/approveit/internal/domain"
)

// NewRecordID returns a record id unique to the calling test, so tests sharing
// the container never see each other's rows.
func NewRecordID() string {
	return "rec-" + uuid.New().String()[:8]
}

// SeedChangeEntry inserts one history row directly, bypassing the repository.
func SeedChangeEntry(t *testing.T, pool *pgxpool.Pool, recordID string) domain.ChangeEntry {
	t.Helper()

	entry := domain.ChangeEntry{
		FieldID:       "seed-" + uuid.New().String()[:8],
		FieldAlias:    "seed",
		FieldTypeTag:  "text",
		RecordID:      recordID,
		Timestamp:     time.Now().UTC().Truncate(time.Microsecond),
		Actor:         "seeder",
		PreviousValue: "before",
		CurrentValue:  "after",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO approveit_change_history
		   (field_id, field_alias, field_type_tag, record_id, updated_at, updated_by, previous_value, current_value)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.FieldID, entry.FieldAlias, entry.FieldTypeTag, entry.RecordID,
		entry.Timestamp, entry.Actor, entry.PreviousValue, entry.CurrentValue,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChangeEntry insert: %v", err)
	}

	return entry
}

// ChangeEntries returns every history row of a record in insertion order.
func ChangeEntries(t *testing.T, pool *pgxpool.Pool, recordID string) []domain.ChangeEntry {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		`SELECT field_id, field_alias, field_type_tag, record_id, updated_at, updated_by, previous_value, current_value
		 FROM approveit_change_history
		 WHERE record_id = $1
		 ORDER BY id`,
		recordID,
	)
	if err != nil {
		t.Fatalf("testhelper: ChangeEntries query: %v", err)
	}
	defer rows.Close()

	var entries []domain.ChangeEntry
	for rows.Next() {
		var e domain.ChangeEntry
		if err := rows.Scan(
			&e.FieldID, &e.FieldAlias, &e.FieldTypeTag, &e.RecordID,
			&e.Timestamp, &e.Actor, &e.PreviousValue, &e.CurrentValue,
		); err != nil {
			t.Fatalf("testhelper: ChangeEntries scan: %v", err)
		}
		e.Timestamp = e.Timestamp.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: ChangeEntries rows: %v", err)
	}

	return entries
}
