// Package history implements the change history store using PostgreSQL.
// Rows are append-only: the repository never updates or deletes them.
package history

import (
	"context"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/approveit/internal/adapter/postgres"
	"github.com/heartmarshall/approveit/internal/domain"
)

const tableName = "approveit_change_history"

var insertColumns = []string{
	"field_id",
	"field_alias",
	"field_type_tag",
	"record_id",
	"updated_at",
	"updated_by",
	"previous_value",
	"current_value",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// insertChunkRows bounds one INSERT well under the 65535 bind parameter limit
// of the PostgreSQL extended protocol.
const insertChunkRows = 1000

// Repo provides change history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// AppendBatch inserts all entries so that either every row becomes visible or
// none does. Batches up to insertChunkRows go out as one multi-row INSERT;
// larger ones are split into several INSERTs inside one transaction. It runs
// on the transaction carried by ctx when there is one. An empty batch is a
// no-op.
func (r *Repo) AppendBatch(ctx context.Context, entries []domain.ChangeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if len(entries) <= insertChunkRows {
		return r.insert(ctx, entries)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		for chunk := range slices.Chunk(entries, insertChunkRows) {
			if err := r.insert(ctx, chunk); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) insert(ctx context.Context, entries []domain.ChangeEntry) error {
	insert := psql.Insert(tableName).Columns(insertColumns...)
	for _, e := range entries {
		insert = insert.Values(
			e.FieldID,
			e.FieldAlias,
			e.FieldTypeTag,
			e.RecordID,
			e.Timestamp,
			e.Actor,
			e.PreviousValue,
			e.CurrentValue,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build change_entry insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "change_entry batch for record", entries[0].RecordID)
	}

	if got := tag.RowsAffected(); got != int64(len(entries)) {
		return fmt.Errorf("change_entry batch for record %s: inserted %d of %d rows", entries[0].RecordID, got, len(entries))
	}

	return nil
}

// Ping checks that the history table is reachable. Readiness depends on it:
// a missing table would fail every publish event.
func (r *Repo) Ping(ctx context.Context) error {
	query, args, err := psql.Select("1").From(tableName).Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("build change_entry probe: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "change_entry table", tableName)
	}
	rows.Close()
	return rows.Err()
}
