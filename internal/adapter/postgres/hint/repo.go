// Package hint implements the published collocation hint repository using
// PostgreSQL. Writes go through pgx batches; List is built with squirrel.
package hint

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/nihongo-hints/internal/adapter/postgres"
	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

const upsertSQL = `
INSERT INTO collocation_hints (direction, action_word, object_word, hint, source, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (direction, action_word, object_word) DO UPDATE
SET hint = EXCLUDED.hint, source = EXCLUDED.source, updated_at = EXCLUDED.updated_at
WHERE collocation_hints.hint IS DISTINCT FROM EXCLUDED.hint
   OR collocation_hints.source IS DISTINCT FROM EXCLUDED.source`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides hint persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new hint repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert writes records in one batch. Rows whose hint and source are
// unchanged are left alone and not counted. Returns the number of rows
// inserted or updated.
func (r *Repo) Upsert(ctx context.Context, records []domain.HintRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(upsertSQL,
			string(rec.Direction), rec.ActionWord, rec.ObjectWord, rec.Hint, rec.Source, rec.UpdatedAt,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			rec := records[i]
			return written, postgres.MapError(err, "hint", recordKey(rec))
		}
		written += int(tag.RowsAffected())
	}
	return written, nil
}

// UpsertAll writes records in chunks of batchSize inside one transaction, so
// a failed import leaves the table untouched.
func (r *Repo) UpsertAll(ctx context.Context, records []domain.HintRecord, batchSize int) (int, error) {
	var total int
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		total, err = r.upsertChunks(txCtx, records, batchSize)
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ReplaceDirection swaps every hint of dir for records in one transaction.
// Returns rows deleted and rows written.
func (r *Repo) ReplaceDirection(ctx context.Context, dir domain.HintDirection, records []domain.HintRecord, batchSize int) (deleted, written int, err error) {
	err = r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if deleted, err = r.DeleteDirection(txCtx, dir); err != nil {
			return err
		}
		written, err = r.upsertChunks(txCtx, records, batchSize)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return deleted, written, nil
}

func (r *Repo) upsertChunks(ctx context.Context, records []domain.HintRecord, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = len(records)
	}
	total := 0
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		n, err := r.Upsert(ctx, records[start:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DeleteDirection removes every hint of one direction. Returns rows deleted.
func (r *Repo) DeleteDirection(ctx context.Context, dir domain.HintDirection) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, `DELETE FROM collocation_hints WHERE direction = $1`, string(dir))
	if err != nil {
		return 0, postgres.MapError(err, "hint", string(dir))
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns one hint. Returns domain.ErrNotFound if absent.
func (r *Repo) Get(ctx context.Context, dir domain.HintDirection, action, object string) (*domain.HintRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx,
		`SELECT direction, action_word, object_word, hint, source, updated_at
		 FROM collocation_hints
		 WHERE direction = $1 AND action_word = $2 AND object_word = $3`,
		string(dir), action, object,
	)

	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "hint", fmt.Sprintf("%s %s/%s", dir, action, object))
	}
	return &rec, nil
}

// List returns hints matching f, ordered by direction, action word, object word.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.HintRecord, error) {
	f.normalize()

	query := psql.
		Select("direction", "action_word", "object_word", "hint", "source", "updated_at").
		From("collocation_hints").
		OrderBy("direction", "action_word", "object_word").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	where := sq.Eq{}
	if f.Direction != "" {
		where["direction"] = string(f.Direction)
	}
	if f.ActionWord != "" {
		where["action_word"] = f.ActionWord
	}
	if f.ObjectWord != "" {
		where["object_word"] = f.ObjectWord
	}
	if f.Source != "" {
		where["source"] = f.Source
	}
	if len(where) > 0 {
		query = query.Where(where)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "hint", "list")
	}
	defer rows.Close()

	var records []domain.HintRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, postgres.MapError(err, "hint", "list")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "hint", "list")
	}
	return records, nil
}

// Count returns the number of hints per direction.
func (r *Repo) Count(ctx context.Context) (map[domain.HintDirection]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, `SELECT direction, count(*) FROM collocation_hints GROUP BY direction`)
	if err != nil {
		return nil, postgres.MapError(err, "hint", "count")
	}
	defer rows.Close()

	counts := make(map[domain.HintDirection]int)
	for rows.Next() {
		var (
			dir string
			n   int64
		)
		if err := rows.Scan(&dir, &n); err != nil {
			return nil, postgres.MapError(err, "hint", "count")
		}
		counts[domain.HintDirection(dir)] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "hint", "count")
	}
	return counts, nil
}

func scanRecord(row pgx.Row) (domain.HintRecord, error) {
	var (
		rec domain.HintRecord
		dir string
	)
	if err := row.Scan(&dir, &rec.ActionWord, &rec.ObjectWord, &rec.Hint, &rec.Source, &rec.UpdatedAt); err != nil {
		return domain.HintRecord{}, err
	}
	rec.Direction = domain.HintDirection(dir)
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}

func recordKey(rec domain.HintRecord) string {
	return fmt.Sprintf("%s %s/%s", rec.Direction, rec.ActionWord, rec.ObjectWord)
}
