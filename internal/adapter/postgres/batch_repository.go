package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
)

const batchColumns = `
            id,
            campaign_id,
            batch_date,
            batch_number,
            batch_size,
            status,
            scheduled_at,
            started_at,
            completed_at,
            targets_processed,
            targets_contacted,
            targets_failed,
            error_message,
            retry_count,
            max_retries,
            created_at,
            updated_at`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// BatchRepository implements port.BatchRepository using pgxpool.
type BatchRepository struct {
	pool *pgxpool.Pool
}

// NewBatchRepository returns a new repository instance.
func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

// InTx runs fn inside a serializable transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
func (r *BatchRepository) InTx(ctx context.Context, fn func(tx port.BatchTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(batchTx{tx: tx})
}

// GetBatch returns a batch by id.
func (r *BatchRepository) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	b, err := scanBatch(r.pool.QueryRow(ctx, `SELECT`+batchColumns+` FROM batches WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListPendingBatches returns due pending batches, earliest first.
func (r *BatchRepository) ListPendingBatches(ctx context.Context, dueBy time.Time, limit int) ([]domain.Batch, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+batchColumns+`
        FROM batches
        WHERE status = 'pending' AND scheduled_at <= $1
        ORDER BY scheduled_at, id
        LIMIT $2`, dueBy, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Batch, error) {
		return scanBatch(row)
	})
}

// UpdateBatch writes the lifecycle fields of b if the stored status is
// still from.
func (r *BatchRepository) UpdateBatch(ctx context.Context, b domain.Batch, from domain.BatchStatus) (bool, error) {
	return updateBatch(ctx, r.pool, b, from)
}

// CompleteBatch updates the batch and records its processed targets in the
// usage ledger in one transaction.
func (r *BatchRepository) CompleteBatch(ctx context.Context, b domain.Batch, from domain.BatchStatus) (ok bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil || !ok {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if ok, err = updateBatch(ctx, tx, b, from); err != nil || !ok {
		return ok, err
	}
	recordedAt := b.UpdatedAt
	if b.CompletedAt != nil {
		recordedAt = *b.CompletedAt
	}
	_, err = tx.Exec(ctx, `INSERT INTO quota_usage (campaign_id, batch_id, units, recorded_at) VALUES ($1,$2,$3,$4)`,
		b.CampaignID, b.ID, b.TargetsProcessed, recordedAt)
	return err == nil, err
}

func updateBatch(ctx context.Context, db execer, b domain.Batch, from domain.BatchStatus) (bool, error) {
	tag, err := db.Exec(ctx, `
        UPDATE batches SET
            status = $3,
            scheduled_at = $4,
            started_at = $5,
            completed_at = $6,
            targets_processed = $7,
            targets_contacted = $8,
            targets_failed = $9,
            error_message = $10,
            retry_count = $11,
            updated_at = $12
        WHERE id = $1 AND status = $2`,
		b.ID, from, b.Status, b.ScheduledAt, b.StartedAt, b.CompletedAt,
		b.TargetsProcessed, b.TargetsContacted, b.TargetsFailed, b.ErrorMessage, b.RetryCount, b.UpdatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// batchTx is the write side of a scheduling pass.
type batchTx struct {
	tx pgx.Tx
}

func (t batchTx) MaxBatchNumber(ctx context.Context, campaignID int64, date time.Time) (int, error) {
	var n int
	err := t.tx.QueryRow(ctx, `SELECT COALESCE(max(batch_number), 0) FROM batches WHERE campaign_id = $1 AND batch_date = $2`,
		campaignID, date).Scan(&n)
	return n, err
}

func (t batchTx) InsertBatch(ctx context.Context, b *domain.Batch) error {
	return t.tx.QueryRow(ctx, `
        INSERT INTO batches
            (campaign_id, batch_date, batch_number, batch_size, status, scheduled_at, retry_count, max_retries, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id`,
		b.CampaignID, b.BatchDate, b.BatchNumber, b.BatchSize, b.Status, b.ScheduledAt, b.RetryCount, b.MaxRetries, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func scanBatch(row pgx.Row) (domain.Batch, error) {
	var b domain.Batch
	err := row.Scan(
		&b.ID,
		&b.CampaignID,
		&b.BatchDate,
		&b.BatchNumber,
		&b.BatchSize,
		&b.Status,
		&b.ScheduledAt,
		&b.StartedAt,
		&b.CompletedAt,
		&b.TargetsProcessed,
		&b.TargetsContacted,
		&b.TargetsFailed,
		&b.ErrorMessage,
		&b.RetryCount,
		&b.MaxRetries,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}
