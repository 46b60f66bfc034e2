package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
	"github.com/osse101/HypixelVerify_Go/internal/repository"
)

// VerificationRepository implements repository.Verification on Postgres.
// It keeps a copy of the last loaded or written rows so PersistAll can replay
// the whole set in one transaction.
type VerificationRepository struct {
	db *pgxpool.Pool

	mu    sync.Mutex
	cache map[string]domain.VerificationRecord
}

var _ repository.Verification = (*VerificationRepository)(nil)

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *pgxpool.Pool) *VerificationRepository {
	return &VerificationRepository{
		db:    db,
		cache: make(map[string]domain.VerificationRecord),
	}
}

// Get retrieves a record by Discord user id
func (r *VerificationRepository) Get(ctx context.Context, userID string) (domain.VerificationRecord, bool, error) {
	query := `
		SELECT user_id, verified, cooldown_until
		FROM verification_records
		WHERE user_id = $1
	`
	rec, err := scanRecord(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.VerificationRecord{}, false, nil
	}
	if err != nil {
		return domain.VerificationRecord{}, false, fmt.Errorf("failed to get verification record: %w", err)
	}
	return rec, true, nil
}

// Put inserts or replaces a record
func (r *VerificationRepository) Put(ctx context.Context, record domain.VerificationRecord) error {
	if _, err := r.db.Exec(ctx, upsertQuery, record.UserID, record.Verified, record.CooldownUntil); err != nil {
		metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultFailure).Inc()
		return fmt.Errorf("failed to upsert verification record: %w", err)
	}
	metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultSuccess).Inc()

	r.mu.Lock()
	r.cache[record.UserID] = record
	r.mu.Unlock()
	return nil
}

// Delete removes a record; missing rows are not an error
func (r *VerificationRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM verification_records WHERE user_id = $1`, userID); err != nil {
		metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultFailure).Inc()
		return fmt.Errorf("failed to delete verification record: %w", err)
	}
	metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultSuccess).Inc()

	r.mu.Lock()
	delete(r.cache, userID)
	r.mu.Unlock()
	return nil
}

// LoadAll reads every row and refreshes the cached snapshot
func (r *VerificationRepository) LoadAll(ctx context.Context) (map[string]domain.VerificationRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id, verified, cooldown_until FROM verification_records`)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]domain.VerificationRecord)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification record: %w", err)
		}
		records[rec.UserID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verification records: %w", err)
	}

	r.mu.Lock()
	r.cache = records
	out := make(map[string]domain.VerificationRecord, len(records))
	for k, v := range records {
		out[k] = v
	}
	r.mu.Unlock()
	return out, nil
}

// PersistAll makes the table match the cached snapshot in a single transaction
func (r *VerificationRepository) PersistAll(ctx context.Context) error {
	r.mu.Lock()
	snapshot := make([]domain.VerificationRecord, 0, len(r.cache))
	ids := make([]string, 0, len(r.cache))
	for id, rec := range r.cache {
		snapshot = append(snapshot, rec)
		ids = append(ids, id)
	}
	r.mu.Unlock()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM verification_records WHERE NOT (user_id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("failed to prune verification records: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range snapshot {
		batch.Queue(upsertQuery, rec.UserID, rec.Verified, rec.CooldownUntil)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to write verification snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultFailure).Inc()
		return fmt.Errorf("failed to commit verification snapshot: %w", err)
	}
	metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultSuccess).Inc()
	return nil
}

const upsertQuery = `
	INSERT INTO verification_records (user_id, verified, cooldown_until, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET verified = EXCLUDED.verified,
	    cooldown_until = EXCLUDED.cooldown_until,
	    updated_at = NOW()
`

func scanRecord(row pgx.Row) (domain.VerificationRecord, error) {
	var rec domain.VerificationRecord
	var until *time.Time
	if err := row.Scan(&rec.UserID, &rec.Verified, &until); err != nil {
		return domain.VerificationRecord{}, err
	}
	if until != nil {
		t := until.UTC()
		rec.CooldownUntil = &t
	}
	return rec, nil
}
