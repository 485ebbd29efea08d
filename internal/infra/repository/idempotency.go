package repository

import (
	"context"
	"time"

	"course-market/internal/infra"
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdempotencyRepository struct {
	pool *pgxpool.Pool
}

func NewIdempotencyRepository(pool *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{pool: pool}
}

// TryInsert claims the key for this request. An expired leftover row is taken
// over in the same statement, so a stuck processing key never blocks retries
// past its window.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, result, expires_at, created_at)
		VALUES ($1, $2, $3, $4, 'processing', NULL, $5, now())
		ON CONFLICT (key) DO UPDATE
		SET user_id = EXCLUDED.user_id,
		    endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    result = NULL,
		    expires_at = EXCLUDED.expires_at,
		    created_at = now()
		WHERE idempotency_keys.expires_at <= now()`

	tag, err := r.pool.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, endpoint, request_hash, status, result, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var record commands.IdempotencyRecord
	err := r.pool.QueryRow(ctx, query, key, userID).Scan(
		&record.Key, &record.UserID, &record.Endpoint, &record.RequestHash,
		&record.Status, &record.Result, &record.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &record, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key, userID uuid.UUID, result []byte) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result = $3
		WHERE key = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, key, userID, result)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
