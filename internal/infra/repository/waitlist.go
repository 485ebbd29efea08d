package repository

import (
	"context"
	"time"

	"course-market/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{pool: pool}
}

// Join takes the next position from the offering's waitlist sequence and
// records the entry in the same transaction. The sequence update locks the
// offering row, so concurrent joiners get distinct gapless positions.
func (r *WaitlistRepository) Join(ctx context.Context, offeringID, userID uuid.UUID, now time.Time) (int32, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin waitlist transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const nextPosition = `
		UPDATE offerings
		SET waitlist_seq = waitlist_seq + 1, updated_at = $2
		WHERE id = $1
		RETURNING waitlist_seq`

	var position int32
	if err := tx.QueryRow(ctx, nextPosition, offeringID, now).Scan(&position); err != nil {
		return 0, infra.WrapRepoErr("failed to advance waitlist sequence", err)
	}

	const insertEntry = `
		INSERT INTO waitlist_entries (id, offering_id, user_id, position, joined_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, insertEntry, uuid.New(), offeringID, userID, position, now); err != nil {
		return 0, infra.WrapRepoErr("failed to insert waitlist entry", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit waitlist transaction", err)
	}
	return position, nil
}
