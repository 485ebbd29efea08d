package repository

import (
	"context"
	"time"

	"course-market/internal/infra"
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// TryEnroll inserts the enrollment and bumps enrolled_count in one
// transaction. The insert runs first so a repeat enrollment always hits the
// (offering_id, user_id) unique constraint, even when the offering is full.
// The conditional increment is the capacity gate: under concurrent attempts
// the row lock serializes them and exactly seats-left transactions see a
// matched row.
func (r *EnrollmentRepository) TryEnroll(ctx context.Context, offeringID, userID uuid.UUID, now time.Time) (*commands.EnrollmentRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin enroll transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record := commands.EnrollmentRecord{
		ID:         uuid.New(),
		OfferingID: offeringID,
		UserID:     userID,
		EnrolledAt: now,
	}

	const insertEnrollment = `
		INSERT INTO enrollments (id, offering_id, user_id, enrolled_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, insertEnrollment,
		record.ID, record.OfferingID, record.UserID, record.EnrolledAt,
	); err != nil {
		werr := infra.WrapRepoErr("failed to insert enrollment", err)
		if infra.IsKind(werr, infra.KindForeignKeyViolated) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, werr
	}

	const claimSeat = `
		UPDATE offerings
		SET enrolled_count = enrolled_count + 1, updated_at = $2
		WHERE id = $1
		  AND (capacity IS NULL OR enrolled_count < capacity)`

	tag, err := tx.Exec(ctx, claimSeat, offeringID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim seat", err)
	}
	if tag.RowsAffected() == 0 {
		// Insert rolls back with the transaction.
		return nil, infra.WrapRepoErr("offering is full", nil, infra.KindConflict)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit enroll transaction", err)
	}
	return &record, nil
}

// ReleaseSeat undoes a seat claim after a later checkout step failed: the
// enrollment row goes away and the counter comes back down in the same
// transaction.
func (r *EnrollmentRepository) ReleaseSeat(ctx context.Context, enrollmentID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin release transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const deleteEnrollment = `
		DELETE FROM enrollments
		WHERE id = $1
		RETURNING offering_id`

	var offeringID uuid.UUID
	if err := tx.QueryRow(ctx, deleteEnrollment, enrollmentID).Scan(&offeringID); err != nil {
		return infra.WrapRepoErr("failed to delete enrollment", err)
	}

	const releaseSeat = `
		UPDATE offerings
		SET enrolled_count = enrolled_count - 1
		WHERE id = $1 AND enrolled_count > 0`

	if _, err := tx.Exec(ctx, releaseSeat, offeringID); err != nil {
		return infra.WrapRepoErr("failed to release seat", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit release transaction", err)
	}
	return nil
}
