package repository

import (
	"context"

	"course-market/internal/domain/offering"
	"course-market/internal/infra"
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferingRepository struct {
	pool *pgxpool.Pool
}

func NewOfferingRepository(pool *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{pool: pool}
}

func (r *OfferingRepository) Create(ctx context.Context, o *offering.Offering) (uuid.UUID, error) {
	const query = `
		INSERT INTO offerings (
			id, title, capacity, enrolled_count, waitlist_seq,
			regular_price_cents, early_bird_price_cents, early_bird_end_at,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		o.ID(), o.Title(), o.Capacity(), o.EnrolledCount(),
		o.RegularPriceCents(), o.EarlyBirdPriceCents(), o.EarlyBirdEndAt(),
		o.CreatedAt(), o.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create offering", err)
	}
	return id, nil
}

func (r *OfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.OfferingSnapshot, error) {
	const query = `
		SELECT id, title, capacity, enrolled_count,
		       regular_price_cents, early_bird_price_cents, early_bird_end_at,
		       created_at, updated_at
		FROM offerings
		WHERE id = $1`

	var snapshot commands.OfferingSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID, &snapshot.Title, &snapshot.Capacity, &snapshot.EnrolledCount,
		&snapshot.RegularPriceCents, &snapshot.EarlyBirdPriceCents, &snapshot.EarlyBirdEndAt,
		&snapshot.CreatedAt, &snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}
	return &snapshot, nil
}
