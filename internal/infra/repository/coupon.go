package repository

import (
	"context"
	"time"

	"course-market/internal/domain/coupon"
	"course-market/internal/infra"
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	const query = `
		INSERT INTO coupons (id, code, amount_cents, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		c.ID(), c.Code().String(), c.Amount().Cents(), string(c.Status()),
		c.ExpiresAt(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	const query = `
		SELECT id, code, amount_cents, status, expires_at, used_by, used_at, created_at, updated_at
		FROM coupons
		WHERE code = $1`

	var snapshot commands.CouponSnapshot
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&snapshot.ID, &snapshot.Code, &snapshot.AmountCents, &snapshot.Status,
		&snapshot.ExpiresAt, &snapshot.UsedBy, &snapshot.UsedAt,
		&snapshot.CreatedAt, &snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return &snapshot, nil
}

// Redeem flips the coupon to USED in a single conditional update. Among
// concurrent redeemers exactly one matches the ACTIVE row; everyone else gets
// KindConflict.
func (r *CouponRepository) Redeem(ctx context.Context, code string, userID uuid.UUID, now time.Time) error {
	const query = `
		UPDATE coupons
		SET status = 'USED', used_by = $2, used_at = $3, updated_at = $3
		WHERE code = $1 AND status = 'ACTIVE' AND expires_at > $3`

	tag, err := r.pool.Exec(ctx, query, code, userID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not redeemable", nil, infra.KindConflict)
	}
	return nil
}
