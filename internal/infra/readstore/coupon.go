package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	const query = `
		SELECT id, code, amount_cents, status, expires_at, used_by, used_at, created_at, updated_at
		FROM coupons
		WHERE code = $1`

	var view queries.CouponView
	err := s.pool.QueryRow(ctx, query, code).Scan(
		&view.ID, &view.Code, &view.AmountCents, &view.Status,
		&view.ExpiresAt, &view.UsedBy, &view.UsedAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return &view, nil
}
