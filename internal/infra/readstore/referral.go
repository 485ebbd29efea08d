package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferralReadStore struct {
	pool *pgxpool.Pool
}

func NewReferralReadStore(pool *pgxpool.Pool) *ReferralReadStore {
	return &ReferralReadStore{pool: pool}
}

func (s *ReferralReadStore) FindAccountCode(ctx context.Context, userID uuid.UUID) (string, error) {
	const query = `
		SELECT code
		FROM referral_accounts
		WHERE user_id = $1`

	var code string
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&code); err != nil {
		return "", infra.WrapRepoErr("failed to find referral account", err)
	}
	return code, nil
}

func (s *ReferralReadStore) SumRewardsByStatus(ctx context.Context, referrerID uuid.UUID) (int64, int64, error) {
	const query = `
		SELECT
			COALESCE(SUM(amount_cents) FILTER (WHERE status = 'PENDING'), 0),
			COALESCE(SUM(amount_cents) FILTER (WHERE status = 'CONFIRMED'), 0)
		FROM referral_rewards
		WHERE referrer_id = $1`

	var pending, confirmed int64
	if err := s.pool.QueryRow(ctx, query, referrerID).Scan(&pending, &confirmed); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to sum referral rewards", err)
	}
	return pending, confirmed, nil
}

func (s *ReferralReadStore) ListReferredUsers(ctx context.Context, referrerID uuid.UUID) ([]queries.ReferredUserView, error) {
	const query = `
		SELECT id, email, created_at
		FROM users
		WHERE referred_by = $1
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, referrerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list referred users", err)
	}
	defer rows.Close()

	views := make([]queries.ReferredUserView, 0)
	for rows.Next() {
		var view queries.ReferredUserView
		if scanErr := rows.Scan(&view.UserID, &view.Email, &view.SignedUpAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan referred user", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate referred users", err)
	}
	return views, nil
}
