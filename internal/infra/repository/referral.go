package repository

import (
	"context"

	"course-market/internal/domain/referral"
	"course-market/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferralRepository struct {
	pool *pgxpool.Pool
}

func NewReferralRepository(pool *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{pool: pool}
}

func (r *ReferralRepository) CreateAccount(ctx context.Context, account *referral.Account) error {
	const query = `
		INSERT INTO referral_accounts (user_id, code, referred_by, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query,
		account.UserID(), account.Code().String(), account.ReferredBy(), account.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create referral account", err)
	}
	return nil
}

func (r *ReferralRepository) FindReferrerByCode(ctx context.Context, code string) (uuid.UUID, error) {
	const query = `
		SELECT user_id
		FROM referral_accounts
		WHERE code = $1`

	var userID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, code).Scan(&userID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find referrer by code", err)
	}
	return userID, nil
}

// InsertSignupReward records the PENDING reward for a referred signup. The
// (referrer_id, referee_id, kind) constraint makes replays no-ops.
func (r *ReferralRepository) InsertSignupReward(ctx context.Context, reward *referral.Reward) (bool, error) {
	const query = `
		INSERT INTO referral_rewards (id, referrer_id, referee_id, kind, amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (referrer_id, referee_id, kind) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		reward.ID(), reward.ReferrerID(), reward.RefereeID(), string(reward.Kind()),
		reward.AmountCents(), string(reward.Status()), reward.CreatedAt(), reward.UpdatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert signup reward", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ConfirmFirstPurchase inserts the CONFIRMED purchase reward and settles the
// referee's PENDING signup reward in one transaction. A lost race on the
// insert means another purchase already confirmed this pair; nothing changes.
func (r *ReferralRepository) ConfirmFirstPurchase(ctx context.Context, reward *referral.Reward) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, infra.WrapRepoErr("failed to begin referral transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertReward = `
		INSERT INTO referral_rewards (id, referrer_id, referee_id, kind, amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (referrer_id, referee_id, kind) DO NOTHING`

	tag, err := tx.Exec(ctx, insertReward,
		reward.ID(), reward.ReferrerID(), reward.RefereeID(), string(reward.Kind()),
		reward.AmountCents(), string(reward.Status()), reward.CreatedAt(), reward.UpdatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert purchase reward", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	const settleSignup = `
		UPDATE referral_rewards
		SET status = 'CONFIRMED', updated_at = $3
		WHERE referrer_id = $1 AND referee_id = $2 AND kind = 'SIGNUP' AND status = 'PENDING'`

	if _, err := tx.Exec(ctx, settleSignup, reward.ReferrerID(), reward.RefereeID(), reward.UpdatedAt()); err != nil {
		return false, infra.WrapRepoErr("failed to settle signup reward", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, infra.WrapRepoErr("failed to commit referral transaction", err)
	}
	return true, nil
}
