package queries

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReferralAccountNotFound = errs.New("referral account not found")

type ReferralReadStore interface {
	FindAccountCode(ctx context.Context, userID uuid.UUID) (string, error)
	SumRewardsByStatus(ctx context.Context, referrerID uuid.UUID) (pendingCents, confirmedCents int64, err error)
	ListReferredUsers(ctx context.Context, referrerID uuid.UUID) ([]ReferredUserView, error)
}

type ReferralQueries interface {
	GetReferralSummary(ctx context.Context, userID uuid.UUID) (*ReferralSummaryView, error)
}

type referralQueriesImpl struct {
	store ReferralReadStore
}

func NewReferralQueries(store ReferralReadStore) ReferralQueries {
	return &referralQueriesImpl{store: store}
}

func (q *referralQueriesImpl) GetReferralSummary(ctx context.Context, userID uuid.UUID) (*ReferralSummaryView, error) {
	code, err := q.store.FindAccountCode(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReferralAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to find referral account")
	}

	pending, confirmed, err := q.store.SumRewardsByStatus(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sum referral rewards")
	}

	referred, err := q.store.ListReferredUsers(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list referred users")
	}

	return &ReferralSummaryView{
		Code:           code,
		PendingCents:   pending,
		ConfirmedCents: confirmed,
		ReferredUsers:  referred,
	}, nil
}
