package queries

import (
	"context"

	domcoupon "course-market/internal/domain/coupon"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"
)

var (
	ErrCouponNotFound    = errs.New("coupon not found")
	ErrCouponInvalidCode = errs.New("invalid coupon code")
	ErrCouponExpired     = errs.New("coupon expired")
	ErrCouponConsumed    = errs.New("coupon already used")
)

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

// CouponValidation is the advisory answer of ValidateCoupon: a later Redeem
// still re-checks atomically in the store.
type CouponValidation struct {
	Code        string `json:"code"`
	AmountCents int64  `json:"amount_cents"`
}

type CouponQueries interface {
	ValidateCoupon(ctx context.Context, code string) (*CouponValidation, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, clock: clock}
}

func (q *couponQueriesImpl) ValidateCoupon(ctx context.Context, rawCode string) (*CouponValidation, error) {
	code, err := domcoupon.NewCode(rawCode)
	if err != nil {
		return nil, ErrCouponInvalidCode
	}

	view, err := q.store.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to look up coupon")
	}

	entity := domcoupon.Restore(
		view.ID, view.Code, view.AmountCents, domcoupon.Status(view.Status),
		view.ExpiresAt, view.UsedBy, view.UsedAt, view.CreatedAt, view.UpdatedAt,
	)

	switch validationErr := entity.ValidateUsage(q.clock.Now()); {
	case validationErr == nil:
		return &CouponValidation{Code: view.Code, AmountCents: view.AmountCents}, nil
	case errs.Is(validationErr, domcoupon.ErrCouponConsumed):
		return nil, ErrCouponConsumed
	default:
		return nil, ErrCouponExpired
	}
}
