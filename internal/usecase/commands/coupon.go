package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	domcoupon "course-market/internal/domain/coupon"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"
	"course-market/internal/pkg/randcode"
)

var (
	ErrCouponAmountInvalid = errs.New("coupon amount must be positive")
	ErrCouponExpiryInPast  = errs.New("coupon expiry must be in the future")
	ErrCodeGeneration      = errs.New("failed to generate a unique code")
)

// codeRetryLimit bounds collision retries on the unique code constraint.
const codeRetryLimit = 5

type CreateCouponParams struct {
	AmountCents int64     `json:"amount_cents"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type CreateCouponResult struct {
	Code        string    `json:"code"`
	AmountCents int64     `json:"amount_cents"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type CouponCommands interface {
	CreateCoupon(ctx context.Context, params CreateCouponParams) (*CreateCouponResult, error)
}

type couponCommandsImpl struct {
	couponRepo    CouponRepository
	notifications NotificationRepository
	clock         clock.Clock
	logger        *slog.Logger
}

func NewCouponCommands(
	couponRepo CouponRepository,
	notifications NotificationRepository,
	clk clock.Clock,
	logger *slog.Logger,
) CouponCommands {
	return &couponCommandsImpl{
		couponRepo:    couponRepo,
		notifications: notifications,
		clock:         clk,
		logger:        logger,
	}
}

// CreateCoupon issues a single-use coupon under a freshly generated code. The
// code is collision-checked against the unique constraint: an insert that
// trips it just draws a new code.
func (c *couponCommandsImpl) CreateCoupon(ctx context.Context, params CreateCouponParams) (*CreateCouponResult, error) {
	amount, err := domcoupon.NewAmount(params.AmountCents)
	if err != nil {
		return nil, ErrCouponAmountInvalid
	}
	if !params.ExpiresAt.After(c.clock.Now()) {
		return nil, ErrCouponExpiryInPast
	}

	var created *domcoupon.Coupon
	for range codeRetryLimit {
		raw, genErr := randcode.GenerateCouponCode()
		if genErr != nil {
			return nil, errs.Mark(genErr, ErrCodeGeneration)
		}
		code, codeErr := domcoupon.NewCode(raw)
		if codeErr != nil {
			return nil, errs.Mark(codeErr, ErrCodeGeneration)
		}

		candidate := domcoupon.NewCoupon(code, amount, params.ExpiresAt)
		insertErr := c.couponRepo.Create(ctx, candidate)
		if insertErr == nil {
			created = candidate
			break
		}
		if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
			return nil, errs.Mark(insertErr, ErrDatabaseFailure)
		}
	}
	if created == nil {
		return nil, ErrCodeGeneration
	}

	if payload, marshalErr := json.Marshal(map[string]any{
		"code":         created.Code().String(),
		"amount_cents": created.Amount().Cents(),
		"expires_at":   created.ExpiresAt(),
	}); marshalErr == nil {
		if notifyErr := c.notifications.CreateJob(ctx, "email", "coupon_issued", payload, c.clock.Now()); notifyErr != nil {
			c.logger.Warn("failed to enqueue coupon notification", "error", notifyErr.Error())
		}
	}

	return &CreateCouponResult{
		Code:        created.Code().String(),
		AmountCents: created.Amount().Cents(),
		ExpiresAt:   created.ExpiresAt(),
	}, nil
}
