package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	domcoupon "course-market/internal/domain/coupon"
	"course-market/internal/domain/referral"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/config"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferingNotFound       = errs.New("offering not found")
	ErrCouponNotFound         = errs.New("coupon not found")
	ErrCouponInvalid          = errs.New("invalid coupon")
	ErrCouponExpired          = errs.New("coupon expired")
	ErrCouponAlreadyRedeemed  = errs.New("coupon already redeemed")
	ErrAlreadyEnrolled        = errs.New("user already enrolled")
	ErrAlreadyWaitlisted      = errs.New("user already waitlisted")
	ErrPaymentFailed          = errs.New("payment failed")
	ErrIdempotencyInProgress  = errs.New("checkout in progress")
	ErrIdempotencyKeyRequired = errs.New("idempotency key required")
	ErrDuplicateRequest       = errs.New("duplicate request with different parameters")
	ErrDatabaseFailure        = errs.New("database operation failed")
)

const (
	OutcomeEnrolled   = "ENROLLED"
	OutcomeWaitlisted = "WAITLISTED"

	checkoutEndpoint = "POST /checkout"
)

type CheckoutParams struct {
	OfferingID uuid.UUID `json:"offering_id"`
	UserID     uuid.UUID `json:"user_id"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}

type CheckoutResult struct {
	Outcome          string     `json:"outcome"`
	FinalPriceCents  int64      `json:"final_price_cents"`
	BasePriceCents   int64      `json:"base_price_cents"`
	DiscountCents    int64      `json:"discount_cents"`
	WaitlistPosition *int32     `json:"waitlist_position,omitempty"`
	EnrollmentID     *uuid.UUID `json:"enrollment_id,omitempty"`
	CouponRedeemed   bool       `json:"coupon_redeemed"`
	IsReplayed       bool       `json:"-"`
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, params CheckoutParams, idempotencyKey uuid.UUID) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	offerings       OfferingStore
	coupons         CouponStore
	couponRepo      CouponRepository
	enrollments     EnrollmentRepository
	waitlist        WaitlistRepository
	referralRepo    ReferralRepository
	userRepo        UserRepository
	payments        PaymentGateway
	notifications   NotificationRepository
	idempotencyRepo IdempotencyRepository
	clock           clock.Clock
	policy          config.CheckoutConfig
	logger          *slog.Logger
}

func NewCheckoutCommands(
	offerings OfferingStore,
	coupons CouponStore,
	couponRepo CouponRepository,
	enrollments EnrollmentRepository,
	waitlist WaitlistRepository,
	referralRepo ReferralRepository,
	userRepo UserRepository,
	payments PaymentGateway,
	notifications NotificationRepository,
	idempotencyRepo IdempotencyRepository,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		offerings:       offerings,
		coupons:         coupons,
		couponRepo:      couponRepo,
		enrollments:     enrollments,
		waitlist:        waitlist,
		referralRepo:    referralRepo,
		userRepo:        userRepo,
		payments:        payments,
		notifications:   notifications,
		idempotencyRepo: idempotencyRepo,
		clock:           clk,
		policy:          cfg.Checkout,
		logger:          logger,
	}
}

// Checkout runs one purchase as a sequence with explicit compensation:
// resolve price, validate the coupon (advisory), charge, grab a seat or queue,
// and only after a confirmed seat atomically redeem the coupon. Redemption is
// the last mutation on purpose: a failed enroll must never burn the coupon.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, params CheckoutParams, idempotencyKey uuid.UUID) (*CheckoutResult, error) {
	requestHash := hashParams(params)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, params.UserID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		replayed.IsReplayed = true
		return replayed, nil
	}

	result, err := c.executeCheckout(ctx, params)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(result); marshalErr == nil {
		if markErr := c.idempotencyRepo.MarkCompleted(ctx, idempotencyKey, params.UserID, payload); markErr != nil {
			c.logger.Warn("failed to mark idempotency key completed", "error", markErr.Error())
		}
	}

	return result, nil
}

func (c *checkoutCommandsImpl) executeCheckout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	now := c.clock.Now()

	offeringSnap, err := c.offerings.FindByID(ctx, params.OfferingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	basePrice := offeringSnap.ToDomain().EffectivePriceCents(now)

	couponEntity, err := c.resolveCoupon(ctx, params.CouponCode, now)
	if err != nil {
		return nil, err
	}

	finalPrice := basePrice
	if couponEntity != nil {
		finalPrice = couponEntity.ApplyDiscount(basePrice)
	}

	outcome, err := c.payments.Charge(ctx, params.UserID, params.OfferingID, finalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailed)
	}
	if !outcome.Success {
		return nil, ErrPaymentFailed
	}

	record, err := c.enrollments.TryEnroll(ctx, params.OfferingID, params.UserID, now)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return c.fallThroughToWaitlist(ctx, params, outcome, basePrice, finalPrice, now)
		case infra.IsKind(err, infra.KindDuplicateKey):
			c.refund(ctx, outcome.PaymentID)
			return nil, ErrAlreadyEnrolled
		case infra.IsKind(err, infra.KindNotFound):
			c.refund(ctx, outcome.PaymentID)
			return nil, ErrOfferingNotFound
		default:
			c.refund(ctx, outcome.PaymentID)
			return nil, errs.Mark(err, ErrDatabaseFailure)
		}
	}

	couponRedeemed := false
	if couponEntity != nil {
		if redeemErr := c.couponRepo.Redeem(ctx, couponEntity.Code().String(), params.UserID, now); redeemErr != nil {
			// Lost the coupon race after taking a seat. Give both back: the
			// seat via the compensating release, the money via refund.
			if releaseErr := c.enrollments.ReleaseSeat(ctx, record.ID); releaseErr != nil {
				c.logger.Error("failed to release seat after redeem conflict", "enrollment_id", record.ID, "error", releaseErr.Error())
			}
			c.refund(ctx, outcome.PaymentID)
			if infra.IsKind(redeemErr, infra.KindConflict) {
				return nil, ErrCouponAlreadyRedeemed
			}
			return nil, errs.Mark(redeemErr, ErrDatabaseFailure)
		}
		couponRedeemed = true
	}

	c.confirmReferralReward(ctx, params.UserID)
	c.notify(ctx, "enrollment_confirmed", map[string]any{
		"enrollment_id": record.ID,
		"offering_id":   params.OfferingID,
		"user_id":       params.UserID,
	})

	enrollmentID := record.ID
	return &CheckoutResult{
		Outcome:         OutcomeEnrolled,
		FinalPriceCents: finalPrice,
		BasePriceCents:  basePrice,
		DiscountCents:   basePrice - finalPrice,
		EnrollmentID:    &enrollmentID,
		CouponRedeemed:  couponRedeemed,
	}, nil
}

// fallThroughToWaitlist handles a full offering: queue the user and hand the
// payment back. The coupon was never redeemed, so it stays ACTIVE.
func (c *checkoutCommandsImpl) fallThroughToWaitlist(
	ctx context.Context,
	params CheckoutParams,
	outcome *PaymentOutcome,
	basePrice, finalPrice int64,
	now time.Time,
) (*CheckoutResult, error) {
	position, err := c.waitlist.Join(ctx, params.OfferingID, params.UserID, now)
	c.refund(ctx, outcome.PaymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyWaitlisted
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	c.notify(ctx, "waitlist_joined", map[string]any{
		"offering_id": params.OfferingID,
		"user_id":     params.UserID,
		"position":    position,
	})

	return &CheckoutResult{
		Outcome:          OutcomeWaitlisted,
		FinalPriceCents:  finalPrice,
		BasePriceCents:   basePrice,
		DiscountCents:    basePrice - finalPrice,
		WaitlistPosition: &position,
	}, nil
}

// resolveCoupon applies the advisory validation step. Expired coupons follow
// the configured policy: reject the checkout or silently drop the discount.
func (c *checkoutCommandsImpl) resolveCoupon(ctx context.Context, rawCode *string, now time.Time) (*domcoupon.Coupon, error) {
	if rawCode == nil {
		return nil, nil
	}

	code, err := domcoupon.NewCode(*rawCode)
	if err != nil {
		return nil, ErrCouponInvalid
	}

	snap, err := c.coupons.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	entity := snap.ToDomain()
	switch validationErr := entity.ValidateUsage(now); {
	case validationErr == nil:
		return entity, nil
	case errs.Is(validationErr, domcoupon.ErrCouponConsumed):
		return nil, ErrCouponAlreadyRedeemed
	default:
		if c.policy.ExpiredCouponPolicy == config.ExpiredCouponIgnore {
			return nil, nil
		}
		return nil, ErrCouponExpired
	}
}

// confirmReferralReward settles the referee's first completed purchase. The
// uniqueness constraint makes repeats no-ops, so no "first purchase" lookup is
// needed here.
func (c *checkoutCommandsImpl) confirmReferralReward(ctx context.Context, refereeID uuid.UUID) {
	userSnap, err := c.userRepo.FindByID(ctx, refereeID)
	if err != nil || userSnap == nil || userSnap.ReferredBy == nil {
		return
	}

	reward, err := referral.NewFirstPurchaseReward(*userSnap.ReferredBy, refereeID, c.policy.PurchaseRewardCents)
	if err != nil {
		return
	}

	inserted, err := c.referralRepo.ConfirmFirstPurchase(ctx, reward)
	if err != nil {
		c.logger.Error("failed to confirm referral reward", "referee_id", refereeID, "error", err.Error())
		return
	}
	if inserted {
		c.notify(ctx, "referral_reward_confirmed", map[string]any{
			"referrer_id":  *userSnap.ReferredBy,
			"referee_id":   refereeID,
			"amount_cents": c.policy.PurchaseRewardCents,
		})
	}
}

// refund is the compensating action after payment success. The payment
// collaborator owns the actual money movement; a failure here is logged and
// left to reconciliation.
func (c *checkoutCommandsImpl) refund(ctx context.Context, paymentID string) {
	if err := c.payments.Refund(ctx, paymentID); err != nil {
		c.logger.Error("failed to refund payment", "payment_id", paymentID, "error", err.Error())
	}
}

func (c *checkoutCommandsImpl) notify(ctx context.Context, topic string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.notifications.CreateJob(ctx, "email", topic, body, c.clock.Now()); err != nil {
		c.logger.Warn("failed to enqueue notification", "topic", topic, "error", err.Error())
	}
}

func (c *checkoutCommandsImpl) handleIdempotency(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*CheckoutResult, error) {
	inserted, err := c.idempotencyRepo.TryInsert(ctx, key, userID, checkoutEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	if inserted {
		// This request owns the key.
		return nil, nil
	}

	existing, err := c.idempotencyRepo.Get(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	switch existing.Status {
	case "completed":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		var result CheckoutResult
		if unmarshalErr := json.Unmarshal(existing.Result, &result); unmarshalErr != nil {
			return nil, errs.Mark(unmarshalErr, ErrDatabaseFailure)
		}
		return &result, nil

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func hashParams(params CheckoutParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
