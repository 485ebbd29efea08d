package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponConsumed = errors.New("coupon has already been used")
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusUsed    Status = "USED"
	StatusExpired Status = "EXPIRED"
)

// Coupon is a single-use, amount-bearing, expiring discount code. Status only
// ever moves ACTIVE→USED or ACTIVE→EXPIRED; the USED transition itself is a
// conditional update in the store, never decided from an in-memory snapshot.
type Coupon struct {
	id        uuid.UUID
	code      Code
	amount    Amount
	status    Status
	expiresAt time.Time
	usedBy    *uuid.UUID
	usedAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewCoupon(code Code, amount Amount, expiresAt time.Time) *Coupon {
	return &Coupon{
		id:        uuid.New(),
		code:      code,
		amount:    amount,
		status:    StatusActive,
		expiresAt: expiresAt,
	}
}

// Restore rebuilds a coupon from a persisted snapshot.
func Restore(
	id uuid.UUID,
	code string,
	amountCents int64,
	status Status,
	expiresAt time.Time,
	usedBy *uuid.UUID,
	usedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:        id,
		code:      Code(code),
		amount:    Amount(amountCents),
		status:    status,
		expiresAt: expiresAt,
		usedBy:    usedBy,
		usedAt:    usedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) Amount() Amount       { return c.amount }
func (c *Coupon) Status() Status       { return c.status }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
func (c *Coupon) UsedBy() *uuid.UUID   { return c.usedBy }
func (c *Coupon) UsedAt() *time.Time   { return c.usedAt }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }

func (c *Coupon) IsExpiredAt(t time.Time) bool {
	return c.status == StatusExpired || !c.expiresAt.After(t)
}

// ValidateUsage is the read-only check offered by ValidateCoupon. The result
// is advisory: redemption re-checks atomically in the store.
func (c *Coupon) ValidateUsage(t time.Time) error {
	if c.status == StatusUsed {
		return ErrCouponConsumed
	}
	if c.IsExpiredAt(t) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ApplyDiscount(basePriceCents int64) int64 {
	return c.amount.ApplyTo(basePriceCents)
}
