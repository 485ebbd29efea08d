package request

import "time"

type CreateCouponRequest struct {
	AmountCents int64     `json:"amount_cents" binding:"required"`
	ExpiresAt   time.Time `json:"expires_at" binding:"required"`
}
