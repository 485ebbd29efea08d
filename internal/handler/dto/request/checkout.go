package request

import (
	"strings"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	OfferingID uuid.UUID `json:"offering_id" binding:"required"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}

func (r CheckoutRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
