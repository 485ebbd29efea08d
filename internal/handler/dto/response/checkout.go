package response

import (
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckoutResponse struct {
	Outcome          string     `json:"outcome"`
	BasePriceCents   int64      `json:"basePriceCents"`
	DiscountCents    int64      `json:"discountCents"`
	FinalPriceCents  int64      `json:"finalPriceCents"`
	WaitlistPosition *int32     `json:"waitlistPosition,omitempty"`
	EnrollmentID     *uuid.UUID `json:"enrollmentId,omitempty"`
	CouponRedeemed   bool       `json:"couponRedeemed"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	var resp CheckoutResponse
	_ = copier.Copy(&resp, result)
	return &resp
}

type EnrollOrWaitlistResponse struct {
	Outcome          string     `json:"outcome"`
	EnrollmentID     *uuid.UUID `json:"enrollmentId,omitempty"`
	WaitlistPosition *int32     `json:"waitlistPosition,omitempty"`
}

func FromEnrollOrWaitlistResult(result *commands.EnrollOrWaitlistResult) *EnrollOrWaitlistResponse {
	var resp EnrollOrWaitlistResponse
	_ = copier.Copy(&resp, result)
	return &resp
}
