package response

import (
	"time"

	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"
)

type CouponIssuedResponse struct {
	Code        string    `json:"code"`
	AmountCents int64     `json:"amountCents"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func FromCreateCouponResult(result *commands.CreateCouponResult) *CouponIssuedResponse {
	return &CouponIssuedResponse{
		Code:        result.Code,
		AmountCents: result.AmountCents,
		ExpiresAt:   result.ExpiresAt,
	}
}

type CouponValidationResponse struct {
	Code        string `json:"code"`
	AmountCents int64  `json:"amountCents"`
	Valid       bool   `json:"valid"`
}

func FromCouponValidation(v *queries.CouponValidation) *CouponValidationResponse {
	return &CouponValidationResponse{
		Code:        v.Code,
		AmountCents: v.AmountCents,
		Valid:       true,
	}
}
