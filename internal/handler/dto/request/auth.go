package request

import "strings"

type SignupRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	ReferralCode *string `json:"referral_code,omitempty"`
}

func (r SignupRequest) GetReferralCode() *string {
	if r.ReferralCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.ReferralCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
