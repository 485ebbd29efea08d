package response

import "github.com/google/uuid"

type SignupResponse struct {
	AccessToken  string    `json:"access_token"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	ReferralCode string    `json:"referral_code"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}
