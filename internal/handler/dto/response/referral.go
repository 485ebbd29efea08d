package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReferredUserResponse struct {
	UserID     uuid.UUID `json:"userId"`
	Email      string    `json:"email"`
	SignedUpAt time.Time `json:"signedUpAt"`
}

type ReferralSummaryResponse struct {
	Code           string                 `json:"code"`
	PendingCents   int64                  `json:"pendingCents"`
	ConfirmedCents int64                  `json:"confirmedCents"`
	ReferredUsers  []ReferredUserResponse `json:"referredUsers"`
}

func FromReferralSummaryView(view *queries.ReferralSummaryView) *ReferralSummaryResponse {
	referred := make([]ReferredUserResponse, len(view.ReferredUsers))
	for i, u := range view.ReferredUsers {
		referred[i] = ReferredUserResponse{
			UserID:     u.UserID,
			Email:      u.Email,
			SignedUpAt: u.SignedUpAt,
		}
	}
	return &ReferralSummaryResponse{
		Code:           view.Code,
		PendingCents:   view.PendingCents,
		ConfirmedCents: view.ConfirmedCents,
		ReferredUsers:  referred,
	}
}
