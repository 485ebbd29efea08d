package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EnrollmentResponse struct {
	ID            uuid.UUID `json:"id"`
	OfferingID    uuid.UUID `json:"offeringId"`
	OfferingTitle string    `json:"offeringTitle"`
	EnrolledAt    time.Time `json:"enrolledAt"`
}

func FromEnrollmentViews(views []*queries.EnrollmentView) []*EnrollmentResponse {
	responses := make([]*EnrollmentResponse, len(views))
	for i, v := range views {
		var resp EnrollmentResponse
		_ = copier.Copy(&resp, v)
		responses[i] = &resp
	}
	return responses
}

type WaitlistPositionResponse struct {
	OfferingID uuid.UUID `json:"offeringId"`
	Position   int32     `json:"position"`
	JoinedAt   time.Time `json:"joinedAt"`
}

func FromWaitlistEntryView(view *queries.WaitlistEntryView) *WaitlistPositionResponse {
	return &WaitlistPositionResponse{
		OfferingID: view.OfferingID,
		Position:   view.Position,
		JoinedAt:   view.CreatedAt,
	}
}
