package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Capacity            *int32     `json:"capacity,omitempty"`
	EnrolledCount       int32      `json:"enrolledCount"`
	SeatsLeft           *int32     `json:"seatsLeft,omitempty"`
	RegularPriceCents   int64      `json:"regularPriceCents"`
	EarlyBirdPriceCents *int64     `json:"earlyBirdPriceCents,omitempty"`
	EarlyBirdEndAt      *time.Time `json:"earlyBirdEndAt,omitempty"`
	EffectivePriceCents int64      `json:"effectivePriceCents"`
	EarlyBirdActive     bool       `json:"earlyBirdActive"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func FromOfferingView(view *queries.OfferingView) *OfferingResponse {
	var resp OfferingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOfferingViews(views []*queries.OfferingView) []*OfferingResponse {
	responses := make([]*OfferingResponse, len(views))
	for i, v := range views {
		responses[i] = FromOfferingView(v)
	}
	return responses
}
