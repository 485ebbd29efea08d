package request

import "time"

type CreateOfferingRequest struct {
	Title               string     `json:"title" binding:"required"`
	Capacity            *int32     `json:"capacity,omitempty"`
	RegularPriceCents   int64      `json:"regular_price_cents" binding:"required"`
	EarlyBirdPriceCents *int64     `json:"early_bird_price_cents,omitempty"`
	EarlyBirdEndAt      *time.Time `json:"early_bird_end_at,omitempty"`
}
