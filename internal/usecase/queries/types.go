package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type OfferingView struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Capacity            *int32     `json:"capacity,omitempty"`
	EnrolledCount       int32      `json:"enrolled_count"`
	SeatsLeft           *int32     `json:"seats_left,omitempty"`
	RegularPriceCents   int64      `json:"regular_price_cents"`
	EarlyBirdPriceCents *int64     `json:"early_bird_price_cents,omitempty"`
	EarlyBirdEndAt      *time.Time `json:"early_bird_end_at,omitempty"`
	EffectivePriceCents int64      `json:"effective_price_cents"`
	EarlyBirdActive     bool       `json:"early_bird_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type CouponView struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	ExpiresAt   time.Time  `json:"expires_at"`
	UsedBy      *uuid.UUID `json:"used_by,omitempty"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EnrollmentView struct {
	ID            uuid.UUID `json:"id"`
	OfferingID    uuid.UUID `json:"offering_id"`
	OfferingTitle string    `json:"offering_title"`
	UserID        uuid.UUID `json:"user_id"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

type WaitlistEntryView struct {
	ID         uuid.UUID `json:"id"`
	OfferingID uuid.UUID `json:"offering_id"`
	UserID     uuid.UUID `json:"user_id"`
	Position   int32     `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReferredUserView struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	SignedUpAt time.Time `json:"signed_up_at"`
}

type ReferralSummaryView struct {
	Code           string             `json:"code"`
	PendingCents   int64              `json:"pending_cents"`
	ConfirmedCents int64              `json:"confirmed_cents"`
	ReferredUsers  []ReferredUserView `json:"referred_users"`
}

type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	ReferredBy *uuid.UUID `json:"referred_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
