//go:build unit || e2e

package builder

import (
	"time"

	reqdto "course-market/internal/handler/dto/request"
	"course-market/internal/pkg/ptr"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferingBuilder struct {
	ID                  uuid.UUID
	Title               string
	Capacity            *int32
	EnrolledCount       int32
	RegularPriceCents   int64
	EarlyBirdPriceCents *int64
	EarlyBirdEndAt      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewOfferingBuilder() *OfferingBuilder {
	now := time.Now()
	return &OfferingBuilder{
		ID:                uuid.New(),
		Title:             "Intro to Distributed Systems",
		Capacity:          ptr.To[int32](30),
		EnrolledCount:     0,
		RegularPriceCents: 150000,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *OfferingBuilder) WithCapacity(capacity int32) *OfferingBuilder {
	b.Capacity = &capacity
	return b
}

func (b *OfferingBuilder) WithUnlimitedCapacity() *OfferingBuilder {
	b.Capacity = nil
	return b
}

func (b *OfferingBuilder) WithEnrolledCount(count int32) *OfferingBuilder {
	b.EnrolledCount = count
	return b
}

func (b *OfferingBuilder) WithRegularPrice(cents int64) *OfferingBuilder {
	b.RegularPriceCents = cents
	return b
}

func (b *OfferingBuilder) WithEarlyBird(cents int64, endAt time.Time) *OfferingBuilder {
	b.EarlyBirdPriceCents = &cents
	b.EarlyBirdEndAt = &endAt
	return b
}

func (b *OfferingBuilder) AsFull() *OfferingBuilder {
	b.Capacity = ptr.To[int32](30)
	b.EnrolledCount = 30
	return b
}

func (b *OfferingBuilder) BuildCreateRequestDTO() reqdto.CreateOfferingRequest {
	return reqdto.CreateOfferingRequest{
		Title:               b.Title,
		Capacity:            b.Capacity,
		RegularPriceCents:   b.RegularPriceCents,
		EarlyBirdPriceCents: b.EarlyBirdPriceCents,
		EarlyBirdEndAt:      b.EarlyBirdEndAt,
	}
}

func (b *OfferingBuilder) BuildSnapshot() *commands.OfferingSnapshot {
	return &commands.OfferingSnapshot{
		ID:                  b.ID,
		Title:               b.Title,
		Capacity:            b.Capacity,
		EnrolledCount:       b.EnrolledCount,
		RegularPriceCents:   b.RegularPriceCents,
		EarlyBirdPriceCents: b.EarlyBirdPriceCents,
		EarlyBirdEndAt:      b.EarlyBirdEndAt,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *OfferingBuilder) BuildView(now time.Time) *queries.OfferingView {
	effective := b.RegularPriceCents
	earlyBirdActive := false
	if b.EarlyBirdPriceCents != nil && b.EarlyBirdEndAt != nil && !now.After(*b.EarlyBirdEndAt) {
		effective = *b.EarlyBirdPriceCents
		earlyBirdActive = true
	}
	var seatsLeft *int32
	if b.Capacity != nil {
		left := *b.Capacity - b.EnrolledCount
		seatsLeft = &left
	}
	return &queries.OfferingView{
		ID:                  b.ID,
		Title:               b.Title,
		Capacity:            b.Capacity,
		EnrolledCount:       b.EnrolledCount,
		SeatsLeft:           seatsLeft,
		RegularPriceCents:   b.RegularPriceCents,
		EarlyBirdPriceCents: b.EarlyBirdPriceCents,
		EarlyBirdEndAt:      b.EarlyBirdEndAt,
		EffectivePriceCents: effective,
		EarlyBirdActive:     earlyBirdActive,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}
