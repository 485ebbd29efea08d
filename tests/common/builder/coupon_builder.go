//go:build unit || e2e

package builder

import (
	"time"

	reqdto "course-market/internal/handler/dto/request"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID          uuid.UUID
	Code        string
	AmountCents int64
	Status      string
	ExpiresAt   time.Time
	UsedBy      *uuid.UUID
	UsedAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:          uuid.New(),
		Code:        "SAVE2024",
		AmountCents: 100000,
		Status:      "ACTIVE",
		ExpiresAt:   now.Add(72 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithAmount(cents int64) *CouponBuilder {
	b.AmountCents = cents
	return b
}

func (b *CouponBuilder) AsExpired(now time.Time) *CouponBuilder {
	b.ExpiresAt = now.Add(-time.Hour)
	return b
}

func (b *CouponBuilder) AsUsed(userID uuid.UUID, at time.Time) *CouponBuilder {
	b.Status = "USED"
	b.UsedBy = &userID
	b.UsedAt = &at
	return b
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		AmountCents: b.AmountCents,
		ExpiresAt:   b.ExpiresAt,
	}
}

func (b *CouponBuilder) BuildSnapshot() *commands.CouponSnapshot {
	return &commands.CouponSnapshot{
		ID:          b.ID,
		Code:        b.Code,
		AmountCents: b.AmountCents,
		Status:      b.Status,
		ExpiresAt:   b.ExpiresAt,
		UsedBy:      b.UsedBy,
		UsedAt:      b.UsedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:          b.ID,
		Code:        b.Code,
		AmountCents: b.AmountCents,
		Status:      b.Status,
		ExpiresAt:   b.ExpiresAt,
		UsedBy:      b.UsedBy,
		UsedAt:      b.UsedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
