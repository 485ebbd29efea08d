package offering

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle              = errors.New("offering title must not be empty")
	ErrInvalidPrice            = errors.New("offering price must not be negative")
	ErrInvalidCapacity         = errors.New("offering capacity must be positive")
	ErrEarlyBirdWithoutEndDate = errors.New("early bird price requires an end date")
)

// Offering is a purchasable course or session. Capacity nil means unlimited
// seats. EnrolledCount is only ever advanced through the seat ledger's
// conditional update, so `enrolledCount <= capacity` holds whenever capacity
// is set.
type Offering struct {
	id                  uuid.UUID
	title               string
	capacity            *int32
	enrolledCount       int32
	regularPriceCents   int64
	earlyBirdPriceCents *int64
	earlyBirdEndAt      *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewOffering(
	title string,
	capacity *int32,
	regularPriceCents int64,
	earlyBirdPriceCents *int64,
	earlyBirdEndAt *time.Time,
) (*Offering, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if regularPriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if earlyBirdPriceCents != nil && *earlyBirdPriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if capacity != nil && *capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if earlyBirdPriceCents != nil && earlyBirdEndAt == nil {
		return nil, ErrEarlyBirdWithoutEndDate
	}

	return &Offering{
		id:                  uuid.New(),
		title:               title,
		capacity:            capacity,
		enrolledCount:       0,
		regularPriceCents:   regularPriceCents,
		earlyBirdPriceCents: earlyBirdPriceCents,
		earlyBirdEndAt:      earlyBirdEndAt,
	}, nil
}

// Restore rebuilds an offering from a persisted snapshot.
func Restore(
	id uuid.UUID,
	title string,
	capacity *int32,
	enrolledCount int32,
	regularPriceCents int64,
	earlyBirdPriceCents *int64,
	earlyBirdEndAt *time.Time,
	createdAt, updatedAt time.Time,
) *Offering {
	return &Offering{
		id:                  id,
		title:               title,
		capacity:            capacity,
		enrolledCount:       enrolledCount,
		regularPriceCents:   regularPriceCents,
		earlyBirdPriceCents: earlyBirdPriceCents,
		earlyBirdEndAt:      earlyBirdEndAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (o *Offering) ID() uuid.UUID               { return o.id }
func (o *Offering) Title() string               { return o.title }
func (o *Offering) Capacity() *int32            { return o.capacity }
func (o *Offering) EnrolledCount() int32        { return o.enrolledCount }
func (o *Offering) RegularPriceCents() int64    { return o.regularPriceCents }
func (o *Offering) EarlyBirdPriceCents() *int64 { return o.earlyBirdPriceCents }
func (o *Offering) EarlyBirdEndAt() *time.Time  { return o.earlyBirdEndAt }
func (o *Offering) CreatedAt() time.Time        { return o.createdAt }
func (o *Offering) UpdatedAt() time.Time        { return o.updatedAt }

// SeatsLeft returns the remaining seats, or nil for unlimited offerings.
func (o *Offering) SeatsLeft() *int32 {
	if o.capacity == nil {
		return nil
	}
	left := *o.capacity - o.enrolledCount
	if left < 0 {
		left = 0
	}
	return &left
}

func (o *Offering) IsFull() bool {
	if o.capacity == nil {
		return false
	}
	return o.enrolledCount >= *o.capacity
}
