package commands

import (
	"context"
	"time"

	"course-market/internal/domain/offering"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferingValidation = errs.New("offering validation failed")

type CreateOfferingParams struct {
	Title               string
	Capacity            *int32
	RegularPriceCents   int64
	EarlyBirdPriceCents *int64
	EarlyBirdEndAt      *time.Time
}

type OfferingCommands interface {
	CreateOffering(ctx context.Context, params CreateOfferingParams) (uuid.UUID, error)
}

type offeringCommandsImpl struct {
	offerings OfferingStore
}

func NewOfferingCommands(offerings OfferingStore) OfferingCommands {
	return &offeringCommandsImpl{offerings: offerings}
}

func (o *offeringCommandsImpl) CreateOffering(ctx context.Context, params CreateOfferingParams) (uuid.UUID, error) {
	entity, err := offering.NewOffering(
		params.Title,
		params.Capacity,
		params.RegularPriceCents,
		params.EarlyBirdPriceCents,
		params.EarlyBirdEndAt,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOfferingValidation)
	}

	id, err := o.offerings.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return id, nil
}
