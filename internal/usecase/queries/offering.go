package queries

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferingNotFound = errs.New("offering not found")

type OfferingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferingView, error)
	List(ctx context.Context) ([]*OfferingView, error)
}

type OfferingQueries interface {
	GetOffering(ctx context.Context, id uuid.UUID) (*OfferingView, error)
	ListOfferings(ctx context.Context) ([]*OfferingView, error)
}

type offeringQueriesImpl struct {
	store OfferingReadStore
	clock clock.Clock
}

func NewOfferingQueries(store OfferingReadStore, clock clock.Clock) OfferingQueries {
	return &offeringQueriesImpl{store: store, clock: clock}
}

func (q *offeringQueriesImpl) GetOffering(ctx context.Context, id uuid.UUID) (*OfferingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, errs.Wrap(err, "failed to get offering")
	}
	resolveEffectivePrice(view, q.clock)
	return view, nil
}

func (q *offeringQueriesImpl) ListOfferings(ctx context.Context) ([]*OfferingView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list offerings")
	}
	for _, v := range views {
		resolveEffectivePrice(v, q.clock)
	}
	return views, nil
}

// resolveEffectivePrice fills the price fields for the current instant so the
// UI never computes pricing on its own.
func resolveEffectivePrice(v *OfferingView, clk clock.Clock) {
	now := clk.Now()
	v.EffectivePriceCents = v.RegularPriceCents
	v.EarlyBirdActive = false
	if v.EarlyBirdPriceCents != nil && v.EarlyBirdEndAt != nil && !now.After(*v.EarlyBirdEndAt) {
		v.EffectivePriceCents = *v.EarlyBirdPriceCents
		v.EarlyBirdActive = true
	}
	if v.Capacity != nil {
		left := *v.Capacity - v.EnrolledCount
		if left < 0 {
			left = 0
		}
		v.SeatsLeft = &left
	}
}
