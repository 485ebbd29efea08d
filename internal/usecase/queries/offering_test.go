//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/usecase/queries"
	queriesmock "course-market/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferingQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockOfferingReadStore
	clock *clock.MockClock
	now   time.Time
	q     queries.OfferingQueries
}

func TestOfferingQueriesSuite(t *testing.T) {
	suite.Run(t, new(OfferingQueriesTestSuite))
}

func (s *OfferingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockOfferingReadStore(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.q = queries.NewOfferingQueries(s.store, s.clock)
}

func (s *OfferingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OfferingQueriesTestSuite) TestGetOfferingResolvesEarlyBirdPrice() {
	id := uuid.New()
	capacity := int32(30)
	earlyBird := int64(120000)
	endAt := s.now.Add(24 * time.Hour)

	s.store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.OfferingView{
		ID:                  id,
		Title:               "Intro to Distributed Systems",
		Capacity:            &capacity,
		EnrolledCount:       12,
		RegularPriceCents:   150000,
		EarlyBirdPriceCents: &earlyBird,
		EarlyBirdEndAt:      &endAt,
	}, nil)

	view, err := s.q.GetOffering(context.Background(), id)
	s.Require().NoError(err)

	seatsLeft := int32(18)
	want := &queries.OfferingView{
		ID:                  id,
		Title:               "Intro to Distributed Systems",
		Capacity:            &capacity,
		EnrolledCount:       12,
		SeatsLeft:           &seatsLeft,
		RegularPriceCents:   150000,
		EarlyBirdPriceCents: &earlyBird,
		EarlyBirdEndAt:      &endAt,
		EffectivePriceCents: 120000,
		EarlyBirdActive:     true,
	}
	if diff := cmp.Diff(want, view, cmpopts.IgnoreFields(queries.OfferingView{}, "CreatedAt", "UpdatedAt")); diff != "" {
		s.Failf("offering view mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *OfferingQueriesTestSuite) TestGetOfferingAfterEarlyBirdCutoff() {
	id := uuid.New()
	earlyBird := int64(120000)
	endAt := s.now.Add(-time.Second)

	s.store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.OfferingView{
		ID:                  id,
		RegularPriceCents:   150000,
		EarlyBirdPriceCents: &earlyBird,
		EarlyBirdEndAt:      &endAt,
	}, nil)

	view, err := s.q.GetOffering(context.Background(), id)
	s.Require().NoError(err)
	s.Equal(int64(150000), view.EffectivePriceCents)
	s.False(view.EarlyBirdActive)
}

func (s *OfferingQueriesTestSuite) TestGetOfferingUnlimitedCapacityHasNoSeatsLeft() {
	id := uuid.New()
	s.store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.OfferingView{
		ID:                id,
		RegularPriceCents: 90000,
		EnrolledCount:     500,
	}, nil)

	view, err := s.q.GetOffering(context.Background(), id)
	s.Require().NoError(err)
	s.Nil(view.SeatsLeft)
}

func (s *OfferingQueriesTestSuite) TestGetOfferingNotFound() {
	id := uuid.New()
	s.store.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("no offering", nil, infra.KindNotFound))

	_, err := s.q.GetOffering(context.Background(), id)
	s.Require().ErrorIs(err, queries.ErrOfferingNotFound)
}

func (s *OfferingQueriesTestSuite) TestListOfferingsResolvesEveryView() {
	capacity := int32(2)
	s.store.EXPECT().List(gomock.Any()).Return([]*queries.OfferingView{
		{ID: uuid.New(), RegularPriceCents: 100000, Capacity: &capacity, EnrolledCount: 2},
		{ID: uuid.New(), RegularPriceCents: 50000},
	}, nil)

	views, err := s.q.ListOfferings(context.Background())
	s.Require().NoError(err)
	s.Require().Len(views, 2)

	s.Require().NotNil(views[0].SeatsLeft)
	s.Equal(int32(0), *views[0].SeatsLeft)
	s.Equal(int64(100000), views[0].EffectivePriceCents)
	s.Nil(views[1].SeatsLeft)
	s.Equal(int64(50000), views[1].EffectivePriceCents)
}
