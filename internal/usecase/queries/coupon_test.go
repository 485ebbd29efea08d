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

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockCouponReadStore
	now   time.Time
	q     queries.CouponQueries
}

func TestCouponQueriesSuite(t *testing.T) {
	suite.Run(t, new(CouponQueriesTestSuite))
}

func (s *CouponQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockCouponReadStore(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.q = queries.NewCouponQueries(s.store, clock.NewMockClock(s.now))
}

func (s *CouponQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CouponQueriesTestSuite) activeView(code string) *queries.CouponView {
	return &queries.CouponView{
		ID:          uuid.New(),
		Code:        code,
		AmountCents: 100000,
		Status:      "ACTIVE",
		ExpiresAt:   s.now.Add(48 * time.Hour),
		CreatedAt:   s.now.Add(-time.Hour),
		UpdatedAt:   s.now.Add(-time.Hour),
	}
}

func (s *CouponQueriesTestSuite) TestValidateActiveCoupon() {
	s.store.EXPECT().FindByCode(gomock.Any(), "SAVE2024").Return(s.activeView("SAVE2024"), nil)

	validation, err := s.q.ValidateCoupon(context.Background(), "SAVE2024")
	s.Require().NoError(err)
	s.Equal("SAVE2024", validation.Code)
	s.Equal(int64(100000), validation.AmountCents)
}

func (s *CouponQueriesTestSuite) TestValidateNormalizesCode() {
	s.store.EXPECT().FindByCode(gomock.Any(), "SAVE2024").Return(s.activeView("SAVE2024"), nil)

	_, err := s.q.ValidateCoupon(context.Background(), "  save2024  ")
	s.Require().NoError(err)
}

func (s *CouponQueriesTestSuite) TestValidateMalformedCode() {
	_, err := s.q.ValidateCoupon(context.Background(), "x")
	s.Require().ErrorIs(err, queries.ErrCouponInvalidCode)
}

func (s *CouponQueriesTestSuite) TestValidateUnknownCode() {
	s.store.EXPECT().FindByCode(gomock.Any(), "UNKNOWN1").
		Return(nil, infra.WrapRepoErr("no coupon", nil, infra.KindNotFound))

	_, err := s.q.ValidateCoupon(context.Background(), "UNKNOWN1")
	s.Require().ErrorIs(err, queries.ErrCouponNotFound)
}

func (s *CouponQueriesTestSuite) TestValidateUsedCoupon() {
	usedBy := uuid.New()
	usedAt := s.now.Add(-time.Hour)
	view := s.activeView("SAVE2024")
	view.Status = "USED"
	view.UsedBy = &usedBy
	view.UsedAt = &usedAt
	s.store.EXPECT().FindByCode(gomock.Any(), "SAVE2024").Return(view, nil)

	_, err := s.q.ValidateCoupon(context.Background(), "SAVE2024")
	s.Require().ErrorIs(err, queries.ErrCouponConsumed)
}

func (s *CouponQueriesTestSuite) TestValidateExpiredCoupon() {
	view := s.activeView("SAVE2024")
	view.ExpiresAt = s.now.Add(-time.Minute)
	s.store.EXPECT().FindByCode(gomock.Any(), "SAVE2024").Return(view, nil)

	_, err := s.q.ValidateCoupon(context.Background(), "SAVE2024")
	s.Require().ErrorIs(err, queries.ErrCouponExpired)
}

func (s *CouponQueriesTestSuite) TestValidateCouponExpiringThisInstant() {
	view := s.activeView("SAVE2024")
	view.ExpiresAt = s.now
	s.store.EXPECT().FindByCode(gomock.Any(), "SAVE2024").Return(view, nil)

	// expires_at is exclusive: a coupon expiring exactly now is no longer valid
	_, err := s.q.ValidateCoupon(context.Background(), "SAVE2024")
	s.Require().ErrorIs(err, queries.ErrCouponExpired)
}
