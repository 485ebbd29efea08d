//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"course-market/internal/infra"
	"course-market/internal/usecase/queries"
	queriesmock "course-market/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReferralQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockReferralReadStore
	q     queries.ReferralQueries
}

func TestReferralQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReferralQueriesTestSuite))
}

func (s *ReferralQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReferralReadStore(s.ctrl)
	s.q = queries.NewReferralQueries(s.store)
}

func (s *ReferralQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReferralQueriesTestSuite) TestGetReferralSummaryAggregatesRewards() {
	userID := uuid.New()
	refereeID := uuid.New()
	signedUpAt := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

	referred := []queries.ReferredUserView{
		{UserID: refereeID, Email: "referee@example.com", SignedUpAt: signedUpAt},
	}

	s.store.EXPECT().FindAccountCode(gomock.Any(), userID).Return("AB12CD", nil)
	s.store.EXPECT().SumRewardsByStatus(gomock.Any(), userID).Return(int64(50000), int64(150000), nil)
	s.store.EXPECT().ListReferredUsers(gomock.Any(), userID).Return(referred, nil)

	view, err := s.q.GetReferralSummary(context.Background(), userID)

	s.Require().NoError(err)
	want := &queries.ReferralSummaryView{
		Code:           "AB12CD",
		PendingCents:   50000,
		ConfirmedCents: 150000,
		ReferredUsers:  referred,
	}
	if diff := cmp.Diff(want, view); diff != "" {
		s.T().Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func (s *ReferralQueriesTestSuite) TestGetReferralSummaryWithNoActivity() {
	userID := uuid.New()

	s.store.EXPECT().FindAccountCode(gomock.Any(), userID).Return("XY99ZZ", nil)
	s.store.EXPECT().SumRewardsByStatus(gomock.Any(), userID).Return(int64(0), int64(0), nil)
	s.store.EXPECT().ListReferredUsers(gomock.Any(), userID).Return(nil, nil)

	view, err := s.q.GetReferralSummary(context.Background(), userID)

	s.Require().NoError(err)
	s.Equal("XY99ZZ", view.Code)
	s.Zero(view.PendingCents)
	s.Zero(view.ConfirmedCents)
	s.Empty(view.ReferredUsers)
}

func (s *ReferralQueriesTestSuite) TestGetReferralSummaryUnknownAccount() {
	userID := uuid.New()

	s.store.EXPECT().FindAccountCode(gomock.Any(), userID).
		Return("", infra.WrapRepoErr("no account", nil, infra.KindNotFound))

	view, err := s.q.GetReferralSummary(context.Background(), userID)

	s.Require().ErrorIs(err, queries.ErrReferralAccountNotFound)
	s.Nil(view)
}
