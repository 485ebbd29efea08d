//go:build e2e

package referral_test

import (
	"net/http"
	"testing"

	"course-market/internal/handler/dto/request"
	"course-market/internal/handler/dto/response"
	"course-market/tests/common/authtest"
	"course-market/tests/common/dbtest"
	"course-market/tests/common/httptest"
	"course-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	referralMeURL = "/api/referrals/me"
	checkoutURL   = "/api/checkout"
)

type ReferralSuite struct {
	e2e.SharedSuite
}

func (s *ReferralSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReferralSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReferralSuite))
}

func (s *ReferralSuite) getSummary(token string) *response.ReferralSummaryResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, referralMeURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code, "summary failed: %s", w.Body.String())

	var summary response.ReferralSummaryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &summary))
	return &summary
}

func (s *ReferralSuite) TestReferralLifecycle() {
	s.Run("Normal case: Referred signup creates a pending reward", func() {
		t := s.T()

		referrer := authtest.SignupUser(t, s.Router, "referrer@example.com", "password123")
		authtest.SignupUserWithReferral(t, s.Router, "referee@example.com", "password123", referrer.ReferralCode)

		summary := s.getSummary(referrer.AccessToken)
		require.Equal(t, referrer.ReferralCode, summary.Code)
		require.Equal(t, int64(50000), summary.PendingCents)
		require.Equal(t, int64(0), summary.ConfirmedCents)
		require.Len(t, summary.ReferredUsers, 1)
		require.Equal(t, "referee@example.com", summary.ReferredUsers[0].Email)
	})

	s.Run("Normal case: Referee's first purchase confirms both rewards", func() {
		t := s.T()

		referrer := authtest.SignupUser(t, s.Router, "mentor@example.com", "password123")
		referee := authtest.SignupUserWithReferral(t, s.Router, "buyer@example.com", "password123", referrer.ReferralCode)

		offeringID := dbtest.CreateTestOffering(t, s.DB, "Referred Course", nil, 90000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
			request.CheckoutRequest{OfferingID: offeringID}, referee.AccessToken,
			map[string]string{"Idempotency-Key": uuid.New().String()})
		require.Equal(t, http.StatusCreated, w.Code, "checkout failed: %s", w.Body.String())

		summary := s.getSummary(referrer.AccessToken)
		require.Equal(t, int64(0), summary.PendingCents, "signup reward should no longer be pending")
		require.Equal(t, int64(150000), summary.ConfirmedCents, "signup and purchase rewards should both be confirmed")
	})

	s.Run("Normal case: A second purchase does not double rewards", func() {
		t := s.T()

		referrer := authtest.SignupUser(t, s.Router, "coach@example.com", "password123")
		referee := authtest.SignupUserWithReferral(t, s.Router, "repeat@example.com", "password123", referrer.ReferralCode)

		offeringA := dbtest.CreateTestOffering(t, s.DB, "First Course", nil, 90000)
		offeringB := dbtest.CreateTestOffering(t, s.DB, "Second Course", nil, 90000)

		for _, offeringID := range []uuid.UUID{offeringA, offeringB} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
				request.CheckoutRequest{OfferingID: offeringID}, referee.AccessToken,
				map[string]string{"Idempotency-Key": uuid.New().String()})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		summary := s.getSummary(referrer.AccessToken)
		require.Equal(t, int64(150000), summary.ConfirmedCents)
	})

	s.Run("Normal case: Unreferred user has an empty summary", func() {
		t := s.T()

		solo := authtest.SignupUser(t, s.Router, "solo@example.com", "password123")

		summary := s.getSummary(solo.AccessToken)
		require.Equal(t, solo.ReferralCode, summary.Code)
		require.Equal(t, int64(0), summary.PendingCents)
		require.Equal(t, int64(0), summary.ConfirmedCents)
		require.Empty(t, summary.ReferredUsers)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, referralMeURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
