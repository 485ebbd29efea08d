//go:build e2e

package offering_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"course-market/internal/domain/user"
	"course-market/internal/handler/dto/response"
	"course-market/internal/pkg/ptr"
	"course-market/tests/common/authtest"
	"course-market/tests/common/builder"
	"course-market/tests/common/dbtest"
	"course-market/tests/common/httptest"
	"course-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offeringsURL = "/api/offerings"
	offeringURL  = "/api/offerings/%s"
	enrollURL    = "/api/offerings/%s/enroll"
	waitlistURL  = "/api/offerings/%s/waitlist"
)

type OfferingSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestOfferingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OfferingSuite))
}

func (s *OfferingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *OfferingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func (s *OfferingSuite) adminToken(email string) string {
	t := s.T()
	adminID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleAdmin))
	return s.jwtHelper.GenerateToken(t, adminID, user.RoleAdmin)
}

// =============================================================================
// TestCreateOffering - Offering creation API tests
// =============================================================================

func (s *OfferingSuite) TestCreateOffering() {
	s.Run("Normal case: Admin can create an early-bird offering", func() {
		t := s.T()

		token := s.adminToken("admin@example.com")
		endAt := time.Now().Add(48 * time.Hour)

		reqBody := builder.NewOfferingBuilder().
			WithCapacity(20).
			WithRegularPrice(150000).
			WithEarlyBird(120000, endAt).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offeringsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create offering: %s", w.Body.String())

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created["id"])

		// Detail shows the early-bird price while the window is open.
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(offeringURL, created["id"]), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.OfferingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, int64(120000), detail.EffectivePriceCents)
		require.True(t, detail.EarlyBirdActive)
		require.NotNil(t, detail.SeatsLeft)
		require.Equal(t, int32(20), *detail.SeatsLeft)
	})

	s.Run("Error case: Early-bird price without an end date fails validation", func() {
		t := s.T()

		token := s.adminToken("admin2@example.com")

		reqBody := builder.NewOfferingBuilder().BuildCreateRequestDTO()
		reqBody.EarlyBirdPriceCents = ptr.To[int64](120000)
		reqBody.EarlyBirdEndAt = nil

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offeringsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Permission test - Student cannot create offerings", func() {
		t := s.T()

		student := authtest.SignupUser(t, s.Router, "student@example.com", "password123")

		reqBody := builder.NewOfferingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offeringsURL, reqBody, student.AccessToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestEnrollOrWaitlist - Free enrollment API tests
// =============================================================================

func (s *OfferingSuite) TestEnrollOrWaitlist() {
	s.Run("Normal case: Enrollment takes a seat until capacity, then waitlists", func() {
		t := s.T()

		offeringID := dbtest.CreateTestOffering(t, s.DB, "One Seat Workshop", ptr.To[int32](1), 90000)

		first := authtest.SignupUser(t, s.Router, "seat@example.com", "password123")
		second := authtest.SignupUser(t, s.Router, "bench@example.com", "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil, first.AccessToken)
		require.Equal(t, http.StatusCreated, w1.Code)

		var r1 response.EnrollOrWaitlistResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &r1))
		require.Equal(t, "ENROLLED", r1.Outcome)
		require.NotNil(t, r1.EnrollmentID)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil, second.AccessToken)
		require.Equal(t, http.StatusCreated, w2.Code)

		var r2 response.EnrollOrWaitlistResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &r2))
		require.Equal(t, "WAITLISTED", r2.Outcome)
		require.NotNil(t, r2.WaitlistPosition)
		require.Equal(t, int32(1), *r2.WaitlistPosition)

		// Waitlisted user can read back their position.
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(waitlistURL, offeringID), nil, second.AccessToken)
		require.Equal(t, http.StatusOK, pw.Code)

		var pos response.WaitlistPositionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &pos))
		require.Equal(t, int32(1), pos.Position)
	})

	s.Run("Error case: Enrolling twice conflicts", func() {
		t := s.T()

		offeringID := dbtest.CreateTestOffering(t, s.DB, "Open Workshop", nil, 90000)
		signup := authtest.SignupUser(t, s.Router, "eager@example.com", "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil, signup.AccessToken)
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil, signup.AccessToken)
		require.Equal(t, http.StatusConflict, w2.Code)
	})

	s.Run("Error case: Re-enrolling at a full offering conflicts instead of waitlisting", func() {
		t := s.T()

		offeringID := dbtest.CreateTestOffering(t, s.DB, "Last Seat Workshop", ptr.To[int32](1), 90000)
		signup := authtest.SignupUser(t, s.Router, "holder@example.com", "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil, signup.AccessToken)
		require.Equal(t, http.StatusCreated, w1.Code)

		var r1 response.EnrollOrWaitlistResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &r1))
		require.Equal(t, "ENROLLED", r1.Outcome)

		// The offering is now full; the seat holder retrying must get the
		// duplicate-enrollment answer, not a waitlist spot.
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil, signup.AccessToken)
		require.Equal(t, http.StatusConflict, w2.Code)

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(waitlistURL, offeringID), nil, signup.AccessToken)
		require.Equal(t, http.StatusNotFound, pw.Code, "Seat holder must not end up on the waitlist")
	})

	s.Run("Error case: Unknown offering returns not found", func() {
		t := s.T()

		signup := authtest.SignupUser(t, s.Router, "ghost@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(enrollURL, uuid.New()), nil, signup.AccessToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestConcurrentEnrollment - Capacity invariant under contention
// =============================================================================

func (s *OfferingSuite) TestConcurrentEnrollment() {
	s.Run("Property: N competing enrollments yield exactly C seats and N-C gapless positions", func() {
		t := s.T()

		const total = 6
		const capacity int32 = 2
		offeringID := dbtest.CreateTestOffering(t, s.DB, "Contested Workshop", ptr.To[int32](capacity), 90000)

		tokens := make([]string, total)
		for i := range tokens {
			signup := authtest.SignupUser(t, s.Router, fmt.Sprintf("racer%d@example.com", i), "password123")
			tokens[i] = signup.AccessToken
		}

		type outcome struct {
			status   int
			result   response.EnrollOrWaitlistResponse
			parseErr error
		}
		results := make(chan outcome, total)

		var wg sync.WaitGroup
		for _, token := range tokens {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()

				req := nethttptest.NewRequest(http.MethodPost, fmt.Sprintf(enrollURL, offeringID), nil)
				req.Header.Set("Authorization", "Bearer "+token)
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)

				var res response.EnrollOrWaitlistResponse
				err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&res)
				results <- outcome{status: w.Code, result: res, parseErr: err}
			}(token)
		}
		wg.Wait()
		close(results)

		enrolled := 0
		var positions []int32
		for out := range results {
			require.NoError(t, out.parseErr)
			require.Equal(t, http.StatusCreated, out.status)
			switch out.result.Outcome {
			case "ENROLLED":
				enrolled++
			case "WAITLISTED":
				require.NotNil(t, out.result.WaitlistPosition)
				positions = append(positions, *out.result.WaitlistPosition)
			default:
				t.Fatalf("unexpected outcome %q", out.result.Outcome)
			}
		}

		require.Equal(t, int(capacity), enrolled, "Seats granted must equal capacity exactly")
		require.Len(t, positions, total-int(capacity))

		sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })
		for i, p := range positions {
			require.Equal(t, int32(i+1), p, "Waitlist positions must be gapless from 1")
		}

		// Read model agrees: no seats left, count pinned at capacity.
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(offeringURL, offeringID), nil, "")
		var detail response.OfferingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, capacity, detail.EnrolledCount)
		require.NotNil(t, detail.SeatsLeft)
		require.Equal(t, int32(0), *detail.SeatsLeft)
	})
}
