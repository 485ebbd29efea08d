//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"course-market/internal/domain/user"
	"course-market/internal/handler/api"
	"course-market/internal/usecase/commands"
	"course-market/tests/common/builder"
	"course-market/tests/common/httptest"
	"course-market/tests/common/testutil"
	commandsmock "course-market/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.POST("/checkout", authMiddleware, s.handler.Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/checkout"
	offering := builder.NewOfferingBuilder()
	reqBody := map[string]any{"offering_id": offering.ID.String()}

	s.Run("success: returns 201 Created when enrolled", func() {
		enrollmentID := uuid.New()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{
				Outcome:         commands.OutcomeEnrolled,
				BasePriceCents:  150000,
				FinalPriceCents: 150000,
				EnrollmentID:    &enrollmentID,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", s.idempotencyHeader())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(commands.OutcomeEnrolled, body["outcome"])
		s.Equal(enrollmentID.String(), body["enrollmentId"])
	})

	s.Run("success: returns 200 OK for replayed idempotency key", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{
				Outcome:         commands.OutcomeEnrolled,
				BasePriceCents:  150000,
				FinalPriceCents: 150000,
				IsReplayed:      true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", s.idempotencyHeader())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(commands.OutcomeEnrolled, body["outcome"])
	})

	s.Run("success: waitlisted response carries the position", func() {
		position := int32(4)
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{
				Outcome:          commands.OutcomeWaitlisted,
				BasePriceCents:   150000,
				FinalPriceCents:  150000,
				WaitlistPosition: &position,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", s.idempotencyHeader())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(commands.OutcomeWaitlisted, body["outcome"])
		s.Equal(float64(position), body["waitlistPosition"])
	})

	s.Run("error: 400 Bad Request without Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request for missing offering_id", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("offering_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token", s.idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", s.idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	errorCases := []struct {
		name       string
		commandErr error
		expectCode int
		expectMsg  string
	}{
		{"offering not found", commands.ErrOfferingNotFound, http.StatusNotFound, "Offering not found"},
		{"coupon not found", commands.ErrCouponNotFound, http.StatusNotFound, "Coupon not found"},
		{"invalid coupon code", commands.ErrCouponInvalid, http.StatusBadRequest, "Invalid coupon code"},
		{"expired coupon", commands.ErrCouponExpired, http.StatusGone, "Coupon expired"},
		{"coupon already redeemed", commands.ErrCouponAlreadyRedeemed, http.StatusConflict, "Coupon already redeemed"},
		{"already enrolled", commands.ErrAlreadyEnrolled, http.StatusConflict, "Already enrolled"},
		{"already waitlisted", commands.ErrAlreadyWaitlisted, http.StatusConflict, "Already on the waitlist"},
		{"payment failed", commands.ErrPaymentFailed, http.StatusPaymentRequired, "Payment failed"},
		{"key reused with different params", commands.ErrDuplicateRequest, http.StatusConflict, "Duplicate request"},
		{"checkout in progress", commands.ErrIdempotencyInProgress, http.StatusConflict, "being processed"},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.commandErr).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", s.idempotencyHeader())
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *CheckoutHandlerTestSuite) TestCheckoutPassesCouponCode() {
	coupon := builder.NewCouponBuilder()
	reqBody := map[string]any{
		"offering_id": uuid.NewString(),
		"coupon_code": "  " + coupon.Code + "  ",
	}

	s.mockCommands.EXPECT().
		Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params commands.CheckoutParams, _ uuid.UUID) (*commands.CheckoutResult, error) {
			s.Require().NotNil(params.CouponCode)
			s.Equal(coupon.Code, *params.CouponCode)
			s.Equal(s.userID, params.UserID)
			return &commands.CheckoutResult{Outcome: commands.OutcomeEnrolled, CouponRedeemed: true}, nil
		}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody, "bearer-token", s.idempotencyHeader())

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Equal(true, body["couponRedeemed"])
}
