package api

import (
	"errors"
	"net/http"

	"course-market/internal/handler/dto/request"
	"course-market/internal/handler/dto/response"
	"course-market/internal/handler/httperr"
	"course-market/internal/handler/middleware"
	"course-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Checkout
// @Description Purchase an offering: price resolution, optional coupon, seat or waitlist
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body request.CheckoutRequest true "Checkout request"
// @Success 201 {object} response.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req request.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), commands.CheckoutParams{
		OfferingID: req.OfferingID,
		UserID:     userID,
		CouponCode: req.GetCouponCode(),
	}, idempotencyKey)
	if err != nil {
		h.renderCheckoutError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromCheckoutResult(result))
}

func (h *CheckoutHandler) renderCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOfferingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
	case errors.Is(err, commands.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, commands.ErrCouponInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon code", nil)
	case errors.Is(err, commands.ErrCouponExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Coupon expired", nil)
	case errors.Is(err, commands.ErrCouponAlreadyRedeemed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already redeemed", nil)
	case errors.Is(err, commands.ErrAlreadyEnrolled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Already enrolled in this offering", nil)
	case errors.Is(err, commands.ErrAlreadyWaitlisted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Already on the waitlist for this offering", nil)
	case errors.Is(err, commands.ErrPaymentFailed):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment failed", nil)
	case errors.Is(err, commands.ErrDuplicateRequest):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate request with different parameters", nil)
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is currently being processed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
	}
}

func (h *CheckoutHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, commands.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
