package api

import (
	"errors"
	"net/http"

	"course-market/internal/handler/dto/request"
	"course-market/internal/handler/dto/response"
	"course-market/internal/handler/httperr"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(
	couponCommands commands.CouponCommands,
	couponQueries queries.CouponQueries,
) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Issue coupon
// @Description Issue a single-use discount coupon (admin only)
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateCouponRequest true "Coupon request"
// @Success 201 {object} response.CouponIssuedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req request.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.couponCommands.CreateCoupon(c.Request.Context(), commands.CreateCouponParams{
		AmountCents: req.AmountCents,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponAmountInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon amount must be positive", nil)
		case errors.Is(err, commands.ErrCouponExpiryInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon expiry must be in the future", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue coupon", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromCreateCouponResult(result))
}

// @Summary Validate coupon
// @Description Advisory check of a coupon code; redemption still races at checkout
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {object} response.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /coupons/{code}/validate [get]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	validation, err := h.couponQueries.ValidateCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCouponInvalidCode):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon code", nil)
		case errors.Is(err, queries.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, queries.ErrCouponConsumed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already used", nil)
		case errors.Is(err, queries.ErrCouponExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Coupon expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to validate coupon", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromCouponValidation(validation))
}
