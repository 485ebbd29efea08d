package api

import (
	"errors"
	"net/http"

	"course-market/internal/handler/dto/response"
	"course-market/internal/handler/httperr"
	"course-market/internal/handler/middleware"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralQueries queries.ReferralQueries
}

func NewReferralHandler(referralQueries queries.ReferralQueries) *ReferralHandler {
	return &ReferralHandler{
		referralQueries: referralQueries,
	}
}

// @Summary Referral summary
// @Description The caller's referral code, reward balances, and referred users
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ReferralSummaryResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /referrals/me [get]
func (h *ReferralHandler) GetReferralSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	view, err := h.referralQueries.GetReferralSummary(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReferralAccountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Referral account not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load referral summary", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromReferralSummaryView(view))
}
