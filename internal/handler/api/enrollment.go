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
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	enrollmentCommands commands.EnrollmentCommands
	enrollmentQueries  queries.EnrollmentQueries
}

func NewEnrollmentHandler(
	enrollmentCommands commands.EnrollmentCommands,
	enrollmentQueries queries.EnrollmentQueries,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentCommands: enrollmentCommands,
		enrollmentQueries:  enrollmentQueries,
	}
}

// @Summary Enroll
// @Description Take a seat in the offering, or join its waitlist when full
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 201 {object} response.EnrollOrWaitlistResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offerings/{id}/enroll [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	offeringID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offering ID", nil)
		return
	}

	result, err := h.enrollmentCommands.EnrollOrWaitlist(c.Request.Context(), offeringID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
		case errors.Is(err, commands.ErrAlreadyEnrolled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already enrolled in this offering", nil)
		case errors.Is(err, commands.ErrAlreadyWaitlisted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already on the waitlist for this offering", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Enrollment failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromEnrollOrWaitlistResult(result))
}

// @Summary List own enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.EnrollmentResponse
// @Failure 401 {object} map[string]string
// @Router /enrollments [get]
func (h *EnrollmentHandler) GetUserEnrollments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	views, err := h.enrollmentQueries.GetUserEnrollments(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list enrollments", nil)
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollmentViews(views))
}

// @Summary Get waitlist position
// @Description The caller's position on the offering's waitlist
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} response.WaitlistPositionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id}/waitlist [get]
func (h *EnrollmentHandler) GetWaitlistPosition(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	offeringID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offering ID", nil)
		return
	}

	view, err := h.enrollmentQueries.GetWaitlistPosition(c.Request.Context(), offeringID, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrWaitlistEntryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not on the waitlist for this offering", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load waitlist position", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromWaitlistEntryView(view))
}
