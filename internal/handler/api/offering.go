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
	"github.com/google/uuid"
)

type OfferingHandler struct {
	offeringCommands commands.OfferingCommands
	offeringQueries  queries.OfferingQueries
}

func NewOfferingHandler(
	offeringCommands commands.OfferingCommands,
	offeringQueries queries.OfferingQueries,
) *OfferingHandler {
	return &OfferingHandler{
		offeringCommands: offeringCommands,
		offeringQueries:  offeringQueries,
	}
}

// @Summary Create offering
// @Description Create a course offering (admin only)
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateOfferingRequest true "Offering request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /offerings [post]
func (h *OfferingHandler) CreateOffering(c *gin.Context) {
	var req request.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.offeringCommands.CreateOffering(c.Request.Context(), commands.CreateOfferingParams{
		Title:               req.Title,
		Capacity:            req.Capacity,
		RegularPriceCents:   req.RegularPriceCents,
		EarlyBirdPriceCents: req.EarlyBirdPriceCents,
		EarlyBirdEndAt:      req.EarlyBirdEndAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Offering validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create offering", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List offerings
// @Description All offerings with effective prices for the current instant
// @Tags offerings
// @Produce json
// @Success 200 {array} response.OfferingResponse
// @Router /offerings [get]
func (h *OfferingHandler) ListOfferings(c *gin.Context) {
	views, err := h.offeringQueries.ListOfferings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offerings", nil)
		return
	}

	c.JSON(http.StatusOK, response.FromOfferingViews(views))
}

// @Summary Get offering
// @Description One offering with its effective price and seats left
// @Tags offerings
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} response.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id} [get]
func (h *OfferingHandler) GetOffering(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offering ID", nil)
		return
	}

	view, err := h.offeringQueries.GetOffering(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOfferingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offering", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromOfferingView(view))
}
