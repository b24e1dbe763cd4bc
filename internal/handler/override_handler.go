package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
	"github.com/caleb-rm/worship-rota-api/pkg/response"
)

type overrideService interface {
	List(ctx context.Context) ([]models.ManualOverride, error)
	Set(ctx context.Context, date string, req dto.OverrideRequest) (*models.ManualOverride, error)
	Clear(ctx context.Context, date string) error
}

// OverrideHandler exposes manual override endpoints.
type OverrideHandler struct {
	service overrideService
}

// NewOverrideHandler builds a new handler.
func NewOverrideHandler(service overrideService) *OverrideHandler {
	return &OverrideHandler{service: service}
}

// List godoc
// @Summary List manual overrides
// @Tags Overrides
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /overrides [get]
func (h *OverrideHandler) List(c *gin.Context) {
	overrides, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overrides, nil)
}

// Set godoc
// @Summary Pin a team onto a date
// @Tags Overrides
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param payload body dto.OverrideRequest true "Override payload"
// @Success 200 {object} response.Envelope
// @Router /overrides/{date} [put]
func (h *OverrideHandler) Set(c *gin.Context) {
	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid override payload"))
		return
	}
	override, err := h.service.Set(c.Request.Context(), c.Param("date"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, override, nil)
}

// Clear godoc
// @Summary Remove the override for a date
// @Tags Overrides
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Router /overrides/{date} [delete]
func (h *OverrideHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.Param("date")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
