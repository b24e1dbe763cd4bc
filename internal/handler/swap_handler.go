package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
	"github.com/caleb-rm/worship-rota-api/pkg/response"
)

type swapService interface {
	List(ctx context.Context) ([]models.SwapRequest, error)
	Create(ctx context.Context, req dto.CreateSwapRequest) (*models.SwapRequest, error)
	Decide(ctx context.Context, id int64, req dto.SwapDecisionRequest) (*models.SwapRequest, error)
}

// SwapHandler exposes swap request endpoints.
type SwapHandler struct {
	service swapService
}

// NewSwapHandler builds a new handler.
func NewSwapHandler(service swapService) *SwapHandler {
	return &SwapHandler{service: service}
}

// List godoc
// @Summary List swap requests in creation order
// @Tags Swaps
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /swaps [get]
func (h *SwapHandler) List(c *gin.Context) {
	swaps, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, swaps, nil)
}

// Create godoc
// @Summary Create a pending swap request
// @Tags Swaps
// @Accept json
// @Produce json
// @Param payload body dto.CreateSwapRequest true "Swap payload"
// @Success 201 {object} response.Envelope
// @Router /swaps [post]
func (h *SwapHandler) Create(c *gin.Context) {
	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid swap payload"))
		return
	}
	swap, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, swap)
}

// Decide godoc
// @Summary Approve or reject a pending swap request
// @Tags Swaps
// @Accept json
// @Produce json
// @Param id path int true "Swap request ID"
// @Param payload body dto.SwapDecisionRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /swaps/{id}/status [patch]
func (h *SwapHandler) Decide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid swap id"))
		return
	}
	var req dto.SwapDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}
	swap, err := h.service.Decide(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, swap, nil)
}
