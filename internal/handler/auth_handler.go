package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
	"github.com/caleb-rm/worship-rota-api/pkg/response"
)

type authService interface {
	Authenticate(ctx context.Context, req dto.AccessRequest) (*dto.SessionResponse, error)
}

// AuthHandler exposes the access-code exchange endpoint.
type AuthHandler struct {
	service authService
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Access godoc
// @Summary Exchange an access code for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.AccessRequest true "Access code"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/access [post]
func (h *AuthHandler) Access(c *gin.Context) {
	var req dto.AccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid access payload"))
		return
	}

	session, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}
