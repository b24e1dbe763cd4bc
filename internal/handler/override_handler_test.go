package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

type overrideServiceMock struct {
	clearErr error
}

func (m *overrideServiceMock) List(ctx context.Context) ([]models.ManualOverride, error) {
	return []models.ManualOverride{{Date: "2025-09-21", TeamID: 3}}, nil
}

func (m *overrideServiceMock) Set(ctx context.Context, date string, req dto.OverrideRequest) (*models.ManualOverride, error) {
	return &models.ManualOverride{Date: date, TeamID: req.TeamID}, nil
}

func (m *overrideServiceMock) Clear(ctx context.Context, date string) error {
	return m.clearErr
}

func TestOverrideHandlerSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewOverrideHandler(&overrideServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/overrides/2025-09-21", bytes.NewBufferString(`{"team_id":3}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "date", Value: "2025-09-21"}}

	handler.Set(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-09-21")
}

func TestOverrideHandlerClearNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewOverrideHandler(&overrideServiceMock{clearErr: appErrors.Clone(appErrors.ErrNotFound, "no override for that date")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/overrides/2025-09-21", nil)
	c.Params = gin.Params{{Key: "date", Value: "2025-09-21"}}

	handler.Clear(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
