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

type swapServiceMock struct {
	swaps     []models.SwapRequest
	decideErr error
}

func (m *swapServiceMock) List(ctx context.Context) ([]models.SwapRequest, error) {
	return m.swaps, nil
}

func (m *swapServiceMock) Create(ctx context.Context, req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	return &models.SwapRequest{
		ID:         1757000000000,
		FromTeamID: req.FromTeamID,
		ToTeamID:   req.ToTeamID,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Status:     models.SwapPending,
	}, nil
}

func (m *swapServiceMock) Decide(ctx context.Context, id int64, req dto.SwapDecisionRequest) (*models.SwapRequest, error) {
	if m.decideErr != nil {
		return nil, m.decideErr
	}
	return &models.SwapRequest{ID: id, Status: models.SwapStatus(req.Status)}, nil
}

func TestSwapHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSwapHandler(&swapServiceMock{})

	body := `{"from_team_id":1,"to_team_id":2,"from_date":"2025-09-07","to_date":"2025-09-21"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/swaps", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"pending"`)
}

func TestSwapHandlerDecideInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSwapHandler(&swapServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/swaps/abc/status", bytes.NewBufferString(`{"status":"approved"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Decide(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwapHandlerDecideConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSwapHandler(&swapServiceMock{decideErr: appErrors.ErrSwapFinalized})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/swaps/100/status", bytes.NewBufferString(`{"status":"approved"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "100"}}

	handler.Decide(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}
