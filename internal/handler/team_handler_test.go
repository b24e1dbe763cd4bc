package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
)

type teamServiceMock struct {
	teams []models.Team
}

func (m *teamServiceMock) List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	return m.teams, nil
}

func (m *teamServiceMock) Get(ctx context.Context, id int64) (*models.Team, error) {
	return &models.Team{ID: id, Leader: "Alice"}, nil
}

func (m *teamServiceMock) Create(ctx context.Context, req dto.TeamRequest) (*models.Team, error) {
	return &models.Team{ID: 1, Leader: req.Leader, Members: pq.StringArray(req.Members)}, nil
}

func (m *teamServiceMock) Update(ctx context.Context, id int64, req dto.TeamRequest) (*models.Team, error) {
	return &models.Team{ID: id, Leader: req.Leader, Members: pq.StringArray(req.Members)}, nil
}

func (m *teamServiceMock) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestTeamHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTeamHandler(&teamServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/teams", bytes.NewBufferString(`{"leader":"Alice","members":["Alice","Dan"]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
}

func TestTeamHandlerGetInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTeamHandler(&teamServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/teams/zero", nil)
	c.Params = gin.Params{{Key: "id", Value: "zero"}}

	handler.Get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTeamHandler(&teamServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/teams/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Delete(c)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
