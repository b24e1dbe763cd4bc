package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caleb-rm/worship-rota-api/internal/service"
	"github.com/caleb-rm/worship-rota-api/pkg/response"
)

type scheduleService interface {
	Build(ctx context.Context) (*service.ScheduleResult, error)
	Export(ctx context.Context, format string) ([]byte, string, string, error)
}

type scheduleObserver interface {
	ObserveScheduleBuild(duration time.Duration, stale bool)
}

// ScheduleHandler exposes the materialized Sunday rota.
type ScheduleHandler struct {
	service scheduleService
	metrics scheduleObserver
}

// NewScheduleHandler builds a new handler. Metrics may be nil.
func NewScheduleHandler(svc scheduleService, metrics scheduleObserver) *ScheduleHandler {
	return &ScheduleHandler{service: svc, metrics: metrics}
}

// Get godoc
// @Summary Get the materialized schedule
// @Description Every Sunday from today through the end of next year, plus configured special dates. Served from the last-good snapshot when live data is unavailable.
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	start := time.Now()
	result, err := h.service.Build(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveScheduleBuild(time.Since(start), result.Stale)
	}

	var meta map[string]interface{}
	if result.Stale {
		meta = map[string]interface{}{"stale": true}
	}
	response.JSON(c, http.StatusOK, result.Days, nil, meta)
}

// Export godoc
// @Summary Export the schedule
// @Tags Schedule
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /schedule/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	data, contentType, filename, err := h.service.Export(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
