package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/presenter"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/dashboard"
)

// Dashboard handles dashboard HTTP requests
type Dashboard struct {
	dashboardService dashboard.Service
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService dashboard.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Metrics handles GET /dashboard/metrics
// @Summary      Dashboard metrics
// @Description  Aggregates action item counts, completion rate, overdue count and per-assignee stats
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboard.MetricsResponse
// @Router       /dashboard/metrics [get]
func (h *Dashboard) Metrics(c echo.Context) error {
	metrics, err := h.dashboardService.ComputeMetrics(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMetricsResponse(metrics))
}
