package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analyticsUsecase "github.com/meettrack-team/meettrack/internal/usecase/analytics"
)

// Analytics handles analytics HTTP requests
type Analytics struct {
	analyticsService analyticsUsecase.Service
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService analyticsUsecase.Service, logger *zap.Logger) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// GetSummary handles GET /analytics
// @Summary      Get meeting analytics
// @Description  Aggregates meeting activity over a trailing window of days
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        timeRange  query     int  false  "Window size in days (default 30)"
// @Success      200  {object}  analytics.Summary  "Aggregated analytics"
// @Failure      400  {object}  map[string]interface{}  "Invalid time range"
// @Router       /analytics [get]
func (h *Analytics) GetSummary(c echo.Context) error {
	timeRange := analyticsUsecase.DefaultTimeRange
	if raw := c.QueryParam("timeRange"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_time_range",
				"message": "timeRange must be a positive integer number of days",
			})
		}
		timeRange = parsed
	}

	summary, err := h.analyticsService.GetSummary(c.Request().Context(), timeRange)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, summary)
}
