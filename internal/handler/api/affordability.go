package api

import (
	"HousePulse/internal/domain/models"
	"HousePulse/internal/usecase"
	xhttp "HousePulse/pkg/http"
	xlogger "HousePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AffordabilityHandler serves the Zillow affordability endpoints.
type AffordabilityHandler struct {
	logger *xlogger.Logger
	agg    *usecase.AffordabilityAggregator
}

func NewAffordabilityHandler(logger *xlogger.Logger, agg *usecase.AffordabilityAggregator) *AffordabilityHandler {
	return &AffordabilityHandler{logger: logger, agg: agg}
}

func (h *AffordabilityHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/affordability-summary", h.Summary)
	g.GET("/affordability-metrics/:region", h.RegionMetrics)
	g.GET("/affordability-regions", h.Regions)
}

func (h *AffordabilityHandler) Summary(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.agg.Summary(c.Request().Context()))
}

func (h *AffordabilityHandler) RegionMetrics(c echo.Context) error {
	req := &models.AffordabilityMetricsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	points := h.agg.RegionSeries(c.Request().Context(), req.Region)
	return xhttp.SuccessResponse(c, points)
}

func (h *AffordabilityHandler) Regions(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.agg.Regions(c.Request().Context()))
}
