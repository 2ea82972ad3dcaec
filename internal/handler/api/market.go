package api

import (
	"HousePulse/internal/domain/models"
	domrepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/usecase"
	xhttp "HousePulse/pkg/http"
	xlogger "HousePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler serves the inventory-side endpoints.
type MarketHandler struct {
	logger *xlogger.Logger
	agg    *usecase.MarketAggregator
}

func NewMarketHandler(logger *xlogger.Logger, agg *usecase.MarketAggregator) *MarketHandler {
	return &MarketHandler{logger: logger, agg: agg}
}

func (h *MarketHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/zillow-data", h.ZillowData)
	g.GET("/market-balance", h.MarketBalance)
	g.GET("/regions", h.Regions)
	g.GET("/metrics/:granularity/:region", h.RegionMetrics)
}

func (h *MarketHandler) ZillowData(c echo.Context) error {
	data, err := h.agg.ZillowData(c.Request().Context())
	if err != nil {
		h.logger.Error("zillow data fetch failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, data)
}

func (h *MarketHandler) MarketBalance(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.agg.MarketBalance(c.Request().Context()))
}

func (h *MarketHandler) Regions(c echo.Context) error {
	req := &models.RegionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	g, ok := domrepo.NormalizeGranularity(req.Granularity)
	if !ok {
		return xhttp.BadRequestResponse(c, "unknown granularity")
	}

	refs := h.agg.Regions(c.Request().Context(), g)
	return xhttp.SuccessResponse(c, refs)
}

func (h *MarketHandler) RegionMetrics(c echo.Context) error {
	req := &models.RegionMetricsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	g, ok := domrepo.NormalizeGranularity(req.Granularity)
	if !ok {
		return xhttp.BadRequestResponse(c, "unknown granularity")
	}

	series := h.agg.RegionMetrics(c.Request().Context(), g, req.Region)
	return xhttp.SuccessResponse(c, series)
}
