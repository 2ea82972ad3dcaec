package api

import (
	"github.com/labstack/echo/v4"
)

// Routes bundles the API handlers into a single route registrar.
type Routes struct {
	market        *MarketHandler
	affordability *AffordabilityHandler
}

func NewRoutes(market *MarketHandler, affordability *AffordabilityHandler) *Routes {
	return &Routes{market: market, affordability: affordability}
}

func (r *Routes) RegisterRoutes(e *echo.Echo) {
	r.market.RegisterRoutes(e)
	r.affordability.RegisterRoutes(e)
}
