//go:build wireinject
// +build wireinject

package di

import (
	"HousePulse/pkg/config"
	"HousePulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Upstream sources
		ProvideInventorySource,
		ProvideAffordabilitySource,

		// Analytics
		ProvideComparator,
		ProvideRanker,
		ProvideMerger,

		// Use cases
		ProvideMarketAggregator,
		ProvideAffordabilityAggregator,

		// HTTP
		ProvideRoutes,
		ProvideApp,
	)
	return &server.App{}, nil
}
