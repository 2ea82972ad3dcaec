package di

import (
	"HousePulse/internal/domain/repository"
	"HousePulse/internal/handler/api"
	"HousePulse/internal/service/realtor"
	"HousePulse/internal/service/zillow"
	"HousePulse/internal/services/analytics"
	"HousePulse/internal/usecase"
	"HousePulse/pkg/config"
	"HousePulse/pkg/logger"
	"HousePulse/pkg/metrics"
	"HousePulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideInventorySource creates the Realtor.com inventory client.
func ProvideInventorySource(cfg *config.Config, l *logger.Logger, m repository.Metrics) repository.InventorySource {
	return realtor.New(cfg, l, m)
}

// ProvideAffordabilitySource creates the Zillow client.
func ProvideAffordabilitySource(cfg *config.Config, l *logger.Logger, m repository.Metrics) repository.AffordabilitySource {
	return zillow.New(cfg, l, m)
}

// ProvideComparator creates the baseline comparator.
func ProvideComparator(cfg *config.Config) *analytics.Comparator {
	return analytics.NewComparator(cfg)
}

// ProvideRanker creates the top/bottom ranker.
func ProvideRanker(cfg *config.Config) *analytics.Ranker {
	return analytics.NewRanker(cfg.Analytics.RankSize)
}

// ProvideMerger creates the affordability merger.
func ProvideMerger() *analytics.Merger {
	return analytics.NewMerger()
}

// ProvideMarketAggregator creates the inventory-side usecase.
func ProvideMarketAggregator(
	inventory repository.InventorySource,
	affordability repository.AffordabilitySource,
	comparator *analytics.Comparator,
	ranker *analytics.Ranker,
	l *logger.Logger,
	m repository.Metrics,
) *usecase.MarketAggregator {
	return usecase.NewMarketAggregator(inventory, affordability, comparator, ranker, l, m)
}

// ProvideAffordabilityAggregator creates the affordability usecase.
func ProvideAffordabilityAggregator(
	cfg *config.Config,
	source repository.AffordabilitySource,
	merger *analytics.Merger,
	l *logger.Logger,
	m repository.Metrics,
) *usecase.AffordabilityAggregator {
	return usecase.NewAffordabilityAggregator(
		source, merger,
		cfg.Analytics.RankSize, cfg.Analytics.TrendWindow,
		l, m,
	)
}

// ProvideRoutes bundles all API handlers.
func ProvideRoutes(
	l *logger.Logger,
	market *usecase.MarketAggregator,
	affordability *usecase.AffordabilityAggregator,
) *api.Routes {
	return api.NewRoutes(
		api.NewMarketHandler(l, market),
		api.NewAffordabilityHandler(l, affordability),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, routes *api.Routes) *server.App {
	return server.New(cfg, l, routes)
}
