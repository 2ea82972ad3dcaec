package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"HousePulse/internal/domain/models"
	domrepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/services/analytics"
	"HousePulse/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// MarketAggregator provides business logic for the inventory-side endpoints:
// market balance rankings, region listings, per-region metric series and the
// raw Zillow sale-price passthrough.
type MarketAggregator struct {
	inventory  domrepo.InventorySource
	salePrices domrepo.AffordabilitySource
	comparator *analytics.Comparator
	ranker     *analytics.Ranker
	logger     *logger.Logger
	metrics    domrepo.Metrics
}

func NewMarketAggregator(
	inventory domrepo.InventorySource,
	salePrices domrepo.AffordabilitySource,
	comparator *analytics.Comparator,
	ranker *analytics.Ranker,
	log *logger.Logger,
	metrics domrepo.Metrics,
) *MarketAggregator {
	return &MarketAggregator{
		inventory:  inventory,
		salePrices: salePrices,
		comparator: comparator,
		ranker:     ranker,
		logger:     log,
		metrics:    metrics,
	}
}

// ZillowData fetches both raw sale-price CSVs concurrently. Unlike the
// inventory paths this does not degrade: a failed fetch fails the request.
func (a *MarketAggregator) ZillowData(ctx context.Context) (*models.ZillowData, error) {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("zillow_data", time.Since(start).Seconds()) }()

	var data models.ZillowData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := a.salePrices.FetchRaw(ctx, domrepo.SalePriceAllHomes)
		if err != nil {
			return fmt.Errorf("fetch allHomes: %w", err)
		}
		data.AllHomes = text
		return nil
	})
	g.Go(func() error {
		text, err := a.salePrices.FetchRaw(ctx, domrepo.SalePriceSFROnly)
		if err != nil {
			return fmt.Errorf("fetch sfrOnly: %w", err)
		}
		data.SfrOnly = text
		return nil
	})
	if err := g.Wait(); err != nil {
		a.metrics.RecordError("zillow_data")
		return nil, err
	}
	return &data, nil
}

// MarketBalance ranks metro regions by change against the pre-pandemic
// baseline, for each of the three metrics. Degraded upstream data yields the
// empty payload, never an error.
func (a *MarketAggregator) MarketBalance(ctx context.Context) models.MarketBalance {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("market_balance", time.Since(start).Seconds()) }()

	tbl := a.inventory.Fetch(ctx, domrepo.GranularityMetro)
	results := a.comparator.Compare(tbl)
	if len(results) == 0 {
		a.logger.Warn("market balance: no qualifying regions")
		return models.EmptyMarketBalance()
	}
	a.logger.Debug("market balance computed",
		logger.Int("regions", len(results)),
	)

	return models.MarketBalance{
		Active:  a.ranker.TopBottom(results, models.RankActive),
		Pending: a.ranker.TopBottom(results, models.RankPending),
		Ratio:   a.ranker.TopBottom(results, models.RankRatio),
	}
}

// Regions lists the unique region labels of a granularity's dataset, sorted,
// with ordinal ids.
func (a *MarketAggregator) Regions(ctx context.Context, g domrepo.Granularity) []models.RegionRef {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("regions", time.Since(start).Seconds()) }()

	tbl := a.inventory.Fetch(ctx, g)
	return regionRefs(tbl.Regions())
}

// RegionMetrics builds the trailing-year metric series for one region. An
// unknown region or degraded dataset yields the empty map.
func (a *MarketAggregator) RegionMetrics(ctx context.Context, g domrepo.Granularity, region string) models.RegionMetrics {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("region_metrics", time.Since(start).Seconds()) }()

	tbl := a.inventory.Fetch(ctx, g)
	series := a.comparator.RegionSeries(tbl, region)
	if series == nil {
		a.logger.Warn("region metrics: region not found",
			logger.String("granularity", string(g)),
			logger.String("region", region),
		)
		return models.RegionMetrics{}
	}
	return series
}

func regionRefs(names []string) []models.RegionRef {
	refs := make([]models.RegionRef, 0, len(names))
	for i, name := range names {
		refs = append(refs, models.RegionRef{ID: strconv.Itoa(i), Name: name})
	}
	return refs
}
