package usecase

import (
	"context"
	"errors"
	"testing"

	"HousePulse/internal/domain/models"
	domrepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/services/analytics"
	"HousePulse/pkg/config"
	"HousePulse/pkg/logger"

	"github.com/stretchr/testify/require"
)

type nopMetrics struct{}

func (nopMetrics) RecordFetch(provider, dataset, outcome string, seconds float64) {}
func (nopMetrics) RecordRowsKept(provider, dataset string, rows int)              {}
func (nopMetrics) RecordError(kind string)                                        {}
func (nopMetrics) RecordLatency(op string, seconds float64)                       {}

type fakeInventory struct {
	tables map[domrepo.Granularity]*models.InventoryTable
}

func (f fakeInventory) Fetch(ctx context.Context, g domrepo.Granularity) *models.InventoryTable {
	if tbl, ok := f.tables[g]; ok {
		return tbl
	}
	return &models.InventoryTable{}
}

type fakeAffordability struct {
	wide   map[domrepo.AffordabilityMetric]*models.WideTable
	raw    map[domrepo.SalePriceDataset]string
	rawErr error
}

func (f fakeAffordability) FetchWide(ctx context.Context, m domrepo.AffordabilityMetric) *models.WideTable {
	if tbl, ok := f.wide[m]; ok {
		return tbl
	}
	return &models.WideTable{}
}

func (f fakeAffordability) FetchRaw(ctx context.Context, d domrepo.SalePriceDataset) (string, error) {
	if f.rawErr != nil {
		return "", f.rawErr
	}
	return f.raw[d], nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func analyticsConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analytics.BaselineStart = 201601
	cfg.Analytics.BaselineEnd = 201912
	cfg.Analytics.MinHistoryPoints = 3
	cfg.Analytics.SampleFloor = 1
	return cfg
}

func metroTable() *models.InventoryTable {
	rows := []models.InventoryRow{
		{Month: 202403, Region: "Austin, TX", ActiveListingCount: 50, PendingListingCount: 40, MedianDaysOnMarket: 30, PriceReducedCount: 5},
	}
	for _, m := range []int{201603, 201703, 201803, 201903} {
		rows = append(rows, models.InventoryRow{
			Month: m, Region: "Austin, TX",
			ActiveListingCount: 40, PendingListingCount: 20,
			MedianDaysOnMarket: 40, PriceReducedCount: 3,
		})
	}
	return &models.InventoryTable{Rows: rows}
}

func newMarketAggregator(t *testing.T, inv domrepo.InventorySource, aff domrepo.AffordabilitySource) *MarketAggregator {
	t.Helper()
	cfg := analyticsConfig()
	return NewMarketAggregator(
		inv, aff,
		analytics.NewComparator(cfg),
		analytics.NewRanker(10),
		testLogger(t),
		nopMetrics{},
	)
}

func TestZillowDataFetchesBothDatasets(t *testing.T) {
	aff := fakeAffordability{raw: map[domrepo.SalePriceDataset]string{
		domrepo.SalePriceAllHomes: "all,csv",
		domrepo.SalePriceSFROnly:  "sfr,csv",
	}}
	agg := newMarketAggregator(t, fakeInventory{}, aff)

	data, err := agg.ZillowData(context.Background())
	require.NoError(t, err)
	require.Equal(t, "all,csv", data.AllHomes)
	require.Equal(t, "sfr,csv", data.SfrOnly)
}

func TestZillowDataPropagatesFailure(t *testing.T) {
	aff := fakeAffordability{rawErr: errors.New("upstream down")}
	agg := newMarketAggregator(t, fakeInventory{}, aff)

	_, err := agg.ZillowData(context.Background())
	require.Error(t, err)
}

func TestMarketBalanceRanksMetros(t *testing.T) {
	inv := fakeInventory{tables: map[domrepo.Granularity]*models.InventoryTable{
		domrepo.GranularityMetro: metroTable(),
	}}
	agg := newMarketAggregator(t, inv, fakeAffordability{})

	balance := agg.MarketBalance(context.Background())

	require.Len(t, balance.Active.Top, 1)
	require.Equal(t, "Austin, TX", balance.Active.Top[0].Region)
	require.Equal(t, 25.0, balance.Active.Top[0].ChangePercentage)
	require.Equal(t, 100.0, balance.Pending.Top[0].ChangePercentage)
	require.Equal(t, 60.0, balance.Ratio.Top[0].ChangePercentage)
}

func TestMarketBalanceEmptyDataset(t *testing.T) {
	agg := newMarketAggregator(t, fakeInventory{}, fakeAffordability{})

	balance := agg.MarketBalance(context.Background())

	require.NotNil(t, balance.Active.Top)
	require.Empty(t, balance.Active.Top)
	require.NotNil(t, balance.Ratio.Bottom)
	require.Empty(t, balance.Ratio.Bottom)
}

func TestRegionsSortedWithOrdinalIDs(t *testing.T) {
	inv := fakeInventory{tables: map[domrepo.Granularity]*models.InventoryTable{
		domrepo.GranularityState: {Rows: []models.InventoryRow{
			{Month: 202403, Region: "Texas"},
			{Month: 202403, Region: "Colorado"},
			{Month: 202402, Region: "Texas"},
		}},
	}}
	agg := newMarketAggregator(t, inv, fakeAffordability{})

	refs := agg.Regions(context.Background(), domrepo.GranularityState)

	require.Equal(t, []models.RegionRef{
		{ID: "0", Name: "Colorado"},
		{ID: "1", Name: "Texas"},
	}, refs)
}

func TestRegionMetricsUnknownRegion(t *testing.T) {
	inv := fakeInventory{tables: map[domrepo.Granularity]*models.InventoryTable{
		domrepo.GranularityMetro: metroTable(),
	}}
	agg := newMarketAggregator(t, inv, fakeAffordability{})

	series := agg.RegionMetrics(context.Background(), domrepo.GranularityMetro, "Nowhere, ZZ")
	require.NotNil(t, series)
	require.Empty(t, series)
}

func TestRegionMetricsBuildsSeries(t *testing.T) {
	inv := fakeInventory{tables: map[domrepo.Granularity]*models.InventoryTable{
		domrepo.GranularityMetro: metroTable(),
	}}
	agg := newMarketAggregator(t, inv, fakeAffordability{})

	series := agg.RegionMetrics(context.Background(), domrepo.GranularityMetro, "Austin, TX")

	active := series[models.MetricActive]
	require.Len(t, active, 1)
	require.Equal(t, "2024-03", active[0].Month)
	require.Equal(t, 50.0, *active[0].Current)
	require.Equal(t, 25.0, *active[0].PercentChange)
}
