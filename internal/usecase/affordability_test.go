package usecase

import (
	"context"
	"testing"

	"HousePulse/internal/domain/models"
	domrepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/services/analytics"

	"github.com/stretchr/testify/require"
)

func wideTable(dates []string, rows ...models.WideRow) *models.WideTable {
	tbl := &models.WideTable{Dates: dates, Rows: rows}
	tbl.BuildIndex()
	return tbl
}

func singleRegionTable(region string, values map[string]float64) *models.WideTable {
	dates := make([]string, 0, len(values))
	for d := range values {
		dates = append(dates, d)
	}
	return wideTable(dates, models.WideRow{Region: region, Values: values})
}

func newAffordabilityAggregator(t *testing.T, source domrepo.AffordabilitySource) *AffordabilityAggregator {
	t.Helper()
	return NewAffordabilityAggregator(source, analytics.NewMerger(), 10, 6, testLogger(t), nopMetrics{})
}

func TestSummaryRanksGaps(t *testing.T) {
	source := fakeAffordability{wide: map[domrepo.AffordabilityMetric]*models.WideTable{
		domrepo.AffordabilityHomeowner: wideTable([]string{"2024-02-29"},
			models.WideRow{Region: "Austin, TX", Values: map[string]float64{"2024-02-29": 120}},
			models.WideRow{Region: "Boise, ID", Values: map[string]float64{"2024-02-29": 140}},
		),
		domrepo.AffordabilityRenter: wideTable([]string{"2024-02-29"},
			models.WideRow{Region: "Austin, TX", Values: map[string]float64{"2024-02-29": 100}},
			models.WideRow{Region: "Boise, ID", Values: map[string]float64{"2024-02-29": 90}},
		),
	}}
	agg := newAffordabilityAggregator(t, source)

	summary := agg.Summary(context.Background())

	require.Len(t, summary.LeastAffordable, 2)
	require.Equal(t, "Boise, ID", summary.LeastAffordable[0].Region)
	require.Equal(t, 50.0, *summary.LeastAffordable[0].AffordabilityGap)
	require.Equal(t, "Austin, TX", summary.MostAffordable[0].Region)
}

func TestSummaryDegradedUpstream(t *testing.T) {
	agg := newAffordabilityAggregator(t, fakeAffordability{})

	summary := agg.Summary(context.Background())
	require.Empty(t, summary.LeastAffordable)
	require.Empty(t, summary.MostAffordable)
}

func TestRegionSeriesAssemblesPoints(t *testing.T) {
	region := "Austin, TX"
	source := fakeAffordability{wide: map[domrepo.AffordabilityMetric]*models.WideTable{
		domrepo.AffordabilityHomeowner: singleRegionTable(region, map[string]float64{
			"2024-01-31": 110, "2024-02-29": 120, "2024-03-31": 130, "2024-04-30": 140,
		}),
		domrepo.AffordabilityRenter: singleRegionTable(region, map[string]float64{
			"2024-01-31": 100, "2024-02-29": 100, "2024-03-31": 100, "2024-04-30": 100,
		}),
		domrepo.AffordabilityAffordablePrice: singleRegionTable(region, map[string]float64{
			"2024-01-31": 100, "2024-02-29": 100, "2024-03-31": 100, "2024-04-30": 100,
		}),
		domrepo.AffordabilityMedianPrice: singleRegionTable(region, map[string]float64{
			"2024-01-31": 150, "2024-02-29": 160, "2024-03-31": 170, "2024-04-30": 180,
		}),
		// total_payment only covers one month; mortgage_payment is absent.
		domrepo.AffordabilityTotalPayment: singleRegionTable(region, map[string]float64{
			"2024-04-30": 2500,
		}),
	}}
	agg := newAffordabilityAggregator(t, source)

	points := agg.RegionSeries(context.Background(), region)

	require.Len(t, points, 4)
	require.Equal(t, "2024-01", points[0].Month)
	require.Equal(t, "2024-04", points[3].Month)

	// Affordability gap: homeowner minus renter.
	require.Equal(t, 10.0, *points[0].AffordabilityGap)
	require.Equal(t, 40.0, *points[3].AffordabilityGap)

	// Price gap: median minus affordable.
	require.Equal(t, 50.0, *points[0].PriceGap)
	require.Equal(t, 80.0, *points[3].PriceGap)

	// Payment gap needs both sides; mortgage data never arrives.
	require.Equal(t, 2500.0, *points[3].TotalPayment)
	require.Nil(t, points[3].MortgagePayment)
	require.Nil(t, points[3].PaymentGap)
	require.Nil(t, points[0].TotalPayment)

	// Gaps lie on perfect lines, so the fitted trends reproduce them.
	require.InDelta(t, 10.0, *points[0].GapTrend, 1e-9)
	require.InDelta(t, 40.0, *points[3].GapTrend, 1e-9)
	require.InDelta(t, 50.0, *points[0].PriceTrend, 1e-9)
	require.InDelta(t, 80.0, *points[3].PriceTrend, 1e-9)
}

func TestRegionSeriesUnknownRegionYieldsNilFields(t *testing.T) {
	source := fakeAffordability{wide: map[domrepo.AffordabilityMetric]*models.WideTable{
		domrepo.AffordabilityHomeowner: singleRegionTable("Austin, TX", map[string]float64{
			"2024-01-31": 110,
		}),
	}}
	agg := newAffordabilityAggregator(t, source)

	points := agg.RegionSeries(context.Background(), "Nowhere, ZZ")

	require.Len(t, points, 1)
	require.Nil(t, points[0].HomeownerAffordability)
	require.Nil(t, points[0].AffordabilityGap)
	require.Nil(t, points[0].GapTrend)
}

func TestRegionSeriesAllUpstreamsDegraded(t *testing.T) {
	agg := newAffordabilityAggregator(t, fakeAffordability{})

	points := agg.RegionSeries(context.Background(), "Austin, TX")
	require.NotNil(t, points)
	require.Empty(t, points)
}

func TestAffordabilityRegions(t *testing.T) {
	source := fakeAffordability{wide: map[domrepo.AffordabilityMetric]*models.WideTable{
		domrepo.AffordabilityHomeowner: wideTable([]string{"2024-02-29"},
			models.WideRow{Region: "Boise, ID", Values: map[string]float64{"2024-02-29": 140}},
			models.WideRow{Region: "Austin, TX", Values: map[string]float64{"2024-02-29": 120}},
		),
	}}
	agg := newAffordabilityAggregator(t, source)

	refs := agg.Regions(context.Background())
	require.Equal(t, []models.RegionRef{
		{ID: "0", Name: "Austin, TX"},
		{ID: "1", Name: "Boise, ID"},
	}, refs)
}
