package usecase

import (
	"context"
	"sort"
	"time"

	"HousePulse/internal/domain/models"
	domrepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/services/analytics"
	"HousePulse/pkg/logger"
	"HousePulse/pkg/util"

	"golang.org/x/sync/errgroup"
)

// AffordabilityAggregator provides business logic for the Zillow
// affordability endpoints: summary ranking, per-region series with trend
// lines, and the region listing.
type AffordabilityAggregator struct {
	source      domrepo.AffordabilitySource
	merger      *analytics.Merger
	rankSize    int
	trendWindow int
	logger      *logger.Logger
	metrics     domrepo.Metrics
}

func NewAffordabilityAggregator(
	source domrepo.AffordabilitySource,
	merger *analytics.Merger,
	rankSize int,
	trendWindow int,
	log *logger.Logger,
	metrics domrepo.Metrics,
) *AffordabilityAggregator {
	return &AffordabilityAggregator{
		source:      source,
		merger:      merger,
		rankSize:    rankSize,
		trendWindow: trendWindow,
		logger:      log,
		metrics:     metrics,
	}
}

// Summary ranks regions by homeowner-vs-renter affordability gap at the
// latest homeowner date.
func (a *AffordabilityAggregator) Summary(ctx context.Context) models.AffordabilitySummary {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("affordability_summary", time.Since(start).Seconds()) }()

	var homeowner, renter *models.WideTable
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		homeowner = a.source.FetchWide(gctx, domrepo.AffordabilityHomeowner)
		return nil
	})
	g.Go(func() error {
		renter = a.source.FetchWide(gctx, domrepo.AffordabilityRenter)
		return nil
	})
	_ = g.Wait() // fetches degrade, they never error

	entries := a.merger.MergeGaps(homeowner, renter)
	if len(entries) == 0 {
		a.logger.Warn("affordability summary: no mergeable regions")
	}
	return a.merger.Summary(entries, a.rankSize)
}

// RegionSeries assembles the monthly affordability series for one region
// across all six datasets, one point per date column in the union, plus
// fitted trend lines for the affordability and price gaps. Missing datasets
// or values leave fields nil.
func (a *AffordabilityAggregator) RegionSeries(ctx context.Context, region string) []models.AffordabilityPoint {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("affordability_metrics", time.Since(start).Seconds()) }()

	metrics := []domrepo.AffordabilityMetric{
		domrepo.AffordabilityHomeowner,
		domrepo.AffordabilityRenter,
		domrepo.AffordabilityTotalPayment,
		domrepo.AffordabilityMortgagePayment,
		domrepo.AffordabilityAffordablePrice,
		domrepo.AffordabilityMedianPrice,
	}
	fetched := make([]*models.WideTable, len(metrics))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range metrics {
		g.Go(func() error {
			fetched[i] = a.source.FetchWide(gctx, m)
			return nil
		})
	}
	_ = g.Wait() // fetches degrade, they never error

	tables := make(map[domrepo.AffordabilityMetric]*models.WideTable, len(metrics))
	for i, m := range metrics {
		tables[m] = fetched[i]
	}

	dates := unionDates(tables)
	if len(dates) == 0 {
		a.logger.Warn("affordability metrics: no date columns",
			logger.String("region", region),
		)
		return []models.AffordabilityPoint{}
	}

	points := make([]models.AffordabilityPoint, 0, len(dates))
	for _, date := range dates {
		value := func(m domrepo.AffordabilityMetric) *float64 {
			if v, ok := tables[m].Value(region, date); ok {
				return &v
			}
			return nil
		}

		pt := models.AffordabilityPoint{
			Month:                  util.MonthOfDate(date),
			HomeownerAffordability: value(domrepo.AffordabilityHomeowner),
			RenterAffordability:    value(domrepo.AffordabilityRenter),
			TotalPayment:           value(domrepo.AffordabilityTotalPayment),
			MortgagePayment:        value(domrepo.AffordabilityMortgagePayment),
			AffordablePrice:        value(domrepo.AffordabilityAffordablePrice),
			MedianPrice:            value(domrepo.AffordabilityMedianPrice),
		}
		pt.AffordabilityGap = diff(pt.HomeownerAffordability, pt.RenterAffordability)
		pt.PaymentGap = diff(pt.TotalPayment, pt.MortgagePayment)
		pt.PriceGap = diff(pt.MedianPrice, pt.AffordablePrice)
		points = append(points, pt)
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Month < points[j].Month })

	gapSeries := make([]*float64, len(points))
	priceSeries := make([]*float64, len(points))
	for i, pt := range points {
		gapSeries[i] = pt.AffordabilityGap
		priceSeries[i] = pt.PriceGap
	}
	gapTrend := analytics.FitTrend(gapSeries, a.trendWindow)
	priceTrend := analytics.FitTrend(priceSeries, a.trendWindow)
	for i := range points {
		points[i].GapTrend = gapTrend[i]
		points[i].PriceTrend = priceTrend[i]
	}
	return points
}

// Regions lists the homeowner dataset's region labels, sorted, with
// ordinal ids.
func (a *AffordabilityAggregator) Regions(ctx context.Context) []models.RegionRef {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("affordability_regions", time.Since(start).Seconds()) }()

	homeowner := a.source.FetchWide(ctx, domrepo.AffordabilityHomeowner)
	return regionRefs(util.UniqueSorted(homeowner.Regions()))
}

func unionDates(tables map[domrepo.AffordabilityMetric]*models.WideTable) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, tbl := range tables {
		if tbl.Empty() {
			continue
		}
		for _, d := range tbl.Dates {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

func diff(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := *a - *b
	return &d
}
