package analytics

import (
	"math"

	"HousePulse/internal/domain/models"
	"HousePulse/pkg/config"
	"HousePulse/pkg/util"

	"github.com/montanaflynn/stats"
)

// Comparator computes current-vs-baseline statistics for inventory datasets.
// The baseline window is the pre-reference years (2016-2019 by default),
// restricted to the same calendar month as the latest data point so that
// seasonal swings never leak into the comparison.
type Comparator struct {
	baselineStart    int
	baselineEnd      int
	minHistoryPoints int
	sampleFloor      float64
}

// NewComparator creates a Comparator with thresholds from config.
func NewComparator(cfg *config.Config) *Comparator {
	return &Comparator{
		baselineStart:    cfg.Analytics.BaselineStart,
		baselineEnd:      cfg.Analytics.BaselineEnd,
		minHistoryPoints: cfg.Analytics.MinHistoryPoints,
		sampleFloor:      cfg.Analytics.SampleFloor,
	}
}

// Compare emits one ComparisonResult per qualifying region of the latest
// month. Regions failing any threshold are silently excluded.
func (c *Comparator) Compare(tbl *models.InventoryTable) []models.ComparisonResult {
	if tbl.Empty() {
		return nil
	}

	latest := tbl.LatestMonth()
	refMonth := util.CalendarMonth(latest)

	baseline := tbl.FilterMonths(func(m int) bool {
		return m >= c.baselineStart && m <= c.baselineEnd && util.CalendarMonth(m) == refMonth
	})

	// Baseline values per region, positives only: zero or negative counts are
	// placeholder artifacts in the feed, not observations.
	histActive := make(map[string][]float64)
	histPending := make(map[string][]float64)
	for _, r := range baseline.Rows {
		if r.ActiveListingCount > 0 {
			histActive[r.Region] = append(histActive[r.Region], r.ActiveListingCount)
		}
		if r.PendingListingCount > 0 {
			histPending[r.Region] = append(histPending[r.Region], r.PendingListingCount)
		}
	}

	var results []models.ComparisonResult
	seen := make(map[string]struct{})
	for _, row := range tbl.Rows {
		if row.Month != latest {
			continue
		}
		if _, dup := seen[row.Region]; dup {
			continue
		}
		seen[row.Region] = struct{}{}

		if res, ok := c.compareRegion(row, histActive[row.Region], histPending[row.Region]); ok {
			results = append(results, res)
		}
	}
	return results
}

func (c *Comparator) compareRegion(row models.InventoryRow, active, pending []float64) (models.ComparisonResult, bool) {
	currentActive := row.ActiveListingCount
	currentPending := row.PendingListingCount

	if len(active) < c.minHistoryPoints || len(pending) < c.minHistoryPoints {
		return models.ComparisonResult{}, false
	}
	if currentActive <= 0 || currentPending <= 0 {
		return models.ComparisonResult{}, false
	}

	histActiveMean, err := stats.Mean(active)
	if err != nil {
		return models.ComparisonResult{}, false
	}
	histPendingMean, err := stats.Mean(pending)
	if err != nil {
		return models.ComparisonResult{}, false
	}

	// Percent-change math on tiny counts amplifies noise; everything involved
	// has to clear the sample-size floor.
	if currentActive < c.sampleFloor || currentPending < c.sampleFloor ||
		histActiveMean < c.sampleFloor || histPendingMean < c.sampleFloor {
		return models.ComparisonResult{}, false
	}

	currentRatio := currentPending / currentActive
	historicalRatio := histPendingMean / histActiveMean

	activeChange := PercentChange(currentActive, histActiveMean)
	pendingChange := PercentChange(currentPending, histPendingMean)
	ratioChange := PercentChange(currentRatio, historicalRatio)

	if !isFinite(activeChange) || !isFinite(pendingChange) || !isFinite(ratioChange) {
		return models.ComparisonResult{}, false
	}

	return models.ComparisonResult{
		Region:            row.Region,
		CurrentActive:     Round2(currentActive),
		HistoricalActive:  Round2(histActiveMean),
		ChangePercentage:  Round2(activeChange),
		CurrentPending:    Round2(currentPending),
		HistoricalPending: Round2(histPendingMean),
		PendingChange:     Round2(pendingChange),
		CurrentRatio:      Round4(currentRatio),
		HistoricalRatio:   Round4(historicalRatio),
		RatioChange:       Round2(ratioChange),
	}, true
}

// RegionSeries builds the trailing-year series for one region: per metric a
// point per month with its same-calendar-month baseline mean and percent
// change, plus the derived pending ratio series.
func (c *Comparator) RegionSeries(tbl *models.InventoryTable, region string) models.RegionMetrics {
	sub := tbl.FilterRegion(region)
	if sub.Empty() {
		return nil
	}

	latest := sub.LatestMonth()
	cutoff := util.TrailingYearStart(latest)
	recent := sub.FilterMonths(func(m int) bool { return m > cutoff })

	out := models.RegionMetrics{
		models.MetricActive:       {},
		models.MetricPending:      {},
		models.MetricPendingRatio: {},
		models.MetricMedianDays:   {},
		models.MetricPriceReduced: {},
	}

	for _, month := range recentMonths(recent) {
		row, ok := firstRowForMonth(recent, month)
		if !ok {
			continue
		}
		hist := sub.FilterMonths(func(m int) bool {
			return m >= c.baselineStart && m <= c.baselineEnd &&
				util.CalendarMonth(m) == util.CalendarMonth(month)
		})
		monthStr := util.FormatYearMonth(month)

		for _, metric := range []models.Metric{
			models.MetricActive, models.MetricPending,
			models.MetricMedianDays, models.MetricPriceReduced,
		} {
			out[metric] = append(out[metric], c.metricPoint(monthStr, row, hist, metric))
		}

		if pt, ok := c.ratioPoint(monthStr, row, hist); ok {
			out[models.MetricPendingRatio] = append(out[models.MetricPendingRatio], pt)
		}
	}
	return out
}

func (c *Comparator) metricPoint(month string, row models.InventoryRow, hist *models.InventoryTable, metric models.Metric) models.MetricPoint {
	current := row.Value(metric)
	pt := models.MetricPoint{Month: month, Current: &current}

	valid := positiveValues(hist, metric)
	if len(valid) < c.minHistoryPoints {
		return pt
	}
	mean, err := stats.Mean(valid)
	if err != nil || !isFinite(mean) {
		return pt
	}

	pct := Round2(PercentChange(current, mean))
	pt.Historical = &mean
	pt.PercentChange = &pct
	return pt
}

func (c *Comparator) ratioPoint(month string, row models.InventoryRow, hist *models.InventoryTable) (models.MetricPoint, bool) {
	currentActive := row.ActiveListingCount
	currentPending := row.PendingListingCount

	validActive := positiveValues(hist, models.MetricActive)
	validPending := positiveValues(hist, models.MetricPending)

	if len(validActive) >= c.minHistoryPoints && len(validPending) >= c.minHistoryPoints {
		histActive, errA := stats.Mean(validActive)
		histPending, errP := stats.Mean(validPending)
		if errA != nil || errP != nil || currentActive <= 0 || histActive <= 0 {
			return models.MetricPoint{}, false
		}
		currentRatio := Round4(currentPending / currentActive)
		historicalRatio := Round4(histPending / histActive)
		pct := Round2(PercentChange(currentRatio, historicalRatio))
		return models.MetricPoint{
			Month:         month,
			Current:       &currentRatio,
			Historical:    &historicalRatio,
			PercentChange: &pct,
		}, true
	}

	// Not enough history for a comparison; still chart the current ratio.
	pt := models.MetricPoint{Month: month}
	if currentActive > 0 {
		currentRatio := Round4(currentPending / currentActive)
		pt.Current = &currentRatio
	}
	return pt, true
}

func recentMonths(tbl *models.InventoryTable) []int {
	seen := make(map[int]struct{})
	var months []int
	for _, r := range tbl.Rows {
		if _, ok := seen[r.Month]; ok {
			continue
		}
		seen[r.Month] = struct{}{}
		months = append(months, r.Month)
	}
	// insertion sort; the window is ~12 entries
	for i := 1; i < len(months); i++ {
		for j := i; j > 0 && months[j] < months[j-1]; j-- {
			months[j], months[j-1] = months[j-1], months[j]
		}
	}
	return months
}

func firstRowForMonth(tbl *models.InventoryTable, month int) (models.InventoryRow, bool) {
	for _, r := range tbl.Rows {
		if r.Month == month {
			return r, true
		}
	}
	return models.InventoryRow{}, false
}

func positiveValues(tbl *models.InventoryTable, metric models.Metric) []float64 {
	var out []float64
	for _, r := range tbl.Rows {
		if v := r.Value(metric); v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// PercentChange returns (current - baseline) / baseline * 100.
func PercentChange(current, baseline float64) float64 {
	return (current - baseline) / baseline * 100
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
