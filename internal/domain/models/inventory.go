package models

import "HousePulse/pkg/util"

// InventoryRow is one cleaned observation of the inventory feed: a region at
// a YYYYMM month with the four listing metrics. Rows with a missing month or
// metric never make it here.
type InventoryRow struct {
	Month               int
	Region              string
	ActiveListingCount  float64
	PendingListingCount float64
	MedianDaysOnMarket  float64
	PriceReducedCount   float64
}

// Metric selects one of the numeric columns of an InventoryRow.
type Metric string

const (
	MetricActive       Metric = "active_listing_count"
	MetricPending      Metric = "pending_listing_count"
	MetricPendingRatio Metric = "pending_ratio"
	MetricMedianDays   Metric = "median_days_on_market"
	MetricPriceReduced Metric = "price_reduced_count"
)

// Value returns the row's value for a plain (non-derived) metric.
func (r InventoryRow) Value(m Metric) float64 {
	switch m {
	case MetricActive:
		return r.ActiveListingCount
	case MetricPending:
		return r.PendingListingCount
	case MetricMedianDays:
		return r.MedianDaysOnMarket
	case MetricPriceReduced:
		return r.PriceReducedCount
	}
	return 0
}

// InventoryTable is a cleaned inventory dataset. An empty table is the
// degraded result of any upstream failure.
type InventoryTable struct {
	Rows []InventoryRow
}

func (t *InventoryTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// LatestMonth returns the max YYYYMM present, or 0 for an empty table.
func (t *InventoryTable) LatestMonth() int {
	if t.Empty() {
		return 0
	}
	months := make([]int, 0, len(t.Rows))
	for _, r := range t.Rows {
		months = append(months, r.Month)
	}
	return util.MaxYearMonth(months)
}

// Regions returns the distinct region labels, sorted.
func (t *InventoryTable) Regions() []string {
	if t.Empty() {
		return nil
	}
	labels := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		labels = append(labels, r.Region)
	}
	return util.UniqueSorted(labels)
}

// FilterRegion returns the subset of rows for one region label.
func (t *InventoryTable) FilterRegion(region string) *InventoryTable {
	out := &InventoryTable{}
	if t.Empty() {
		return out
	}
	for _, r := range t.Rows {
		if r.Region == region {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// FilterMonths returns rows whose month satisfies the predicate.
func (t *InventoryTable) FilterMonths(keep func(int) bool) *InventoryTable {
	out := &InventoryTable{}
	if t.Empty() {
		return out
	}
	for _, r := range t.Rows {
		if keep(r.Month) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
