package models

import "sort"

// WideRow is one region of a wide-format dataset: a mapping from date column
// ("2006-01-02" style keys) to value. Dates the file left blank are absent.
type WideRow struct {
	Region string
	Values map[string]float64
}

// WideTable is a cleaned wide-format dataset. Row order follows the source
// file. An empty table is the degraded result of any upstream failure.
type WideTable struct {
	Dates []string // sorted ascending
	Rows  []WideRow

	index map[string]int // region -> first row position
}

func (t *WideTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// BuildIndex prepares region lookups. Sources call this once after decoding.
func (t *WideTable) BuildIndex() {
	t.index = make(map[string]int, len(t.Rows))
	for i, r := range t.Rows {
		if _, ok := t.index[r.Region]; !ok {
			t.index[r.Region] = i
		}
	}
	sort.Strings(t.Dates)
}

// Row returns the first row for a region, if present.
func (t *WideTable) Row(region string) (WideRow, bool) {
	if t.Empty() {
		return WideRow{}, false
	}
	if t.index != nil {
		i, ok := t.index[region]
		if !ok {
			return WideRow{}, false
		}
		return t.Rows[i], true
	}
	for _, r := range t.Rows {
		if r.Region == region {
			return r, true
		}
	}
	return WideRow{}, false
}

// Value returns the region's value at a date column.
func (t *WideTable) Value(region, date string) (float64, bool) {
	row, ok := t.Row(region)
	if !ok {
		return 0, false
	}
	v, ok := row.Values[date]
	return v, ok
}

// LatestDate returns the max date column, or "" for an empty table.
func (t *WideTable) LatestDate() string {
	if t.Empty() || len(t.Dates) == 0 {
		return ""
	}
	return t.Dates[len(t.Dates)-1]
}

// Regions returns region labels in file order.
func (t *WideTable) Regions() []string {
	if t.Empty() {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r.Region)
	}
	return out
}

// AffordabilitySummaryEntry is one region of the affordability ranking.
// A nil gap marks a data-insufficient region; those rank after all others.
type AffordabilitySummaryEntry struct {
	Region                 string   `json:"region"`
	HomeownerAffordability *float64 `json:"homeownerAffordability"`
	RenterAffordability    *float64 `json:"renterAffordability"`
	AffordabilityGap       *float64 `json:"affordabilityGap"`
}

// AffordabilitySummary is the /api/affordability-summary payload.
type AffordabilitySummary struct {
	LeastAffordable []AffordabilitySummaryEntry `json:"leastAffordable"`
	MostAffordable  []AffordabilitySummaryEntry `json:"mostAffordable"`
}

// AffordabilityPoint is one month of the per-region affordability series.
type AffordabilityPoint struct {
	Month                  string   `json:"month"`
	HomeownerAffordability *float64 `json:"homeownerAffordability"`
	RenterAffordability    *float64 `json:"renterAffordability"`
	AffordabilityGap       *float64 `json:"affordabilityGap"`
	TotalPayment           *float64 `json:"totalPayment"`
	MortgagePayment        *float64 `json:"mortgagePayment"`
	PaymentGap             *float64 `json:"paymentGap"`
	AffordablePrice        *float64 `json:"affordablePrice"`
	MedianPrice            *float64 `json:"medianPrice"`
	PriceGap               *float64 `json:"priceGap"`
	GapTrend               *float64 `json:"gapTrend"`
	PriceTrend             *float64 `json:"priceTrend"`
}
