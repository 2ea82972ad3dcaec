package models

// ComparisonResult holds current-vs-baseline statistics for one region.
// Absolute values and percentages are rounded to 2 decimals, ratios to 4.
type ComparisonResult struct {
	Region           string  `json:"region"`
	CurrentActive    float64 `json:"currentActive"`
	HistoricalActive float64 `json:"historicalActive"`
	ChangePercentage float64 `json:"changePercentage"`
	CurrentPending   float64 `json:"currentPending"`
	HistoricalPending float64 `json:"historicalPending"`
	PendingChange    float64 `json:"pendingChange"`
	CurrentRatio     float64 `json:"currentRatio"`
	HistoricalRatio  float64 `json:"historicalRatio"`
	RatioChange      float64 `json:"ratioChange"`
}

// RankMetric selects which percent-change field a ranking sorts by.
type RankMetric string

const (
	RankActive  RankMetric = "active"
	RankPending RankMetric = "pending"
	RankRatio   RankMetric = "ratio"
)

// RankedEntry is one region in a top/bottom list, projected onto the
// selected metric.
type RankedEntry struct {
	Region           string  `json:"region"`
	Current          float64 `json:"current"`
	PrePandemic      float64 `json:"prePandemic"`
	ChangePercentage float64 `json:"changePercentage"`
}

// TopBottom pairs the best and worst ranked regions for a metric.
type TopBottom struct {
	Top    []RankedEntry `json:"top"`
	Bottom []RankedEntry `json:"bottom"`
}

// MarketBalance is the /api/market-balance payload.
type MarketBalance struct {
	Active  TopBottom `json:"active"`
	Pending TopBottom `json:"pending"`
	Ratio   TopBottom `json:"ratio"`
}

// EmptyMarketBalance returns the zero payload with all lists present.
func EmptyMarketBalance() MarketBalance {
	empty := TopBottom{Top: []RankedEntry{}, Bottom: []RankedEntry{}}
	return MarketBalance{Active: empty, Pending: empty, Ratio: empty}
}

// MetricPoint is one month of a region metric series. Nil fields mean the
// value could not be computed from the available history.
type MetricPoint struct {
	Month         string   `json:"month"`
	Current       *float64 `json:"current"`
	Historical    *float64 `json:"historical"`
	PercentChange *float64 `json:"percentChange"`
}

// RegionMetrics maps metric name to its trailing-year series.
type RegionMetrics map[Metric][]MetricPoint

// RegionRef is a selectable region in listing endpoints.
type RegionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ZillowData is the raw CSV passthrough payload.
type ZillowData struct {
	AllHomes string `json:"allHomes"`
	SfrOnly  string `json:"sfrOnly"`
}
