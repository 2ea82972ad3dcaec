package repository

import (
	"context"

	"HousePulse/internal/domain/models"
)

// Granularity is the geographic aggregation level of an inventory dataset.
type Granularity string

const (
	GranularityNational Granularity = "national"
	GranularityState    Granularity = "state"
	GranularityMetro    Granularity = "metro"
	GranularityCounty   Granularity = "county"
	GranularityZip      Granularity = "zip"
)

// NormalizeGranularity maps a request string onto a known granularity.
func NormalizeGranularity(s string) (Granularity, bool) {
	switch Granularity(s) {
	case GranularityNational, GranularityState, GranularityMetro, GranularityCounty, GranularityZip:
		return Granularity(s), true
	}
	return "", false
}

// RegionColumn returns the CSV column identifying regions at this level.
func (g Granularity) RegionColumn() string {
	switch g {
	case GranularityNational:
		return "country"
	case GranularityState:
		return "state"
	case GranularityMetro:
		return "cbsa_title"
	case GranularityCounty:
		return "county_name"
	case GranularityZip:
		return "postal_code"
	}
	return ""
}

// AffordabilityMetric keys the wide-format Zillow datasets.
type AffordabilityMetric string

const (
	AffordabilityHomeowner       AffordabilityMetric = "homeowner"
	AffordabilityRenter          AffordabilityMetric = "renter"
	AffordabilityTotalPayment    AffordabilityMetric = "total_payment"
	AffordabilityMortgagePayment AffordabilityMetric = "mortgage_payment"
	AffordabilityAffordablePrice AffordabilityMetric = "affordable_price"
	AffordabilityMedianPrice     AffordabilityMetric = "median_price"
)

// SalePriceDataset keys the raw median-sale-price passthrough files.
type SalePriceDataset string

const (
	SalePriceAllHomes SalePriceDataset = "allHomes"
	SalePriceSFROnly  SalePriceDataset = "sfrOnly"
)

// InventorySource fetches and cleans one inventory dataset per call.
// Failures degrade to an empty table; they are never returned as errors.
type InventorySource interface {
	Fetch(ctx context.Context, g Granularity) *models.InventoryTable
}

// AffordabilitySource fetches Zillow wide-format datasets and the raw
// sale-price passthrough files.
type AffordabilitySource interface {
	// FetchWide returns a cleaned wide table; empty on any failure.
	FetchWide(ctx context.Context, metric AffordabilityMetric) *models.WideTable
	// FetchRaw returns the untouched CSV text of a sale-price dataset.
	// Unlike FetchWide, failures propagate: the passthrough endpoint
	// reports them as server errors.
	FetchRaw(ctx context.Context, dataset SalePriceDataset) (string, error)
}

// Metrics records operational counters; implemented by pkg/metrics.
type Metrics interface {
	RecordFetch(provider, dataset, outcome string, seconds float64)
	RecordRowsKept(provider, dataset string, rows int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
