package zillow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"HousePulse/internal/domain/models"
	drepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/services/table"
	"HousePulse/pkg/config"
	xhttp "HousePulse/pkg/http"
	xlogger "HousePulse/pkg/logger"
)

const (
	provider = "zillow"

	// Wide-format files key regions by RegionName.
	regionColumn = "RegionName"
)

// Client implements an AffordabilitySource backed by Zillow research CSVs.
type Client struct {
	salePriceURLs     map[string]string
	affordabilityURLs map[string]string

	client  *xhttp.Client
	logger  *xlogger.Logger
	metrics drepo.Metrics
}

// New creates a new Zillow AffordabilitySource.
func New(cfg *config.Config, logger *xlogger.Logger, metrics drepo.Metrics) drepo.AffordabilitySource {
	return &Client{
		salePriceURLs:     cfg.Zillow.SalePriceURLs,
		affordabilityURLs: cfg.Zillow.AffordabilityURLs,
		client:            xhttp.NewClient(xhttp.WithTimeout(cfg.Zillow.Timeout)),
		logger:            logger,
		metrics:           metrics,
	}
}

// FetchWide downloads and cleans one wide-format affordability dataset.
// Failures degrade to an empty table, never an error.
func (c *Client) FetchWide(ctx context.Context, metric drepo.AffordabilityMetric) *models.WideTable {
	url := c.affordabilityURLs[string(metric)]
	if url == "" {
		c.logger.Warn("zillow: no url for metric", xlogger.String("metric", string(metric)))
		return &models.WideTable{}
	}

	start := time.Now()
	body, err := c.client.FetchBody(ctx, url)
	if err != nil {
		c.logger.Warn("zillow: fetch failed",
			xlogger.String("metric", string(metric)), xlogger.Error(err))
		c.metrics.RecordFetch(provider, string(metric), "error", time.Since(start).Seconds())
		return &models.WideTable{}
	}
	defer body.Close()

	tbl, err := table.DecodeWide(body, regionColumn)
	if err != nil {
		c.logger.Warn("zillow: decode failed",
			xlogger.String("metric", string(metric)), xlogger.Error(err))
		c.metrics.RecordFetch(provider, string(metric), "error", time.Since(start).Seconds())
		return &models.WideTable{}
	}

	c.metrics.RecordFetch(provider, string(metric), "ok", time.Since(start).Seconds())
	c.metrics.RecordRowsKept(provider, string(metric), len(tbl.Rows))
	return tbl
}

// FetchRaw returns the untouched CSV text of a sale-price dataset. The
// passthrough endpoint wants the body verbatim, so errors propagate here.
func (c *Client) FetchRaw(ctx context.Context, dataset drepo.SalePriceDataset) (string, error) {
	url := c.salePriceURLs[string(dataset)]
	if url == "" {
		return "", fmt.Errorf("unknown sale price dataset %q", dataset)
	}

	start := time.Now()
	text, err := c.client.FetchText(ctx, url)
	if err != nil {
		c.metrics.RecordFetch(provider, string(dataset), "error", time.Since(start).Seconds())
		return "", fmt.Errorf("fetch %s: %w", dataset, err)
	}
	if strings.TrimSpace(text) == "" {
		c.metrics.RecordFetch(provider, string(dataset), "error", time.Since(start).Seconds())
		return "", fmt.Errorf("fetch %s: empty response", dataset)
	}

	c.metrics.RecordFetch(provider, string(dataset), "ok", time.Since(start).Seconds())
	return text, nil
}
