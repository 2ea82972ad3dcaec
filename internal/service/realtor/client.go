package realtor

import (
	"context"
	"time"

	"HousePulse/internal/domain/models"
	drepo "HousePulse/internal/domain/repository"
	"HousePulse/internal/services/table"
	"HousePulse/pkg/config"
	xhttp "HousePulse/pkg/http"
	xlogger "HousePulse/pkg/logger"
)

const provider = "realtor"

// Client implements an InventorySource backed by the Realtor.com public
// inventory history CSVs.
type Client struct {
	urls      map[string]string
	chunkSize int

	client    *xhttp.Client // base timeout
	zipClient *xhttp.Client // the zip file is an order of magnitude larger

	logger  *xlogger.Logger
	metrics drepo.Metrics
}

// New creates a new Realtor.com InventorySource.
func New(cfg *config.Config, logger *xlogger.Logger, metrics drepo.Metrics) drepo.InventorySource {
	return &Client{
		urls:      cfg.Realtor.URLs,
		chunkSize: cfg.Realtor.ChunkSize,
		client:    xhttp.NewClient(xhttp.WithTimeout(cfg.Realtor.Timeout)),
		zipClient: xhttp.NewClient(xhttp.WithTimeout(cfg.Realtor.ZipTimeout)),
		logger:    logger,
		metrics:   metrics,
	}
}

// Fetch downloads and cleans one granularity's dataset. Every failure mode
// (unknown granularity, network, non-2xx, empty body, parse) degrades to an
// empty table; callers decide what an empty table means for their response.
func (c *Client) Fetch(ctx context.Context, g drepo.Granularity) *models.InventoryTable {
	url := c.urls[string(g)]
	if url == "" {
		c.logger.Warn("realtor: no url for granularity", xlogger.String("granularity", string(g)))
		return &models.InventoryTable{}
	}

	client := c.client
	if g == drepo.GranularityZip {
		client = c.zipClient
	}

	// zip and county are the large files; clean those in bounded chunks.
	chunkSize := 0
	if g == drepo.GranularityZip || g == drepo.GranularityCounty {
		chunkSize = c.chunkSize
	}

	start := time.Now()
	body, err := client.FetchBody(ctx, url)
	if err != nil {
		c.logger.Warn("realtor: fetch failed",
			xlogger.String("granularity", string(g)), xlogger.Error(err))
		c.metrics.RecordFetch(provider, string(g), "error", time.Since(start).Seconds())
		return &models.InventoryTable{}
	}
	defer body.Close()

	tbl, err := table.DecodeInventory(body, g.RegionColumn(), chunkSize)
	if err != nil {
		c.logger.Warn("realtor: decode failed",
			xlogger.String("granularity", string(g)), xlogger.Error(err))
		c.metrics.RecordFetch(provider, string(g), "error", time.Since(start).Seconds())
		return &models.InventoryTable{}
	}

	c.metrics.RecordFetch(provider, string(g), "ok", time.Since(start).Seconds())
	c.metrics.RecordRowsKept(provider, string(g), len(tbl.Rows))
	c.logger.Debug("realtor: dataset loaded",
		xlogger.String("granularity", string(g)), xlogger.Int("rows", len(tbl.Rows)))
	return tbl
}
