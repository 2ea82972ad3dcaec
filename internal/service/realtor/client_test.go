package realtor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	drepo "HousePulse/internal/domain/repository"
	"HousePulse/pkg/config"
	xlogger "HousePulse/pkg/logger"

	"github.com/stretchr/testify/require"
)

type nopMetrics struct{}

func (nopMetrics) RecordFetch(provider, dataset, outcome string, seconds float64) {}
func (nopMetrics) RecordRowsKept(provider, dataset string, rows int)              {}
func (nopMetrics) RecordError(kind string)                                        {}
func (nopMetrics) RecordLatency(op string, seconds float64)                       {}

const metroCSV = `month_date_yyyymm,cbsa_title,active_listing_count,pending_listing_count,median_days_on_market,price_reduced_count
202403,"Austin, TX",1200,400,35,210
202402,"Austin, TX",oops,380,33,200
202402,"Denver, CO",950,310,31,120
`

func testClient(t *testing.T, urls map[string]string) drepo.InventorySource {
	t.Helper()
	cfg := &config.Config{}
	cfg.Realtor.URLs = urls
	cfg.Realtor.ChunkSize = 2
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	return New(cfg, l, nopMetrics{})
}

func TestFetchCleansRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(metroCSV))
	}))
	defer srv.Close()

	c := testClient(t, map[string]string{"metro": srv.URL})
	tbl := c.Fetch(context.Background(), drepo.GranularityMetro)

	require.Len(t, tbl.Rows, 2)
	require.Equal(t, "Austin, TX", tbl.Rows[0].Region)
	require.Equal(t, 202403, tbl.LatestMonth())
}

func TestFetchSwallowsUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(t, map[string]string{"metro": srv.URL})
	tbl := c.Fetch(context.Background(), drepo.GranularityMetro)
	require.True(t, tbl.Empty())
}

func TestFetchSwallowsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := testClient(t, map[string]string{"metro": srv.URL})
	tbl := c.Fetch(context.Background(), drepo.GranularityMetro)
	require.True(t, tbl.Empty())
}

func TestFetchUnknownGranularityURL(t *testing.T) {
	c := testClient(t, map[string]string{})
	tbl := c.Fetch(context.Background(), drepo.GranularityMetro)
	require.True(t, tbl.Empty())
}

func TestFetchZipChunked(t *testing.T) {
	zipCSV := "month_date_yyyymm,postal_code,active_listing_count,pending_listing_count,median_days_on_market,price_reduced_count\n" +
		"202403,08701,50,40,30,10\n" +
		"202403,90210,60,45,28,12\n" +
		"202402,08701,55,41,29,11\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(zipCSV))
	}))
	defer srv.Close()

	c := testClient(t, map[string]string{"zip": srv.URL})
	tbl := c.Fetch(context.Background(), drepo.GranularityZip)

	require.Len(t, tbl.Rows, 3)
	require.Equal(t, "08701", tbl.Rows[0].Region)
}
