package zillow

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

const wideCSV = `RegionID,SizeRank,RegionName,2024-01-31,2024-02-29
102001,0,United States,0.30,0.31
394913,1,"New York, NY",0.38,
`

func testClient(t *testing.T, affordability, salePrice map[string]string) drepo.AffordabilitySource {
	t.Helper()
	cfg := &config.Config{}
	cfg.Zillow.AffordabilityURLs = affordability
	cfg.Zillow.SalePriceURLs = salePrice
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	return New(cfg, l, nopMetrics{})
}

func TestFetchWide(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(wideCSV))
	}))
	defer srv.Close()

	c := testClient(t, map[string]string{"homeowner": srv.URL}, nil)
	tbl := c.FetchWide(context.Background(), drepo.AffordabilityHomeowner)

	require.Len(t, tbl.Rows, 2)
	require.Equal(t, "2024-02-29", tbl.LatestDate())

	v, ok := tbl.Value("United States", "2024-02-29")
	require.True(t, ok)
	require.Equal(t, 0.31, v)

	// Trailing blank cell is absent.
	_, ok = tbl.Value("New York, NY", "2024-02-29")
	require.False(t, ok)
}

func TestFetchWideSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(t, map[string]string{"renter": srv.URL}, nil)
	tbl := c.FetchWide(context.Background(), drepo.AffordabilityRenter)
	require.True(t, tbl.Empty())

	tbl = c.FetchWide(context.Background(), drepo.AffordabilityHomeowner) // no url configured
	require.True(t, tbl.Empty())
}

func TestFetchRawPropagatesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			_, _ = w.Write([]byte("RegionName,2024-01-31\nUS,100\n"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(t, nil, map[string]string{
		"allHomes": srv.URL + "/ok",
		"sfrOnly":  srv.URL + "/missing",
	})

	text, err := c.FetchRaw(context.Background(), drepo.SalePriceAllHomes)
	require.NoError(t, err)
	require.Contains(t, text, "RegionName")

	_, err = c.FetchRaw(context.Background(), drepo.SalePriceSFROnly)
	require.Error(t, err)

	_, err = c.FetchRaw(context.Background(), drepo.SalePriceDataset("nope"))
	require.Error(t, err)
}
