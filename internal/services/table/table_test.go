package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const inventoryCSV = `month_date_yyyymm,cbsa_title,active_listing_count,pending_listing_count,median_days_on_market,price_reduced_count,extra
202403,"Austin, TX",1200,400,35,210,x
202403,"Denver, CO",abc,400,35,210,x
,"Denver, CO",900,300,30,100,x
202402,"Austin, TX",1100,380,,200,x
202402,"Denver, CO",950,310,31,120,x
`

func TestDecodeInventoryDropsInvalidRows(t *testing.T) {
	tbl, err := DecodeInventory(strings.NewReader(inventoryCSV), "cbsa_title", 0)
	require.NoError(t, err)

	// Bad metric, missing month and missing median days rows are dropped.
	require.Len(t, tbl.Rows, 2)
	require.Equal(t, 202403, tbl.Rows[0].Month)
	require.Equal(t, "Austin, TX", tbl.Rows[0].Region)
	require.Equal(t, 1200.0, tbl.Rows[0].ActiveListingCount)
	require.Equal(t, 202402, tbl.Rows[1].Month)
	require.Equal(t, "Denver, CO", tbl.Rows[1].Region)
}

func TestDecodeInventoryChunked(t *testing.T) {
	whole, err := DecodeInventory(strings.NewReader(inventoryCSV), "cbsa_title", 0)
	require.NoError(t, err)
	chunked, err := DecodeInventory(strings.NewReader(inventoryCSV), "cbsa_title", 1)
	require.NoError(t, err)

	require.Equal(t, whole.Rows, chunked.Rows)
}

func TestDecodeInventoryKeepsPostalCodeStrings(t *testing.T) {
	csv := "month_date_yyyymm,postal_code,active_listing_count,pending_listing_count,median_days_on_market,price_reduced_count\n" +
		"202403,08701,50,40,30,10\n"
	tbl, err := DecodeInventory(strings.NewReader(csv), "postal_code", 0)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	require.Equal(t, "08701", tbl.Rows[0].Region)
}

func TestDecodeInventoryMissingColumn(t *testing.T) {
	csv := "month_date_yyyymm,active_listing_count\n202403,50\n"
	_, err := DecodeInventory(strings.NewReader(csv), "cbsa_title", 0)
	require.Error(t, err)
}

func TestDecodeWide(t *testing.T) {
	csv := `RegionID,RegionName,2024-01-31,2024-02-29,note
1,"New York, NY",0.31,0.33,n
2,"Pittsburgh, PA",,0.18,n
`
	tbl, err := DecodeWide(strings.NewReader(csv), "RegionName")
	require.NoError(t, err)

	require.Equal(t, []string{"2024-01-31", "2024-02-29"}, tbl.Dates)
	require.Equal(t, "2024-02-29", tbl.LatestDate())

	v, ok := tbl.Value("New York, NY", "2024-01-31")
	require.True(t, ok)
	require.Equal(t, 0.31, v)

	// Blank cell is absent, not zero.
	_, ok = tbl.Value("Pittsburgh, PA", "2024-01-31")
	require.False(t, ok)

	_, ok = tbl.Row("Nowhere, ZZ")
	require.False(t, ok)
}
