package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"HousePulse/internal/domain/models"
)

// Inventory feed columns. The metric set is identical across granularities;
// only the region column differs.
const (
	ColMonth        = "month_date_yyyymm"
	ColActive       = "active_listing_count"
	ColPending      = "pending_listing_count"
	ColMedianDays   = "median_days_on_market"
	ColPriceReduced = "price_reduced_count"
)

var dateColumn = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DecodeInventory reads an inventory CSV, keeping only the month, metric and
// region columns, and drops rows where the month or any metric fails numeric
// coercion. Rows are cleaned in chunks of chunkSize to bound peak memory on
// the large zip/county files; chunkSize <= 0 cleans in a single pass.
//
// The region column stays a string throughout, which preserves leading
// zeros in postal codes.
func DecodeInventory(r io.Reader, regionColumn string, chunkSize int) (*models.InventoryTable, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	required := []string{ColMonth, ColActive, ColPending, ColMedianDays, ColPriceReduced, regionColumn}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	capHint := chunkSize
	if capHint <= 0 {
		capHint = 1024
	}
	out := &models.InventoryTable{}
	chunk := make([][]string, 0, capHint)

	flush := func() {
		for _, rec := range chunk {
			if row, ok := cleanInventoryRecord(rec, cols, regionColumn); ok {
				out.Rows = append(out.Rows, row)
			}
		}
		chunk = chunk[:0]
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		// ReuseRecord means rec is only valid until the next Read.
		cp := make([]string, len(rec))
		copy(cp, rec)
		chunk = append(chunk, cp)

		if chunkSize > 0 && len(chunk) >= chunkSize {
			flush()
		}
	}
	flush()

	return out, nil
}

// cleanInventoryRecord coerces one raw record; ok=false drops the row.
func cleanInventoryRecord(rec []string, cols map[string]int, regionColumn string) (models.InventoryRow, bool) {
	month, ok := intAt(rec, cols[ColMonth])
	if !ok {
		return models.InventoryRow{}, false
	}
	active, ok := floatAt(rec, cols[ColActive])
	if !ok {
		return models.InventoryRow{}, false
	}
	pending, ok := floatAt(rec, cols[ColPending])
	if !ok {
		return models.InventoryRow{}, false
	}
	days, ok := floatAt(rec, cols[ColMedianDays])
	if !ok {
		return models.InventoryRow{}, false
	}
	reduced, ok := floatAt(rec, cols[ColPriceReduced])
	if !ok {
		return models.InventoryRow{}, false
	}

	region := ""
	if i := cols[regionColumn]; i < len(rec) {
		region = strings.TrimSpace(rec[i])
	}

	return models.InventoryRow{
		Month:               month,
		Region:              region,
		ActiveListingCount:  active,
		PendingListingCount: pending,
		MedianDaysOnMarket:  days,
		PriceReducedCount:   reduced,
	}, true
}

// DecodeWide reads a wide-format CSV (one row per region, date-named value
// columns). Blank and non-numeric cells are simply absent from the row map.
func DecodeWide(r io.Reader, regionColumn string) (*models.WideTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	regionIdx := -1
	dateIdx := make(map[int]string)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == regionColumn {
			regionIdx = i
		}
		if dateColumn.MatchString(name) {
			dateIdx[i] = name
		}
	}
	if regionIdx < 0 {
		return nil, fmt.Errorf("missing column %q", regionColumn)
	}

	out := &models.WideTable{}
	for _, date := range dateIdx {
		out.Dates = append(out.Dates, date)
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if regionIdx >= len(rec) {
			continue
		}

		row := models.WideRow{
			Region: strings.TrimSpace(rec[regionIdx]),
			Values: make(map[string]float64, len(dateIdx)),
		}
		for i, date := range dateIdx {
			if i >= len(rec) {
				continue
			}
			v, ok := parseFloat(rec[i])
			if !ok {
				continue
			}
			row.Values[date] = v
		}
		out.Rows = append(out.Rows, row)
	}

	out.BuildIndex()
	return out, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func floatAt(rec []string, i int) (float64, bool) {
	if i >= len(rec) {
		return 0, false
	}
	return parseFloat(rec[i])
}

func intAt(rec []string, i int) (int, bool) {
	v, ok := floatAt(rec, i)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
