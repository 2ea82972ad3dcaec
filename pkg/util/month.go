package util

import (
	"fmt"
	"sort"
)

// Year-month values are encoded as YYYYMM integers (e.g. 202403 = March 2024),
// matching the month_date_yyyymm column of the inventory feeds.

// CalendarMonth returns the calendar month (1-12) of a YYYYMM value.
func CalendarMonth(ym int) int {
	return ym % 100
}

// FormatYearMonth renders a YYYYMM value as "2024-03".
func FormatYearMonth(ym int) string {
	return fmt.Sprintf("%d-%02d", ym/100, ym%100)
}

// MonthOfDate truncates a "2006-01-02" date column name to its "2006-01"
// month. Short inputs pass through unchanged.
func MonthOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// MaxYearMonth returns the largest YYYYMM in the slice, or 0 if empty.
func MaxYearMonth(months []int) int {
	max := 0
	for _, m := range months {
		if m > max {
			max = m
		}
	}
	return max
}

// TrailingYearStart returns the YYYYMM cutoff one year before latest.
// Months strictly greater than the cutoff form the trailing ~12 month window.
func TrailingYearStart(latest int) int {
	return latest - 100
}

// UniqueSorted returns the distinct values of the slice in ascending order.
func UniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
