package analytics

import (
	"sort"

	"HousePulse/internal/domain/models"
)

// Ranker extracts top-N / bottom-N regions from comparison results.
type Ranker struct {
	n int
}

// NewRanker creates a Ranker returning lists of size n.
func NewRanker(n int) *Ranker {
	if n <= 0 {
		n = 10
	}
	return &Ranker{n: n}
}

// TopBottom sorts results descending by the metric's percent-change field
// and returns the first N as top and the last N as bottom. Bottom keeps the
// descending order, so its entries are the most negative movers.
func (r *Ranker) TopBottom(results []models.ComparisonResult, metric models.RankMetric) models.TopBottom {
	sorted := make([]models.ComparisonResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i], metric) > sortKey(sorted[j], metric)
	})

	n := r.n
	if n > len(sorted) {
		n = len(sorted)
	}

	top := make([]models.RankedEntry, 0, n)
	for _, res := range sorted[:n] {
		top = append(top, project(res, metric))
	}
	bottom := make([]models.RankedEntry, 0, n)
	for _, res := range sorted[len(sorted)-n:] {
		bottom = append(bottom, project(res, metric))
	}

	return models.TopBottom{Top: top, Bottom: bottom}
}

func sortKey(res models.ComparisonResult, metric models.RankMetric) float64 {
	switch metric {
	case models.RankActive:
		return res.ChangePercentage
	case models.RankPending:
		return res.PendingChange
	default:
		return res.RatioChange
	}
}

func project(res models.ComparisonResult, metric models.RankMetric) models.RankedEntry {
	switch metric {
	case models.RankActive:
		return models.RankedEntry{
			Region:           res.Region,
			Current:          res.CurrentActive,
			PrePandemic:      res.HistoricalActive,
			ChangePercentage: res.ChangePercentage,
		}
	case models.RankPending:
		return models.RankedEntry{
			Region:           res.Region,
			Current:          res.CurrentPending,
			PrePandemic:      res.HistoricalPending,
			ChangePercentage: res.PendingChange,
		}
	default:
		return models.RankedEntry{
			Region:           res.Region,
			Current:          res.CurrentRatio,
			PrePandemic:      res.HistoricalRatio,
			ChangePercentage: res.RatioChange,
		}
	}
}
