package analytics

import (
	"sort"

	"HousePulse/internal/domain/models"
)

// Merger joins wide-format affordability datasets on region identity and
// derives the homeowner-vs-renter gap.
type Merger struct{}

// NewMerger creates a Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// MergeGaps computes, for every region of the homeowner dataset, the
// affordability gap (homeowner - renter) at the latest homeowner date. A
// missing renter match, or a missing or zero value on either side, leaves
// that side nil and the gap nil; such regions are data-insufficient rather
// than errors. The result is sorted gap-descending with the gapless regions
// appended at the end in source order.
func (m *Merger) MergeGaps(homeowner, renter *models.WideTable) []models.AffordabilitySummaryEntry {
	if homeowner.Empty() {
		return nil
	}
	latest := homeowner.LatestDate()
	if latest == "" {
		return nil
	}

	var withGap, withoutGap []models.AffordabilitySummaryEntry
	for _, region := range homeowner.Regions() {
		entry := models.AffordabilitySummaryEntry{Region: region}

		if v, ok := homeowner.Value(region, latest); ok && v != 0 {
			entry.HomeownerAffordability = &v
		}
		if v, ok := renter.Value(region, latest); ok && v != 0 {
			entry.RenterAffordability = &v
		}
		if entry.HomeownerAffordability != nil && entry.RenterAffordability != nil {
			gap := *entry.HomeownerAffordability - *entry.RenterAffordability
			entry.AffordabilityGap = &gap
		}

		if entry.AffordabilityGap != nil {
			withGap = append(withGap, entry)
		} else {
			withoutGap = append(withoutGap, entry)
		}
	}

	sort.SliceStable(withGap, func(i, j int) bool {
		return *withGap[i].AffordabilityGap > *withGap[j].AffordabilityGap
	})

	return append(withGap, withoutGap...)
}

// Summary extracts the ranking payload from merged entries: the n largest
// gaps as least affordable, the n smallest (ascending) as most affordable.
// Gapless entries never rank.
func (m *Merger) Summary(entries []models.AffordabilitySummaryEntry, n int) models.AffordabilitySummary {
	var valid []models.AffordabilitySummaryEntry
	for _, e := range entries {
		if e.AffordabilityGap != nil {
			valid = append(valid, e)
		}
	}

	if n > len(valid) {
		n = len(valid)
	}

	least := make([]models.AffordabilitySummaryEntry, 0, n)
	least = append(least, valid[:n]...)

	most := make([]models.AffordabilitySummaryEntry, 0, n)
	for i := len(valid) - 1; i >= len(valid)-n; i-- {
		most = append(most, valid[i])
	}

	return models.AffordabilitySummary{
		LeastAffordable: least,
		MostAffordable:  most,
	}
}
