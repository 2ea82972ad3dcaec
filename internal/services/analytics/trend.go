package analytics

import (
	"gonum.org/v1/gonum/stat"
)

// FitTrend fits a degree-1 least-squares line to the tail of a sparse series
// and returns one fitted value per input position. Positions before the first
// point used by the fit stay nil, as does the whole output when fewer than 3
// valid points exist or the fit degenerates.
func FitTrend(series []*float64, window int) []*float64 {
	out := make([]*float64, len(series))
	if window <= 0 {
		window = 6
	}

	type pair struct {
		x float64
		y float64
	}
	var valid []pair
	for i, v := range series {
		if v == nil || !isFinite(*v) {
			continue
		}
		valid = append(valid, pair{x: float64(i), y: *v})
	}
	if len(valid) < 3 {
		return out
	}

	// Only the most recent points drive the forecast.
	if len(valid) > window {
		valid = valid[len(valid)-window:]
	}

	xs := make([]float64, len(valid))
	ys := make([]float64, len(valid))
	for i, p := range valid {
		xs[i] = p.x
		ys[i] = p.y
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if !isFinite(intercept) || !isFinite(slope) {
		return out
	}

	first := int(valid[0].x)
	for i := first; i < len(series); i++ {
		fitted := slope*float64(i) + intercept
		out[i] = &fitted
	}
	return out
}
