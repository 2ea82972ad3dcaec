package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestFitTrendLeadingGaps(t *testing.T) {
	series := []*float64{nil, nil, fptr(1), fptr(2), fptr(3)}
	out := FitTrend(series, 6)

	require.Len(t, out, 5)
	require.Nil(t, out[0])
	require.Nil(t, out[1])
	// Perfect line through (2,1), (3,2), (4,3): slope 1, intercept -1.
	require.InDelta(t, 1.0, *out[2], 1e-9)
	require.InDelta(t, 2.0, *out[3], 1e-9)
	require.InDelta(t, 3.0, *out[4], 1e-9)
}

func TestFitTrendInteriorGapGetsFitted(t *testing.T) {
	series := []*float64{fptr(10), nil, fptr(30), fptr(40)}
	out := FitTrend(series, 6)

	require.NotNil(t, out[0])
	require.NotNil(t, out[1])
	require.NotNil(t, out[3])
	require.InDelta(t, 20.0, *out[1], 1e-9)
}

func TestFitTrendUsesLastWindowPoints(t *testing.T) {
	// First two points are off the line formed by the last six; a window of 6
	// must ignore them entirely.
	series := []*float64{
		fptr(500), fptr(500),
		fptr(30), fptr(40), fptr(50), fptr(60), fptr(70), fptr(80),
	}
	out := FitTrend(series, 6)

	require.Nil(t, out[0])
	require.Nil(t, out[1])
	require.InDelta(t, 30.0, *out[2], 1e-9)
	require.InDelta(t, 80.0, *out[7], 1e-9)
}

func TestFitTrendTooFewPoints(t *testing.T) {
	series := []*float64{fptr(1), nil, fptr(2)}
	out := FitTrend(series, 6)
	for _, v := range out {
		require.Nil(t, v)
	}
}

func TestFitTrendEmptySeries(t *testing.T) {
	require.Empty(t, FitTrend(nil, 6))
}
