package bloompress

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestPredictedFalsePositiveCurve(t *testing.T) {
	insertCounts := Range(0, 10_000, 1000)
	for _, k := range []int{4, 5, 6} {
		curve := PredictedFalsePositiveCurve(1<<16, k, insertCounts)
		require.Equal(t, 1<<16, curve.BitWidth)
		require.Equal(t, k, curve.HashCount)
		require.Len(t, curve.Points, len(insertCounts))
		for i, p := range curve.Points {
			require.Equal(t, insertCounts[i], p.InsertCount)
			require.Equal(t, EstimateFalsePositiveRate(1<<16, k, p.InsertCount), p.Predicted)
			require.True(t, math.IsNaN(p.Observed))
		}
	}
}

func TestCompareFalsePositiveTracksPrediction(t *testing.T) {
	curve, err := CompareFalsePositive(NewSource(8), 1<<16, 5, []int{2000, 5000, 10_000}, 20_000, 5)
	require.NoError(t, err)
	for _, p := range curve.Points {
		t.Logf("n=%d predicted=%.5f observed=%.5f", p.InsertCount, p.Predicted, p.Observed)
		require.InDelta(t, p.Predicted, p.Observed, 0.01, "n=%d", p.InsertCount)
	}
	// ~4.3% at n=10000.
	last := curve.Points[len(curve.Points)-1]
	require.InDelta(t, 0.0433, last.Predicted, 0.0001)
}

func TestCompareFalsePositiveEmptyFilter(t *testing.T) {
	curve, err := CompareFalsePositive(NewSource(1), 1<<10, 3, []int{0}, 100, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, curve.Points[0].Predicted)
	require.Equal(t, 0.0, curve.Points[0].Observed)
}

func TestCompareFalsePositivePredictionOnly(t *testing.T) {
	rng := &countingSource{Source: NewSource(1)}
	curve, err := CompareFalsePositive(rng, 1<<16, 4, []int{100, 200}, 0, 0)
	require.NoError(t, err)
	require.Zero(t, rng.calls)
	for _, p := range curve.Points {
		require.True(t, math.IsNaN(p.Observed))
		require.Greater(t, p.Predicted, 0.0)
	}
}

func TestCompareFalsePositiveInvalid(t *testing.T) {
	for _, tc := range []struct {
		name         string
		bitWidth     int
		hashCount    int
		insertCounts []int
		probes       int
		sampleSize   int
	}{
		{"negative samples", 1 << 10, 3, []int{1}, 10, -1},
		{"no probes", 1 << 10, 3, []int{1}, 0, 1},
		{"bad bit width", 1001, 3, []int{1}, 10, 1},
		{"bad bit width without samples", 1001, 3, []int{1}, 10, 0},
		{"zero hash count", 1 << 10, 0, []int{1}, 10, 1},
		{"negative insert count", 1 << 10, 3, []int{-5}, 10, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CompareFalsePositive(NewSource(1), tc.bitWidth, tc.hashCount, tc.insertCounts, tc.probes, tc.sampleSize)
			require.True(t, errors.Is(err, ErrInvalidConfiguration), "%v", err)
		})
	}
}
