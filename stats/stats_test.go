package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathkit/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMean_Basic verifies the arithmetic mean on a small known input.
func TestMean_Basic(t *testing.T) {
	assert.Equal(t, 3.0, stats.Mean([]float64{1, 2, 3, 4, 5}), "mean of 1..5 must be 3")
}

// TestMean_Empty verifies the explicit zero-default for empty input.
func TestMean_Empty(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(nil), "empty input must yield 0, not NaN")
}

// TestMedian_OddAndEven verifies both parity branches of Median.
func TestMedian_OddAndEven(t *testing.T) {
	assert.Equal(t, 3.0, stats.Median([]float64{1, 2, 3, 4, 5}), "odd length: middle element")
	assert.Equal(t, 3.5, stats.Median([]float64{1, 2, 2, 3, 4, 4, 4, 5}), "even length: average of middles")
	assert.Equal(t, 0.0, stats.Median(nil), "empty input must yield 0")
}

// TestMedian_DoesNotMutateInput ensures the caller's slice keeps its order.
func TestMedian_DoesNotMutateInput(t *testing.T) {
	xs := []float64{5, 1, 4, 2, 3}
	_ = stats.Median(xs)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, xs, "Median must sort a copy, not the input")
}

// TestMode_SingleAndMulti verifies single-mode, multi-mode and empty cases.
func TestMode_SingleAndMulti(t *testing.T) {
	assert.Equal(t, []float64{4}, stats.Mode([]float64{1, 2, 2, 3, 4, 4, 4, 5}), "4 occurs three times")

	// Two values tie at count 2; both must come back, ascending.
	assert.Equal(t, []float64{2, 4}, stats.Mode([]float64{4, 2, 4, 2, 1}), "ties return every winner in ascending order")

	assert.Empty(t, stats.Mode(nil), "empty input returns an empty sequence")
}

// TestMode_AllDistinct verifies that a uniform frequency returns every value.
func TestMode_AllDistinct(t *testing.T) {
	got := stats.Mode([]float64{3, 1, 2})
	assert.Equal(t, []float64{1, 2, 3}, got, "all counts equal: every value is a mode")
}

// TestStdDev_Population verifies the N-divisor estimator and its invariants.
func TestStdDev_Population(t *testing.T) {
	// Population std-dev of 1..5 is sqrt(2), not sqrt(2.5) (the sample one).
	got := stats.StdDev([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, math.Sqrt2, got, 1e-12, "must divide by N, not N-1")

	assert.Equal(t, 0.0, stats.StdDev([]float64{7, 7, 7}), "equal elements: zero deviation")
	assert.Equal(t, 0.0, stats.StdDev(nil), "empty input must yield 0")
}

// TestStdDev_NonNegative checks σ ≥ 0 across assorted inputs.
func TestStdDev_NonNegative(t *testing.T) {
	inputs := [][]float64{
		{-5, 5},
		{0.1, 0.2, 0.3},
		{-1e9, 1e9, 13},
		{42},
	}
	for _, xs := range inputs {
		assert.GreaterOrEqual(t, stats.StdDev(xs), 0.0, "standard deviation is never negative")
	}
}

// TestMinMax_BoundsEveryElement verifies Min ≤ every element ≤ Max.
func TestMinMax_BoundsEveryElement(t *testing.T) {
	xs := []float64{3, -7, 12, 0, 5.5, -7, 12}
	ex := stats.MinMax(xs)
	require.True(t, ex.Ok, "non-empty input must set Ok")
	assert.Equal(t, -7.0, ex.Min, "minimum")
	assert.Equal(t, 12.0, ex.Max, "maximum")
	for _, v := range xs {
		assert.LessOrEqual(t, ex.Min, v, "Min bounds every element from below")
		assert.GreaterOrEqual(t, ex.Max, v, "Max bounds every element from above")
	}
}

// TestMinMax_Empty verifies the no-data sentinel.
func TestMinMax_Empty(t *testing.T) {
	ex := stats.MinMax(nil)
	assert.False(t, ex.Ok, "empty input must signal no data")
}

// TestSumOfSquares_Basic verifies the square-sum reduction.
func TestSumOfSquares_Basic(t *testing.T) {
	assert.Equal(t, 14.0, stats.SumOfSquares([]float64{1, 2, 3}), "1+4+9")
	assert.Equal(t, 0.0, stats.SumOfSquares(nil), "empty input must yield 0")
}

// TestVariance_MatchesStdDev cross-checks Variance against StdDev².
func TestVariance_MatchesStdDev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4.0, stats.Variance(xs), 1e-12, "classic textbook population variance")
	assert.InDelta(t, 2.0, stats.StdDev(xs), 1e-12, "σ = sqrt(variance)")
}
