package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/traderpulse/market"
)

func TestMean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestSampleStd(t *testing.T) {
	t.Parallel()

	// sample stddev of 1,2,3 is exactly 1
	got := SampleStd([]float64{1, 2, 3})
	assert.True(t, got.Valid)
	assert.InDelta(t, 1.0, got.Float64, 1e-12)

	assert.False(t, SampleStd([]float64{5}).Valid)
	assert.False(t, SampleStd(nil).Valid)
}

func TestMeanValid(t *testing.T) {
	t.Parallel()

	got := MeanValid([]market.NullFloat{market.Float(10), market.NoValue, market.Float(20)})
	assert.True(t, got.Valid)
	assert.Equal(t, 15.0, got.Float64)

	assert.False(t, MeanValid([]market.NullFloat{market.NoValue, market.NoValue}).Valid)
	assert.False(t, MeanValid(nil).Valid)
}

func TestQuantileLinearInterpolation(t *testing.T) {
	t.Parallel()

	xs := []float64{1, 2, 3, 4}

	// h = p*(n-1); p=0.33 -> h=0.99 -> 1 + 0.99*(2-1)
	assert.InDelta(t, 1.99, Quantile(0.33, xs), 1e-12)
	assert.InDelta(t, 3.01, Quantile(0.67, xs), 1e-12)
	assert.Equal(t, 1.0, Quantile(0, xs))
	assert.Equal(t, 4.0, Quantile(1, xs))
	assert.InDelta(t, 2.5, Quantile(0.5, xs), 1e-12)
}

func TestQuantileEdgeCases(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(Quantile(0.5, nil)))
	assert.Equal(t, 7.0, Quantile(0.33, []float64{7}))

	// input order must not matter, and the input must not be reordered
	xs := []float64{3, 1, 2}
	assert.InDelta(t, 2.0, Quantile(0.5, xs), 1e-12)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}
