package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestBasic(t *testing.T) {
	t.Run("EmptySequence", func(t *testing.T) {
		r := Basic(nil)
		assert.Equal(t, Report{}, r, "empty input must yield the zero report")
	})

	t.Run("SingleValue", func(t *testing.T) {
		r := Basic([]float64{5.0})
		assert.Equal(t, 1, r.N)
		assert.Equal(t, 5.0, r.Mean)
		assert.Equal(t, 5.0, r.Median)
		assert.Equal(t, 5.0, r.Min)
		assert.Equal(t, 5.0, r.Max)
		assert.Zero(t, r.StdDev)
		assert.Zero(t, r.Variance)
		assert.Zero(t, r.Range)
		assert.Zero(t, r.IQR)
	})

	t.Run("KnownValues", func(t *testing.T) {
		r := Basic([]float64{1, 2, 3, 4})
		assert.InDelta(t, 2.5, r.Mean, eps)
		assert.InDelta(t, 2.5, r.Median, eps)
		// Population divisor N, not N-1.
		assert.InDelta(t, 1.25, r.Variance, eps)
		assert.InDelta(t, 1.118033988749895, r.StdDev, eps)
		assert.InDelta(t, 1.0, r.Min, eps)
		assert.InDelta(t, 4.0, r.Max, eps)
		assert.InDelta(t, 3.0, r.Range, eps)
		// Linear interpolation at p*(n-1).
		assert.InDelta(t, 1.75, r.Q1, eps)
		assert.InDelta(t, 3.25, r.Q3, eps)
		assert.InDelta(t, 1.5, r.IQR, eps)
	})

	t.Run("OddLengthMedian", func(t *testing.T) {
		r := Basic([]float64{9, 1, 5})
		assert.InDelta(t, 5.0, r.Median, eps)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		seq := []float64{3, 1, 2}
		Basic(seq)
		assert.Equal(t, []float64{3, 1, 2}, seq)
	})
}

func TestFull(t *testing.T) {
	t.Run("SkewnessOfAsymmetricData", func(t *testing.T) {
		// mean=3, population var=3.5, third moment=4.5
		r := Full([]float64{1, 2, 3, 6})
		require.Equal(t, 4, r.N)
		assert.InDelta(t, 0.6872431934890912, r.Skewness, 1e-9)
	})

	t.Run("KurtosisOfUniformPoints", func(t *testing.T) {
		r := Full([]float64{1, 2, 3, 4})
		assert.InDelta(t, -1.36, r.Kurtosis, 1e-9)
	})

	t.Run("ShapeMeasuresZeroBelowMinimumSampleSize", func(t *testing.T) {
		assert.Zero(t, Full([]float64{1, 2}).Skewness, "skewness needs n >= 3")
		assert.Zero(t, Full([]float64{1, 2, 3}).Kurtosis, "kurtosis needs n >= 4")
	})

	t.Run("ShapeMeasuresZeroForConstantData", func(t *testing.T) {
		r := Full([]float64{2, 2, 2, 2, 2})
		assert.Zero(t, r.Skewness)
		assert.Zero(t, r.Kurtosis)
	})

	t.Run("CoefficientOfVariationZeroMean", func(t *testing.T) {
		r := Full([]float64{-1, 0, 1})
		assert.Zero(t, r.Mean)
		assert.Zero(t, r.CoefVar, "zero mean must not divide")
	})

	t.Run("CoefficientOfVariation", func(t *testing.T) {
		r := Full([]float64{1, 2, 3, 4})
		assert.InDelta(t, r.StdDev/r.Mean, r.CoefVar, eps)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		assert.Equal(t, Report{}, Full(nil))
	})
}

func TestMode(t *testing.T) {
	t.Run("SingleMode", func(t *testing.T) {
		assert.Equal(t, []float64{2}, Mode([]float64{1, 2, 2, 3}))
	})

	t.Run("TiesInFirstOccurrenceOrder", func(t *testing.T) {
		assert.Equal(t, []float64{3, 2}, Mode([]float64{3, 2, 2, 1, 3}))
	})

	t.Run("AllUniqueReturnsAllInOrder", func(t *testing.T) {
		assert.Equal(t, []float64{5, 1, 3}, Mode([]float64{5, 1, 3}))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, Mode(nil))
	})
}
