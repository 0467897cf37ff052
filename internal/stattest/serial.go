package stattest

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SerialCorrelation computes the Pearson correlation between the
// sequence and itself shifted by lag. It returns 0 when the sequence
// is too short for the window (len <= lag) or when either window is
// constant, so the caller never sees NaN. Needs no distribution
// provider.
func SerialCorrelation(seq []float64, lag int) float64 {
	if lag < 1 {
		lag = 1
	}
	n := len(seq)
	if n <= lag {
		return 0
	}

	r := stat.Correlation(seq[:n-lag], seq[lag:], nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}
