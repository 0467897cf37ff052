// Package stats computes descriptive statistics reports and histogram
// data from numeric sequences.
//
// Degenerate input is never an error here: an empty sequence yields a
// zero-value report, higher moments are 0 below their minimum sample
// size, and the coefficient of variation is 0 for a zero mean. The
// caller decides whether a sentinel result is acceptable.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Report is the fixed descriptive-statistics summary of one sequence.
// N == 0 marks the empty-input sentinel.
type Report struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`

	// Full-report extras, zero-valued in a Basic report.
	Mode     []float64 `json:"mode,omitempty"`
	Skewness float64   `json:"skewness"`
	Kurtosis float64   `json:"kurtosis"` // excess kurtosis
	CoefVar  float64   `json:"coef_variation"`
}

// Basic computes the moment and position statistics. Standard
// deviation and variance use the population divisor N. Quartiles use
// linear interpolation at (n-1)*p, the numpy default.
func Basic(seq []float64) Report {
	n := len(seq)
	if n == 0 {
		return Report{}
	}

	sorted := make([]float64, n)
	copy(sorted, seq)
	sort.Float64s(sorted)

	r := Report{
		N:        n,
		Mean:     stat.Mean(seq, nil),
		Median:   quantile(sorted, 0.5),
		Variance: stat.PopVariance(seq, nil),
		StdDev:   stat.PopStdDev(seq, nil),
		Min:      sorted[0],
		Max:      sorted[n-1],
		Q1:       quantile(sorted, 0.25),
		Q3:       quantile(sorted, 0.75),
	}
	r.Range = r.Max - r.Min
	r.IQR = r.Q3 - r.Q1
	return r
}

// Full computes Basic plus mode, shape measures and the coefficient of
// variation.
func Full(seq []float64) Report {
	r := Basic(seq)
	if r.N == 0 {
		return r
	}

	r.Mode = Mode(seq)
	r.Skewness = skewness(seq, r.Mean, r.StdDev)
	r.Kurtosis = kurtosis(seq, r.Mean, r.StdDev)
	if r.Mean != 0 {
		r.CoefVar = r.StdDev / r.Mean
	}
	return r
}

// Mode returns every value sharing the maximum frequency, in order of
// first occurrence so ties are deterministic.
func Mode(seq []float64) []float64 {
	if len(seq) == 0 {
		return nil
	}

	counts := make(map[float64]int, len(seq))
	order := make([]float64, 0, len(seq))
	maxFreq := 0
	for _, v := range seq {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		if counts[v] > maxFreq {
			maxFreq = counts[v]
		}
	}

	modes := make([]float64, 0, 1)
	for _, v := range order {
		if counts[v] == maxFreq {
			modes = append(modes, v)
		}
	}
	return modes
}

// skewness is Fisher's moment coefficient: the third standardized
// moment with population normalization. Defined as 0 for n < 3 or a
// degenerate (zero std-dev) sequence.
func skewness(seq []float64, mean, std float64) float64 {
	n := len(seq)
	if n < 3 || std == 0 {
		return 0
	}
	var sum float64
	for _, v := range seq {
		d := v - mean
		sum += d * d * d
	}
	return (sum / float64(n)) / (std * std * std)
}

// kurtosis is the excess kurtosis: fourth standardized moment minus 3.
// Defined as 0 for n < 4 or a degenerate sequence.
func kurtosis(seq []float64, mean, std float64) float64 {
	n := len(seq)
	if n < 4 || std == 0 {
		return 0
	}
	var sum float64
	for _, v := range seq {
		d := v - mean
		sum += d * d * d * d
	}
	return (sum/float64(n))/(std*std*std*std) - 3
}

// quantile interpolates linearly between the order statistics at
// position p*(n-1). Input must be sorted.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
