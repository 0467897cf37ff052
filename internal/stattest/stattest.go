// Package stattest runs goodness-of-fit and randomness tests over
// generated number sequences: Kolmogorov-Smirnov uniformity,
// chi-square goodness of fit, Shapiro-Francia normality, serial
// correlation and the runs test.
//
// Every test returns a structured verdict. Tests that need
// distribution functions go through an injected Dist provider; a suite
// built without one reports each such test as unavailable rather than
// failing.
package stattest

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dparker/statlab/internal/stats"
)

// DefaultAlpha is the significance level used when the caller does not
// pick one.
const DefaultAlpha = 0.05

// Targets for the chi-square goodness-of-fit test.
const (
	TargetUniform = "uniform"
	TargetNormal  = "normal"
)

// Result is the common verdict shape of the distribution-fit tests.
type Result struct {
	Test           string  `json:"test"`
	Statistic      float64 `json:"statistic"`
	PValue         float64 `json:"p_value"`
	Alpha          float64 `json:"alpha"`
	Passed         bool    `json:"passed"`
	Interpretation string  `json:"interpretation"`
	Err            string  `json:"error,omitempty"`
}

// Suite runs hypothesis tests with a fixed distribution provider.
type Suite struct {
	dist Dist
}

// New returns a suite backed by gonum distributions.
func New() *Suite {
	return &Suite{dist: GonumDist{}}
}

// NewWithDist returns a suite using d for its p-values. A nil d makes
// every provider-dependent test report unavailable.
func NewWithDist(d Dist) *Suite {
	return &Suite{dist: d}
}

func unavailable(test string) Result {
	return Result{
		Test:           test,
		Err:            "distribution provider unavailable",
		Interpretation: fmt.Sprintf("the %s test could not be performed", test),
	}
}

// Uniformity runs a one-sample Kolmogorov-Smirnov test of seq against
// the uniform(0,1) distribution. The verdict passes when the p-value
// exceeds alpha (DefaultAlpha when alpha <= 0).
func (s *Suite) Uniformity(seq []float64, alpha float64) Result {
	if s.dist == nil {
		return unavailable("uniformity")
	}
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	r := Result{Test: "uniformity", Alpha: alpha}
	n := len(seq)
	if n == 0 {
		r.Err = "empty sequence"
		r.Interpretation = "the uniformity test could not be performed"
		return r
	}

	sorted := make([]float64, n)
	copy(sorted, seq)
	sort.Float64s(sorted)

	// D = sup |F_n(x) - F(x)| with F the uniform(0,1) CDF clamped to
	// [0,1] for out-of-range samples.
	var d float64
	for i, x := range sorted {
		f := math.Min(math.Max(x, 0), 1)
		dPlus := float64(i+1)/float64(n) - f
		dMinus := f - float64(i)/float64(n)
		d = math.Max(d, math.Max(dPlus, dMinus))
	}

	r.Statistic = d
	r.PValue = kolmogorovP(d, n)
	r.Passed = r.PValue > alpha
	verdict := "not uniformly distributed"
	if r.Passed {
		verdict = "uniformly distributed"
	}
	r.Interpretation = fmt.Sprintf("the numbers are %s (p=%.4f)", verdict, r.PValue)
	return r
}

// kolmogorovP approximates the two-sided p-value of the KS statistic d
// for sample size n via the asymptotic Kolmogorov distribution with
// the Stephens small-sample correction.
func kolmogorovP(d float64, n int) float64 {
	if d <= 0 {
		return 1
	}
	sqn := math.Sqrt(float64(n))
	lambda := (sqn + 0.12 + 0.11/sqn) * d

	var sum float64
	sign := 1.0
	for j := 1; j <= 100; j++ {
		term := math.Exp(-2 * float64(j) * float64(j) * lambda * lambda)
		sum += sign * term
		sign = -sign
		if term < 1e-12 {
			break
		}
	}
	p := 2 * sum
	return math.Min(math.Max(p, 0), 1)
}

// ChiSquareGoF tests seq against the target distribution. The uniform
// target bins the sequence into 10 equal-width intervals and compares
// observed counts with n/10; the normal target uses a Shapiro-Francia
// statistic instead. Verdict passes when p > DefaultAlpha.
func (s *Suite) ChiSquareGoF(seq []float64, target string) Result {
	if s.dist == nil {
		return unavailable("goodness-of-fit")
	}
	switch target {
	case TargetNormal:
		return s.shapiroFrancia(seq)
	case TargetUniform, "":
		return s.chiSquareUniform(seq)
	default:
		return Result{
			Test:           "goodness-of-fit",
			Err:            fmt.Sprintf("unknown target distribution: %s", target),
			Interpretation: "the goodness-of-fit test could not be performed",
		}
	}
}

func (s *Suite) chiSquareUniform(seq []float64) Result {
	r := Result{Test: "chi-square", Alpha: DefaultAlpha}
	n := len(seq)
	if n == 0 {
		r.Err = "empty sequence"
		r.Interpretation = "the chi-square test could not be performed"
		return r
	}

	const bins = 10
	h := stats.Compute(seq, bins)
	expected := float64(n) / bins

	var chi2 float64
	for _, obs := range h.Frequencies {
		diff := float64(obs) - expected
		chi2 += diff * diff / expected
	}

	r.Statistic = chi2
	r.PValue = s.dist.ChiSquaredSurvival(bins-1, chi2)
	r.Passed = r.PValue > DefaultAlpha
	verdict := "inadequately"
	if r.Passed {
		verdict = "adequately"
	}
	r.Interpretation = fmt.Sprintf("the numbers fit a uniform distribution %s (p=%.4f)", verdict, r.PValue)
	return r
}

// shapiroFrancia computes the Shapiro-Francia W' statistic (squared
// correlation between order statistics and Blom normal scores) with
// Royston's 1993 p-value approximation, valid for 5 <= n <= 5000.
func (s *Suite) shapiroFrancia(seq []float64) Result {
	r := Result{Test: "shapiro-francia", Alpha: DefaultAlpha}
	n := len(seq)
	if n < 5 {
		r.Err = "sample too small for normality test"
		r.Interpretation = "the normality test could not be performed"
		return r
	}

	sorted := make([]float64, n)
	copy(sorted, seq)
	sort.Float64s(sorted)
	if sorted[0] == sorted[n-1] {
		r.Err = "degenerate sequence"
		r.Interpretation = "the normality test could not be performed"
		return r
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = s.dist.NormalQuantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
	}

	corr := stat.Correlation(sorted, scores, nil)
	w := corr * corr
	r.Statistic = w

	if w >= 1 {
		r.PValue = 1
	} else {
		u := math.Log(float64(n))
		v := math.Log(u)
		mu := 1.0521*(v-u) - 1.2725
		sigma := -0.26758*(v+2/u) + 1.0308
		z := (math.Log(1-w) - mu) / sigma
		r.PValue = 1 - s.dist.NormalCDF(z)
	}

	r.Passed = r.PValue > DefaultAlpha
	verdict := "inadequately"
	if r.Passed {
		verdict = "adequately"
	}
	r.Interpretation = fmt.Sprintf("the numbers fit a normal distribution %s (p=%.4f)", verdict, r.PValue)
	return r
}
