package stattest

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Dist supplies the distribution functions the hypothesis tests need
// for their p-values. It is injected so the suite degrades to
// structured "unavailable" results when no provider is wired in,
// instead of failing at call time.
type Dist interface {
	// NormalCDF evaluates the standard normal CDF at x.
	NormalCDF(x float64) float64
	// NormalQuantile evaluates the standard normal inverse CDF at p.
	NormalQuantile(p float64) float64
	// ChiSquaredSurvival evaluates 1-CDF of a chi-squared distribution
	// with df degrees of freedom at x.
	ChiSquaredSurvival(df, x float64) float64
}

// GonumDist is the default Dist backed by gonum/stat/distuv.
type GonumDist struct{}

func (GonumDist) NormalCDF(x float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.CDF(x)
}

func (GonumDist) NormalQuantile(p float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Quantile(p)
}

func (GonumDist) ChiSquaredSurvival(df, x float64) float64 {
	return distuv.ChiSquared{K: df}.Survival(x)
}
