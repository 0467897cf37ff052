package stattest

import (
	"fmt"
	"math"

	"github.com/dparker/statlab/internal/stats"
)

// RunsResult is the verdict of the runs test for randomness.
type RunsResult struct {
	Runs           int     `json:"runs"`
	ExpectedRuns   float64 `json:"expected_runs"`
	Variance       float64 `json:"variance"`
	Z              float64 `json:"z"`
	PValue         float64 `json:"p_value"`
	Random         bool    `json:"random"`
	Interpretation string  `json:"interpretation"`
	Err            string  `json:"error,omitempty"`
}

// Runs performs the runs test: the sequence is reduced to a binary
// above/below-median sign sequence, maximal same-value streaks are
// counted, and the count is compared to its expectation under the
// randomness null hypothesis via a normal approximation. A zero
// variance yields z = 0 instead of a division by zero.
func (s *Suite) Runs(seq []float64) RunsResult {
	if s.dist == nil {
		return RunsResult{
			Err:            "distribution provider unavailable",
			Interpretation: "the runs test could not be performed",
		}
	}

	n := len(seq)
	if n == 0 {
		return RunsResult{
			Err:            "empty sequence",
			Interpretation: "the runs test could not be performed",
		}
	}

	median := stats.Basic(seq).Median
	signs := make([]int, n)
	for i, v := range seq {
		if v > median {
			signs[i] = 1
		}
	}

	runs := 1
	n1 := signs[0]
	for i := 1; i < n; i++ {
		if signs[i] != signs[i-1] {
			runs++
		}
		n1 += signs[i]
	}
	n2 := n - n1

	r := RunsResult{Runs: runs}
	f1, f2 := float64(n1), float64(n2)
	total := f1 + f2
	r.ExpectedRuns = 2*f1*f2/total + 1
	if total > 1 {
		r.Variance = (2 * f1 * f2 * (2*f1*f2 - f1 - f2)) / (total * total * (total - 1))
	}

	if r.Variance > 0 {
		r.Z = (float64(runs) - r.ExpectedRuns) / math.Sqrt(r.Variance)
	}
	r.PValue = 2 * (1 - s.dist.NormalCDF(math.Abs(r.Z)))
	r.Random = r.PValue > DefaultAlpha

	verdict := "not random"
	if r.Random {
		verdict = "random"
	}
	r.Interpretation = fmt.Sprintf("the sequence is %s (p=%.4f)", verdict, r.PValue)
	return r
}
