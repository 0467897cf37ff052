package generator

import (
	"github.com/dparker/statlab/internal/stats"
)

// DefaultBatches is the batch count used when the caller does not ask
// for one.
const DefaultBatches = 5

// BatchResult holds the outcome of running one generator several times
// with stepped seeds: the raw sequences, a basic statistics report per
// batch, and a pooled report over the concatenation of every batch.
type BatchResult struct {
	Batches     [][]float64    `json:"batches"`
	BatchStats  []stats.Report `json:"batch_stats"`
	GlobalStats stats.Report   `json:"global_stats"`
}

// Batch runs the kind generator nBatches times, incrementing the seed
// by the batch index each run so the batches are independent but the
// whole result stays reproducible. nBatches < 1 falls back to
// DefaultBatches. The only error is an unknown kind.
func Batch(kind Kind, p Params, nBatches int) (*BatchResult, error) {
	if nBatches < 1 {
		nBatches = DefaultBatches
	}

	res := &BatchResult{
		Batches:    make([][]float64, 0, nBatches),
		BatchStats: make([]stats.Report, 0, nBatches),
	}

	pooled := make([]float64, 0, nBatches*p.Count)
	for i := 0; i < nBatches; i++ {
		bp := p
		bp.Seed = p.Seed + int64(i)
		seq, err := Generate(kind, bp)
		if err != nil {
			return nil, err
		}
		res.Batches = append(res.Batches, seq)
		res.BatchStats = append(res.BatchStats, stats.Basic(seq))
		pooled = append(pooled, seq...)
	}
	res.GlobalStats = stats.Basic(pooled)

	return res, nil
}
