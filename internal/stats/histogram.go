package stats

import (
	"fmt"
	"math"
)

// DefaultBins is the bin count used when the caller does not ask for a
// specific resolution.
const DefaultBins = 10

// Histogram holds equal-width binning of a sequence. Edges has one
// more element than Frequencies; the last bin is closed on the right
// so the maximum lands in it.
type Histogram struct {
	Frequencies []int     `json:"frequencies"`
	Edges       []float64 `json:"bin_edges"`
	Centers     []float64 `json:"bin_centers"`
	Ranges      []string  `json:"bin_ranges"`
	Width       float64   `json:"bin_width"`
}

// Compute bins seq into bins equal-width intervals spanning
// [min, max]. An empty sequence yields a zero-value histogram; a
// constant sequence is binned over [v-0.5, v+0.5] so the counts still
// sum to len(seq). bins < 1 falls back to DefaultBins.
func Compute(seq []float64, bins int) Histogram {
	if len(seq) == 0 {
		return Histogram{}
	}
	if bins < 1 {
		bins = DefaultBins
	}

	lo, hi := seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	h := Histogram{
		Frequencies: make([]int, bins),
		Edges:       make([]float64, bins+1),
		Centers:     make([]float64, bins),
		Ranges:      make([]string, bins),
		Width:       width,
	}
	for i := 0; i <= bins; i++ {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi
	for i := 0; i < bins; i++ {
		h.Centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
		h.Ranges[i] = fmt.Sprintf("%.3f-%.3f", h.Edges[i], h.Edges[i+1])
	}

	for _, v := range seq {
		idx := int(math.Floor((v - lo) / width))
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Frequencies[idx]++
	}
	return h
}
