// ABOUTME: Histogram binning: shared equal-width bin edges across all sample series
// ABOUTME: Half-open intervals, last bin closed; index clamped to absorb the maximum

package plot

import "math"

// binSamples counts each series' samples into bins equal-width intervals
// spanning the combined [min, max] of every series, so cross-series bars
// are directly comparable. Intervals are [edge_i, edge_i+1) except the last,
// which also includes the maximum. Returns one count series per input
// series plus the shared value range for axis labeling.
func binSamples(seriesList [][]float64, bins int) (counts [][]float64, lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, samples := range seriesList {
		for _, v := range samples {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	width := (hi - lo) / float64(bins)
	counts = make([][]float64, len(seriesList))
	for i, samples := range seriesList {
		cs := make([]float64, bins)
		for _, v := range samples {
			idx := 0
			if width > 0 {
				idx = int(math.Floor((v - lo) / width))
			}
			// Clamp absorbs v == hi and floating rounding past the edge.
			if idx >= bins {
				idx = bins - 1
			}
			if idx < 0 {
				idx = 0
			}
			cs[idx]++
		}
		counts[i] = cs
	}
	return counts, lo, hi
}
