// ABOUTME: Public entry points: Render (index plots), RenderXY (scatter), RenderHist
// ABOUTME: Pure single-pass functions; validation happens before any canvas allocation

// Package plot renders numeric series as braille-dot charts sized to a
// fixed character grid, suitable for direct terminal display. Each braille
// character encodes a 2x4 block of dots, giving four times the resolution
// of plain ASCII plots. Up to five series get distinct colors and legend
// markers; beyond that the palette wraps and series become ambiguous.
package plot

import "math"

// Render plots each series against its sample index. All series share one
// scale: the union of their extrema on both axes.
func Render(seriesList [][]float64, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if err := validateSeriesList(seriesList); err != nil {
		return "", err
	}
	ss := make([]series, len(seriesList))
	for i, ys := range seriesList {
		ss[i] = series{ys: ys}
	}
	return renderSeries(ss, cfg, len(seriesList))
}

// RenderXY plots a scatter chart from exactly two equal-length series: the
// first holds x values, the second y values.
func RenderXY(seriesList [][]float64, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if len(seriesList) != 2 {
		return "", inputErrorf("xy mode needs exactly 2 series, got %d", len(seriesList))
	}
	if err := validateSeriesList(seriesList); err != nil {
		return "", err
	}
	if len(seriesList[0]) != len(seriesList[1]) {
		return "", inputErrorf("xy series lengths differ: %d vs %d",
			len(seriesList[0]), len(seriesList[1]))
	}
	ss := []series{{xs: seriesList[0], ys: seriesList[1]}}
	return renderSeries(ss, cfg, 1)
}

// RenderHist bins each series' raw samples into cfg.Bins equal-width bins
// over the combined sample range, then plots the counts. The x axis is
// labeled with the sample value range rather than bin indices.
func RenderHist(seriesList [][]float64, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if err := validateSeriesList(seriesList); err != nil {
		return "", err
	}
	counts, lo, hi := binSamples(seriesList, cfg.binCount())
	ss := make([]series, len(counts))
	for i, cs := range counts {
		ss[i] = series{ys: cs}
	}
	xb, yb := computeBounds(ss)
	if err := checkBounds(xb, yb); err != nil {
		return "", err
	}
	c := compose(ss, cfg, xb, yb)
	// Bin counts plot by slot/index, but the axis reports sample values.
	labels := bounds{min: lo, max: hi}.widened()
	return renderText(c, cfg, labels, yb, len(ss)), nil
}

// renderSeries is the shared tail of the index and xy pipelines.
func renderSeries(ss []series, cfg Config, seriesCount int) (string, error) {
	xb, yb := computeBounds(ss)
	if err := checkBounds(xb, yb); err != nil {
		return "", err
	}
	c := compose(ss, cfg, xb, yb)
	return renderText(c, cfg, xb, yb, seriesCount), nil
}

// checkBounds guards the unreachable-by-construction inversion case so a
// bug surfaces as an error instead of a corrupt canvas.
func checkBounds(xb, yb bounds) error {
	if xb.min > xb.max || yb.min > yb.max {
		return renderErrorf("computed bounds inverted: x[%g,%g] y[%g,%g]",
			xb.min, xb.max, yb.min, yb.max)
	}
	return nil
}

// validateSeriesList rejects the malformed shapes the renderer cannot
// scale: no series, an empty series, or non-finite values.
func validateSeriesList(seriesList [][]float64) error {
	if len(seriesList) == 0 {
		return inputErrorf("empty series list")
	}
	for i, s := range seriesList {
		if len(s) == 0 {
			return inputErrorf("series %d is empty", i+1)
		}
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return inputErrorf("series %d contains a non-finite value", i+1)
			}
		}
	}
	return nil
}
