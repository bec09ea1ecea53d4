// ABOUTME: Data-space to dot-space projection and per-style drawing of one series
// ABOUTME: Bounds are the union of series extrema, widened when degenerate

package plot

import "math"

// bounds is a closed data-space interval mapped onto one dot axis.
type bounds struct {
	min, max float64
}

// widened returns b with a degenerate interval opened up symmetrically so
// a constant series still gets a usable scale.
func (b bounds) widened() bounds {
	if b.min == b.max {
		return bounds{min: b.min - 0.5, max: b.max + 0.5}
	}
	return b
}

// extend grows b to include every value in vs.
func (b bounds) extend(vs []float64) bounds {
	for _, v := range vs {
		if v < b.min {
			b.min = v
		}
		if v > b.max {
			b.max = v
		}
	}
	return b
}

func emptyBounds() bounds {
	return bounds{min: math.Inf(1), max: math.Inf(-1)}
}

// projectDot maps v linearly onto [0, extent-1]. Values at the bounds land
// exactly on the first and last dot; rounding may stray one dot past an
// edge, which the canvas clips.
func projectDot(v float64, b bounds, extent int) int {
	return int(math.Round((v - b.min) / (b.max - b.min) * float64(extent-1)))
}

// series is one logical data series in data space. xs is nil for index
// series, where the i-th sample sits at x = i.
type series struct {
	xs []float64
	ys []float64
}

func (s series) x(i int) float64 {
	if s.xs == nil {
		return float64(i)
	}
	return s.xs[i]
}

// drawSeries projects every sample of s and writes it to the canvas in the
// given style. The y axis is inverted so the data maximum lands on row 0.
func drawSeries(c *canvas, s series, st Style, xb, yb bounds, tag int) {
	if st == StyleBars {
		drawBars(c, s, yb, tag)
		return
	}
	px := make([]int, len(s.ys))
	py := make([]int, len(s.ys))
	for i, v := range s.ys {
		px[i] = projectDot(s.x(i), xb, c.pixelW)
		py[i] = c.pixelH - 1 - projectDot(v, yb, c.pixelH)
	}
	switch st {
	case StylePoints:
		for i := range px {
			c.set(px[i], py[i], tag)
		}
	case StyleStep:
		c.set(px[0], py[0], tag)
		for i := 1; i < len(px); i++ {
			c.line(px[i-1], py[i-1], px[i], py[i-1], tag)
			c.line(px[i], py[i-1], px[i], py[i], tag)
		}
	default: // StyleLine
		c.set(px[0], py[0], tag)
		for i := 1; i < len(px); i++ {
			c.line(px[i-1], py[i-1], px[i], py[i], tag)
		}
	}
}

// drawBars gives each sample an equal slot of the canvas width and fills it
// with a vertical run from the baseline to the projected value, leaving a
// one-dot gap between slots. The baseline is value 0 clamped into bounds,
// so all-positive data grows up from the bottom edge.
func drawBars(c *canvas, s series, yb bounds, tag int) {
	n := len(s.ys)
	base := 0.0
	if base < yb.min {
		base = yb.min
	}
	if base > yb.max {
		base = yb.max
	}
	baseRow := c.pixelH - 1 - projectDot(base, yb, c.pixelH)
	for i, v := range s.ys {
		start := i * c.pixelW / n
		stop := (i+1)*c.pixelW/n - 1 // the gap
		if stop <= start {
			stop = start + 1 // one-dot slot, no room for a gap
		}
		row := c.pixelH - 1 - projectDot(v, yb, c.pixelH)
		for x := start; x < stop; x++ {
			c.line(x, baseRow, x, row, tag)
		}
	}
}
