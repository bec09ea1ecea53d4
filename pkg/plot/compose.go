// ABOUTME: Multi-series composition: shared bounds, palette tag assignment, legend text
// ABOUTME: Series draw in index order onto one canvas; colliding dots go to the last writer

package plot

import "strconv"

// computeBounds returns the shared x and y bounds across all series, each
// widened if degenerate. Every series contributes its full extent, so the
// scale is comparable across series.
func computeBounds(ss []series) (xb, yb bounds) {
	xb, yb = emptyBounds(), emptyBounds()
	for _, s := range ss {
		yb = yb.extend(s.ys)
		if s.xs != nil {
			xb = xb.extend(s.xs)
		} else {
			xb = xb.extend([]float64{0, float64(len(s.ys) - 1)})
		}
	}
	return xb.widened(), yb.widened()
}

// compose builds the canvas and overlays every series in index order. Tags
// cycle through the palette, so a sixth series reuses the first slot.
func compose(ss []series, cfg Config, xb, yb bounds) *canvas {
	c := newCanvas(cfg.cols(), cfg.chartRows())
	for i, s := range ss {
		drawSeries(c, s, cfg.Style, xb, yb, seriesTag(i))
	}
	return c
}

// legendLine lists "Line i: <marker>" for n series in order, 1-based,
// entries separated by two spaces.
func legendLine(n int, color bool) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += "  "
		}
		tag := seriesTag(i)
		m := marker(tag)
		if color {
			m = colorize(m, tag)
		}
		out += "Line " + strconv.Itoa(i+1) + ": " + m
	}
	return out
}
