// ABOUTME: Final text assembly: title, braille rows, axis label gutter, legend
// ABOUTME: Labels live in a reserved gutter so they never overlap plotted glyphs

package plot

import (
	"strconv"
	"strings"

	"github.com/euphrasiologist/termplot/internal/textwidth"
)

// labelGutter is the minimum number of character columns reserved to the
// right of the plot for y-axis labels. A render whose labels outgrow it
// widens the gutter so every row still pads to the same total width.
// Label text never enters the plotting grid.
const labelGutter = 10

// renderText serializes the canvas with the surrounding chrome. Every plot
// row is padded to cols plus the label gutter so the block is rectangular;
// the first row carries the y maximum right-aligned in the gutter, the
// last row the y minimum. A final axis line puts the x minimum left and x maximum right.
// Output is byte-for-byte stable for identical inputs.
func renderText(c *canvas, cfg Config, xb, yb bounds, seriesCount int) string {
	var b strings.Builder
	top, bottom := axisLabel(yb.max), axisLabel(yb.min)
	gutter := labelGutter
	if n := len(top) + 1; n > gutter {
		gutter = n
	}
	if n := len(bottom) + 1; n > gutter {
		gutter = n
	}
	total := c.cols + gutter

	if cfg.Title != "" {
		b.WriteString(centerLabel(styled(cfg.Title, cfg.Color), c.cols))
		b.WriteByte('\n')
	}

	rows := c.cells()
	for ri, row := range rows {
		line := renderRow(row, cfg.Color)
		label := ""
		switch ri {
		case 0:
			label = top
		case len(rows) - 1:
			label = bottom
		}
		pad := total - c.cols - len(label)
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(label)
		b.WriteByte('\n')
	}

	xmin, xmax := axisLabel(xb.min), axisLabel(xb.max)
	b.WriteString(xmin)
	b.WriteString(strings.Repeat(" ", max(1, c.cols-len(xmin)-len(xmax))))
	b.WriteString(xmax)
	b.WriteByte('\n')

	if cfg.Legend {
		b.WriteString(legendLine(seriesCount, cfg.Color))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderRow joins one row of cells, coloring runs of equal tags together so
// consecutive same-series glyphs share one escape sequence.
func renderRow(row []cell, color bool) string {
	if !color {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.glyph)
		}
		return b.String()
	}
	var b strings.Builder
	runStart := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].tag == row[runStart].tag {
			continue
		}
		var run strings.Builder
		for _, c := range row[runStart:i] {
			run.WriteRune(c.glyph)
		}
		b.WriteString(colorize(run.String(), row[runStart].tag))
		runStart = i
	}
	return b.String()
}

// axisLabel formats a bound the way the axes show it: one decimal place.
func axisLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// centerLabel centers s over width columns, measuring visible width so a
// colored title centers the same as a plain one.
func centerLabel(s string, width int) string {
	w := textwidth.Visible(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// styled applies the title style when color is on.
func styled(s string, color bool) string {
	if !color {
		return s
	}
	return titleStyle.Render(s)
}
