// ABOUTME: Render configuration: dimensions, title, legend, draw style, histogram bins
// ABOUTME: Zero values mean "use the default"; explicit values are never overridden

package plot

import "fmt"

// Style selects how consecutive projected points are connected.
type Style int

const (
	// StyleLine connects consecutive points with straight segments.
	StyleLine Style = iota
	// StyleStep connects consecutive points horizontally then vertically.
	StyleStep
	// StylePoints draws only the projected points.
	StylePoints
	// StyleBars draws a vertical bar from the baseline to each point.
	StyleBars
)

func (s Style) String() string {
	switch s {
	case StyleLine:
		return "line"
	case StyleStep:
		return "step"
	case StylePoints:
		return "points"
	case StyleBars:
		return "bars"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps a style name to its Style. Accepts the plural spellings
// the original flags used ("steps", "bars").
func ParseStyle(name string) (Style, error) {
	switch name {
	case "line", "":
		return StyleLine, nil
	case "step", "steps":
		return StyleStep, nil
	case "points", "point":
		return StylePoints, nil
	case "bars", "bar":
		return StyleBars, nil
	default:
		return StyleLine, configErrorf("unknown style %q (want line, step, points or bars)", name)
	}
}

// Defaults applied when the caller leaves the matching Config field zero.
const (
	DefaultWidth  = 100
	DefaultHeight = 12
	DefaultBins   = 10
)

// Config bundles everything a render call needs beyond the data itself.
// The zero value renders a plain 100x12 line chart.
type Config struct {
	// Width and Height bound the chart in character cells, excluding the
	// axis label gutter. 0 means the default; negative is a ConfigError.
	Width  int
	Height int
	// Title, when non-empty, becomes the first output line.
	Title string
	// Legend appends a "Line i: <marker>" line after the axes.
	Legend bool
	// Style is the connective drawing mode between projected points.
	Style Style
	// Bins is the histogram bin count. 0 means DefaultBins; only consulted
	// by RenderHist.
	Bins int
	// Color applies the per-series palette to glyphs, title and legend.
	// Off by default so output stays plain text.
	Color bool
}

func (c Config) validate() error {
	if c.Width < 0 {
		return configErrorf("width must be positive, got %d", c.Width)
	}
	if c.Height < 0 {
		return configErrorf("height must be positive, got %d", c.Height)
	}
	if c.Bins < 0 {
		return configErrorf("bin count must be positive, got %d", c.Bins)
	}
	if c.Style < StyleLine || c.Style > StyleBars {
		return configErrorf("unknown style %d", int(c.Style))
	}
	return nil
}

func (c Config) cols() int {
	if c.Width == 0 {
		return DefaultWidth
	}
	return c.Width
}

func (c Config) chartRows() int {
	if c.Height == 0 {
		return DefaultHeight
	}
	return c.Height
}

func (c Config) binCount() int {
	if c.Bins == 0 {
		return DefaultBins
	}
	return c.Bins
}
