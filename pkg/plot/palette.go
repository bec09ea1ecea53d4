// ABOUTME: Fixed five-slot series palette: lipgloss color styles plus legend markers
// ABOUTME: Series beyond the fifth wrap around; the resulting ambiguity is accepted

package plot

import "github.com/charmbracelet/lipgloss"

// paletteSize is the number of distinct series tags before wrapping. More
// series than this render, but share colors and markers with earlier ones.
const paletteSize = 5

// paletteEntry pairs a legend marker with the style applied to the series'
// glyphs when color is on. Markers are distinct so the legend stays
// readable even without color.
type paletteEntry struct {
	marker string
	style  lipgloss.Style
}

// Bright white, bright red, bright blue, bright yellow, cyan.
var palette = [paletteSize]paletteEntry{
	{marker: "---", style: lipgloss.NewStyle().Foreground(lipgloss.Color("15"))},
	{marker: "===", style: lipgloss.NewStyle().Foreground(lipgloss.Color("9"))},
	{marker: "...", style: lipgloss.NewStyle().Foreground(lipgloss.Color("12"))},
	{marker: "~~~", style: lipgloss.NewStyle().Foreground(lipgloss.Color("11"))},
	{marker: "+++", style: lipgloss.NewStyle().Foreground(lipgloss.Color("6"))},
}

// titleStyle is applied to the title line when color is on.
var titleStyle = lipgloss.NewStyle().Bold(true)

// seriesTag returns the palette slot for the i-th series.
func seriesTag(i int) int {
	return i % paletteSize
}

// colorize styles s with the palette entry for tag. Unknown tags (including
// noTag) and empty strings pass through unchanged.
func colorize(s string, tag int) string {
	if tag < 0 || tag >= paletteSize || s == "" {
		return s
	}
	return palette[tag].style.Render(s)
}

// marker returns the legend marker for tag, uncolored.
func marker(tag int) string {
	if tag < 0 || tag >= paletteSize {
		return "---"
	}
	return palette[tag].marker
}
