// ABOUTME: End-to-end render tests: output geometry, axis labels, legend, error kinds
// ABOUTME: Exercises Render, RenderXY and RenderHist through the public API

package plot

import (
	"errors"
	"strings"
	"testing"
)

func plotLines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestRenderGeometry(t *testing.T) {
	t.Parallel()

	cfg := Config{Width: 20, Height: 5}
	out, err := Render([][]float64{{1, 2, 3, 4, 5, 4, 3, 2, 1}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	lines := plotLines(t, out)
	// 5 plot rows plus the x-axis line.
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	wantWidth := 20 + labelGutter
	for i, line := range lines[:5] {
		if w := len([]rune(line)); w != wantWidth {
			t.Errorf("row %d width = %d, want %d", i, w, wantWidth)
		}
	}
}

func TestRenderWideLabelsKeepRowsUniform(t *testing.T) {
	t.Parallel()

	// A 12-character label outgrows the minimum gutter; the gutter must
	// widen for the whole render, not just the labeled rows.
	out, err := Render([][]float64{{0, 1e9}}, Config{Width: 20, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	lines := plotLines(t, out)
	if !strings.HasSuffix(lines[0], "1000000000.0") {
		t.Errorf("top row %q should end with the y maximum label", lines[0])
	}
	want := len([]rune(lines[0]))
	if want <= 20+labelGutter {
		t.Fatalf("row width = %d, should exceed the minimum %d", want, 20+labelGutter)
	}
	for i, line := range lines[:4] {
		if w := len([]rune(line)); w != want {
			t.Errorf("row %d width = %d, want %d", i, w, want)
		}
	}
}

func TestRenderTitleAndLegendLines(t *testing.T) {
	t.Parallel()

	cfg := Config{Width: 20, Height: 4, Title: "peaks", Legend: true}
	out, err := Render([][]float64{{1, 2, 1}, {2, 1, 2}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	lines := plotLines(t, out)
	// title + 4 plot rows + axis + legend
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}
	if !strings.Contains(lines[0], "peaks") {
		t.Errorf("first line %q does not carry the title", lines[0])
	}
	if got, want := lines[6], "Line 1: ---  Line 2: ==="; got != want {
		t.Errorf("legend = %q, want %q", got, want)
	}
}

func TestRenderAxisLabels(t *testing.T) {
	t.Parallel()

	out, err := Render([][]float64{{1, 2, 3, 4, 5, 4, 3, 2, 1}}, Config{Width: 20, Height: 5})
	if err != nil {
		t.Fatal(err)
	}

	lines := plotLines(t, out)
	if !strings.HasSuffix(lines[0], "5.0") {
		t.Errorf("top row %q should end with the y maximum 5.0", lines[0])
	}
	if !strings.HasSuffix(lines[4], "1.0") {
		t.Errorf("bottom row %q should end with the y minimum 1.0", lines[4])
	}
	axis := lines[5]
	if !strings.HasPrefix(axis, "0.0") || !strings.HasSuffix(axis, "8.0") {
		t.Errorf("axis line %q should run from 0.0 to 8.0", axis)
	}
}

func TestRenderConstantSeries(t *testing.T) {
	t.Parallel()

	out, err := Render([][]float64{{3, 3, 3, 3}}, Config{Width: 10, Height: 5})
	if err != nil {
		t.Fatal(err)
	}

	lines := plotLines(t, out)
	var glyphRows []int
	for i := 0; i < 5; i++ {
		if strings.IndexFunc(lines[i], isBraille) >= 0 {
			glyphRows = append(glyphRows, i)
		}
	}
	if len(glyphRows) != 1 {
		t.Fatalf("constant series spans rows %v, want exactly one row", glyphRows)
	}
	if r := glyphRows[0]; r == 0 || r == 4 {
		t.Errorf("constant series landed on edge row %d, want mid-canvas", r)
	}
}

func isBraille(r rune) bool {
	return r >= '⠀' && r <= '⣿'
}

func TestRenderBoundaryValuesNotClipped(t *testing.T) {
	t.Parallel()

	out, err := Render([][]float64{{1, 5, 1, 5, 1}}, Config{Width: 10, Height: 4})
	if err != nil {
		t.Fatal(err)
	}

	lines := plotLines(t, out)
	if strings.IndexFunc(lines[0], isBraille) < 0 {
		t.Error("top row has no glyph for the data maximum")
	}
	if strings.IndexFunc(lines[3], isBraille) < 0 {
		t.Error("bottom row has no glyph for the data minimum")
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{Width: 30, Height: 8, Legend: true, Title: "t"}
	data := [][]float64{{1, 4, 2, 8, 5.7}, {2, 2, 3, 1, 0}}
	a, err := Render(data, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(data, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("identical inputs rendered differently")
	}
}

func TestRenderInputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		series [][]float64
	}{
		{name: "empty list", series: nil},
		{name: "empty series", series: [][]float64{{}}},
		{name: "nan value", series: [][]float64{{1, nanValue(), 3}}},
		{name: "positive infinity", series: [][]float64{{1, infValue(1)}}},
		{name: "negative infinity", series: [][]float64{{infValue(-1), 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Render(tt.series, Config{})
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Errorf("got %v, want InputError", err)
			}
		})
	}
}

func TestRenderConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "negative width", cfg: Config{Width: -1}},
		{name: "negative height", cfg: Config{Height: -3}},
		{name: "negative bins", cfg: Config{Bins: -10}},
		{name: "bogus style", cfg: Config{Style: Style(99)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Render([][]float64{{1, 2}}, tt.cfg)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("got %v, want ConfigError", err)
			}
		})
	}
}

func TestRenderXYValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		series [][]float64
	}{
		{name: "one series", series: [][]float64{{1, 2}}},
		{name: "three series", series: [][]float64{{1}, {2}, {3}}},
		{name: "length mismatch", series: [][]float64{{1, 2, 3}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := RenderXY(tt.series, Config{Width: 10, Height: 4})
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Errorf("got %v, want InputError", err)
			}
		})
	}
}

func TestRenderXY(t *testing.T) {
	t.Parallel()

	out, err := RenderXY([][]float64{{0, 10, 20}, {5, 1, 9}}, Config{Width: 10, Height: 4, Style: StylePoints})
	if err != nil {
		t.Fatal(err)
	}
	lines := plotLines(t, out)
	axis := lines[len(lines)-1]
	if !strings.HasPrefix(axis, "0.0") || !strings.HasSuffix(axis, "20.0") {
		t.Errorf("xy axis %q should span the x series range 0.0..20.0", axis)
	}
}

func TestRenderHistAxisShowsValueRange(t *testing.T) {
	t.Parallel()

	out, err := RenderHist([][]float64{{1, 1, 1, 2, 2, 3}}, Config{Width: 12, Height: 4, Bins: 3, Style: StyleBars})
	if err != nil {
		t.Fatal(err)
	}
	lines := plotLines(t, out)
	axis := lines[len(lines)-1]
	if !strings.HasPrefix(axis, "1.0") || !strings.HasSuffix(axis, "3.0") {
		t.Errorf("hist axis %q should span the sample range 1.0..3.0", axis)
	}
	// Top row holds the tallest bin (count 3 = the y maximum).
	if strings.IndexFunc(lines[0], isBraille) < 0 {
		t.Error("tallest bin should reach the top row")
	}
}

func TestRenderHistRejectsBadBins(t *testing.T) {
	t.Parallel()

	_, err := RenderHist([][]float64{{1, 2, 3}}, Config{Bins: -2})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("got %v, want ConfigError", err)
	}
}

func TestRenderMoreSeriesThanPalette(t *testing.T) {
	t.Parallel()

	// Six series wrap the palette; rendering must still succeed and the
	// legend reuses the first marker for the sixth line.
	series := make([][]float64, 6)
	for i := range series {
		series[i] = []float64{float64(i), float64(i + 1)}
	}
	out, err := Render(series, Config{Width: 15, Height: 4, Legend: true})
	if err != nil {
		t.Fatal(err)
	}
	lines := plotLines(t, out)
	legend := lines[len(lines)-1]
	if !strings.Contains(legend, "Line 6: ---") {
		t.Errorf("legend %q should wrap the sixth series to the first marker", legend)
	}
}

func nanValue() float64 {
	var z float64
	return z / z
}

func infValue(sign int) float64 {
	var z float64
	return float64(sign) / z
}
