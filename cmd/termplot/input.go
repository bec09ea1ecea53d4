// ABOUTME: Input parsing: one series per line of numbers, or JSON arrays
// ABOUTME: Accepts whitespace or comma separators; JSON may be flat or nested

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// readSeries parses the full input into one or more series. Input starting
// with '[' is treated as JSON (a flat array of numbers, or an array of
// arrays); anything else is line-oriented, one series per non-empty line.
func readSeries(r io.Reader) ([][]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("no input data")
	}
	if strings.HasPrefix(text, "[") {
		return parseJSONSeries(text)
	}
	return parseLineSeries(text)
}

func parseJSONSeries(text string) ([][]float64, error) {
	var nested [][]float64
	if err := json.Unmarshal([]byte(text), &nested); err == nil {
		return nested, nil
	}
	var flat []float64
	if err := json.Unmarshal([]byte(text), &flat); err == nil {
		return [][]float64{flat}, nil
	}
	return nil, fmt.Errorf("JSON input must be an array of numbers or an array of arrays")
}

func parseLineSeries(text string) ([][]float64, error) {
	var out [][]float64
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		series := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a number", i+1, f)
			}
			series = append(series, v)
		}
		out = append(out, series)
	}
	return out, nil
}
