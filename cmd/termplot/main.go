// ABOUTME: CLI entry point: cobra command wiring flags to the plot package
// ABOUTME: Resolves defaults from config file and terminal size; flags always win

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/euphrasiologist/termplot/internal/config"
	"github.com/euphrasiologist/termplot/internal/log"
	"github.com/euphrasiologist/termplot/pkg/plot"
)

// indent keeps the chart off the hard left edge of the terminal.
const indent = "    "

// gutterReserve is what the renderer adds beyond the plot columns (label
// gutter) plus the indent, subtracted when sizing from the terminal.
const gutterReserve = 14

type cliOpts struct {
	width   int
	height  int
	title   string
	legend  bool
	style   string
	bins    int
	hist    bool
	xy      bool
	follow  bool
	color   bool
	noColor bool
	verbose bool
}

func main() {
	var opts cliOpts
	root := &cobra.Command{
		Use:   "termplot [file]",
		Short: "Plot numeric series as braille charts in the terminal",
		Long: `termplot reads one numeric series per input line (whitespace or comma
separated), or a JSON array / array of arrays, and renders it as a
braille chart. With no file argument it reads stdin.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}

	fl := root.Flags()
	fl.IntVarP(&opts.width, "width", "x", 0, "Chart width in characters (default: fit terminal)")
	fl.IntVarP(&opts.height, "height", "y", 0, "Chart height in characters (default: fit terminal)")
	fl.StringVarP(&opts.title, "title", "t", "", "Title line above the chart")
	fl.BoolVarP(&opts.legend, "legend", "l", false, "Append a legend line")
	fl.StringVarP(&opts.style, "style", "s", "", "Draw style: line, step, points or bars")
	fl.IntVarP(&opts.bins, "bins", "b", 0, "Histogram bin count (with --hist)")
	fl.BoolVar(&opts.hist, "hist", false, "Histogram mode: bin samples before plotting")
	fl.BoolVar(&opts.xy, "xy", false, "Scatter mode: first series is x, second is y")
	fl.BoolVarP(&opts.follow, "follow", "f", false, "Live mode: append one sample per stdin line")
	fl.BoolVar(&opts.color, "color", false, "Force colored output")
	fl.BoolVar(&opts.noColor, "no-color", false, "Force plain output")
	fl.BoolVar(&opts.verbose, "verbose", false, "Verbose logging to stderr")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, opts *cliOpts) error {
	log.SetVerbose(opts.verbose)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	if opts.follow {
		return runLive(cfg)
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	seriesList, err := readSeries(in)
	if err != nil {
		return err
	}
	log.Debug("parsed %d series, first has %d samples", len(seriesList), len(seriesList[0]))

	var out string
	switch {
	case opts.hist:
		out, err = plot.RenderHist(seriesList, cfg)
	case opts.xy:
		out, err = plot.RenderXY(seriesList, cfg)
	default:
		out, err = plot.Render(seriesList, cfg)
	}
	if err != nil {
		return err
	}
	fmt.Print(indented(out))
	return nil
}

// resolveConfig layers flag values over the defaults file over terminal
// geometry. An explicitly supplied non-positive dimension or bin count is
// rejected here rather than silently replaced with a default.
func resolveConfig(cmd *cobra.Command, opts *cliOpts) (plot.Config, error) {
	var cfg plot.Config

	defs, err := config.Load()
	if err != nil {
		log.Warn("%v", err)
	}

	fl := cmd.Flags()
	if fl.Changed("width") && opts.width <= 0 {
		return cfg, &plot.ConfigError{Reason: fmt.Sprintf("width must be positive, got %d", opts.width)}
	}
	if fl.Changed("height") && opts.height <= 0 {
		return cfg, &plot.ConfigError{Reason: fmt.Sprintf("height must be positive, got %d", opts.height)}
	}
	if fl.Changed("bins") && opts.bins <= 0 {
		return cfg, &plot.ConfigError{Reason: fmt.Sprintf("bin count must be positive, got %d", opts.bins)}
	}

	cfg.Width = opts.width
	cfg.Height = opts.height
	if cfg.Width == 0 {
		cfg.Width = defs.Width
	}
	if cfg.Height == 0 {
		cfg.Height = defs.Height
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		tw, th := terminalSize()
		if cfg.Width == 0 && tw > 0 {
			cfg.Width = clamp(tw-gutterReserve, 10, plot.DefaultWidth)
		}
		if cfg.Height == 0 && th > 0 {
			cfg.Height = clamp(th-4, 4, plot.DefaultHeight)
		}
	}

	styleName := opts.style
	if styleName == "" {
		styleName = defs.Style
	}
	if styleName == "" && opts.hist {
		styleName = "bars"
	}
	cfg.Style, err = plot.ParseStyle(styleName)
	if err != nil {
		return cfg, err
	}

	cfg.Title = opts.title
	cfg.Legend = opts.legend
	cfg.Bins = opts.bins

	switch {
	case opts.noColor:
		cfg.Color = false
	case opts.color:
		cfg.Color = true
	case defs.Color != nil:
		cfg.Color = *defs.Color
	default:
		cfg.Color = term.IsTerminal(int(os.Stdout.Fd()))
	}

	log.Debug("config: %dx%d style=%s color=%v", cfg.Width, cfg.Height, cfg.Style, cfg.Color)
	return cfg, nil
}

// terminalSize returns stdout's size in cells, or zeros when not a TTY.
func terminalSize() (w, h int) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0, 0
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// indented prefixes every non-empty output line with the chart indent.
func indented(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n") + "\n"
}
