// ABOUTME: Live follow mode: Bubble Tea program appending one sample per stdin line
// ABOUTME: Keyboard comes from the TTY so piped data and key input coexist

package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/euphrasiologist/termplot/pkg/plot"
)

// sampleMsg carries one parsed value from the stdin reader goroutine.
type sampleMsg float64

// inputDoneMsg signals stdin hit EOF; the chart stays up until quit.
type inputDoneMsg struct{}

// liveModel re-renders the chart each time a sample arrives. Bubble Tea's
// Update is single-threaded, so no locking around values.
type liveModel struct {
	cfg    plot.Config
	values []float64
	done   bool
}

func runLive(cfg plot.Config) error {
	p := tea.NewProgram(liveModel{cfg: cfg}, tea.WithInputTTY())
	go feedSamples(p)
	_, err := p.Run()
	return err
}

// feedSamples reads stdin line by line, parsing the first field of each
// non-empty line as a float. Unparseable lines are skipped so a noisy
// stream does not kill the chart.
func feedSamples(p *tea.Program) {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], ","), 64)
		if err != nil {
			continue
		}
		p.Send(sampleMsg(v))
	}
	p.Send(inputDoneMsg{})
}

func (m liveModel) Init() tea.Cmd {
	return nil
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sampleMsg:
		m.values = append(m.values, float64(msg))
		// One sample per dot column; older samples scroll off the left.
		limit := m.chartCols() * 2
		if len(m.values) > limit {
			m.values = m.values[len(m.values)-limit:]
		}
	case inputDoneMsg:
		m.done = true
	case tea.WindowSizeMsg:
		m.cfg.Width = clamp(msg.Width-gutterReserve, 10, plot.DefaultWidth)
		m.cfg.Height = clamp(msg.Height-4, 4, plot.DefaultHeight)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m liveModel) View() string {
	if len(m.values) == 0 {
		return "waiting for samples on stdin... (q quits)\n"
	}
	out, err := plot.Render([][]float64{m.values}, m.cfg)
	if err != nil {
		return err.Error() + "\n"
	}
	footer := "q: quit"
	if m.done {
		footer = "input closed - q: quit"
	}
	return out + footer + "\n"
}

func (m liveModel) chartCols() int {
	if m.cfg.Width == 0 {
		return plot.DefaultWidth
	}
	return m.cfg.Width
}
