// Command cityway is the interactive front-end: a build phase accepting
// "nodeA nodeB weight" triples, then a query phase answering shortest-route
// requests against the constructed graph.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmkhr/cityway/core"
	"github.com/dmkhr/cityway/ingest"
	"github.com/dmkhr/cityway/ucs"
)

type phase int

const (
	phaseBuild phase = iota
	phaseQuery
)

const pairSeparator = "------------------------"

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	hintStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

type model struct {
	input    textinput.Model
	viewport viewport.Model
	phase    phase
	graph    *core.Graph
	lines    []string
	width    int
	height   int
	ready    bool
}

func initialModel(g *core.Graph, preloaded []string) model {
	ti := textinput.New()
	ti.Placeholder = "nodeA nodeB weight"
	ti.Prompt = "> "
	ti.Focus()

	lines := append([]string{}, preloaded...)
	lines = append(lines, "Enter city connections or type 'exit' to stop:")

	return model{
		input: ti,
		phase: phaseBuild,
		graph: g,
		lines: lines,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit(strings.TrimSpace(m.input.Value()))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2 // title + divider
		footerHeight := 3 // divider + input + hint
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = m.width - 4
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleSubmit(line string) (tea.Model, tea.Cmd) {
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.lines = append(m.lines, "> "+line)

	switch m.phase {
	case phaseBuild:
		m = m.handleBuildLine(line)
	case phaseQuery:
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, ingest.StopWord) {
			return m, tea.Quit
		}
		m = m.handleQueryLine(line)
	}

	m.refreshViewport()
	return m, nil
}

// handleBuildLine feeds one interactive line into the graph. Every failure
// here is recoverable: report and keep accepting input.
func (m model) handleBuildLine(line string) model {
	if strings.EqualFold(line, ingest.StopWord) || strings.EqualFold(line, "done") {
		m.phase = phaseQuery
		m.lines = append(m.lines,
			"Cities and Edges added Successfully",
			"Query with 'start goal', 'all' for every pair, or 'quit' to leave.")
		m.input.Placeholder = "start goal | all | quit"
		return m
	}

	triple, err := ingest.ParseLine(line)
	if err != nil {
		m.lines = append(m.lines, errStyle.Render(err.Error()))
		return m
	}
	if err = m.graph.AddEdge(triple.A, triple.B, triple.Weight); err != nil {
		m.lines = append(m.lines, errStyle.Render(err.Error()))
		return m
	}
	m.lines = append(m.lines, okStyle.Render(
		fmt.Sprintf("Edge added: %s - %s (%d km)", triple.A, triple.B, triple.Weight)))
	return m
}

// handleQueryLine answers one search request.
func (m model) handleQueryLine(line string) model {
	if strings.EqualFold(line, "all") {
		results, err := ucs.AllPairs(m.graph)
		if err != nil {
			m.lines = append(m.lines, errStyle.Render(err.Error()))
			return m
		}
		if len(results) == 0 {
			m.lines = append(m.lines, "Nothing to search: fewer than two cities known.")
			return m
		}
		for _, p := range results {
			m.lines = append(m.lines, fmt.Sprintf("Finding path between %s and %s:", p.Start, p.Goal))
			m.lines = append(m.lines, formatResult(p.Start, p.Goal, p.Result)...)
			m.lines = append(m.lines, pairSeparator)
		}
		return m
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		m.lines = append(m.lines, errStyle.Render("expected: start goal (or 'all', 'quit')"))
		return m
	}
	res, err := ucs.FindPath(m.graph, fields[0], fields[1])
	if err != nil {
		m.lines = append(m.lines, errStyle.Render(err.Error()))
		return m
	}
	m.lines = append(m.lines, formatResult(fields[0], fields[1], res)...)
	return m
}

func formatResult(start, goal string, res ucs.Result) []string {
	if !res.Found {
		return []string{fmt.Sprintf("No way found from %s to %s", start, goal)}
	}
	return []string{
		"Way: " + strings.Join(res.Path, " --> "),
		fmt.Sprintf("Best way cost: %d", res.Cost),
	}
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.titleText()))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", m.width))
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", m.width))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render(m.hintText()))

	return b.String()
}

func (m model) titleText() string {
	if m.phase == phaseBuild {
		return fmt.Sprintf("cityway — building graph (%d cities, %d edges)",
			m.graph.NodeCount(), m.graph.EdgeCount())
	}
	return fmt.Sprintf("cityway — querying routes (%d cities, %d edges)",
		m.graph.NodeCount(), m.graph.EdgeCount())
}

func (m model) hintText() string {
	if m.phase == phaseBuild {
		return "nodeA nodeB weight · 'exit' ends the build phase · esc quits"
	}
	return "'start goal' for one route · 'all' for every pair · 'quit' leaves"
}

func main() {
	edgeFile := flag.String("f", "", "preload edges from a TOML or YAML file")
	flag.Parse()

	g := core.NewGraph()
	var preloaded []string
	if *edgeFile != "" {
		triples, err := ingest.LoadFile(*edgeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		added, errs := ingest.Build(g, ingest.NewSliceSource(triples...))
		preloaded = append(preloaded, fmt.Sprintf("Loaded %d edges from %s", added, *edgeFile))
		for _, err := range errs {
			if errors.Is(err, core.ErrDuplicateEdge) {
				preloaded = append(preloaded, errStyle.Render(err.Error()))
				continue
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(initialModel(g, preloaded), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
