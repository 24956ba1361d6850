package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/memexia/graphview/pkg/config"
	"github.com/memexia/graphview/pkg/controls"
	"github.com/memexia/graphview/pkg/engine"
	"github.com/memexia/graphview/pkg/events"
	"github.com/memexia/graphview/pkg/graph"
	"github.com/memexia/graphview/pkg/logging"
	"github.com/memexia/graphview/pkg/metrics"
)

// Styles
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	detailBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#00FFFF"))

	detailMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

type keyMap struct {
	Forward key.Binding
	Back    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Clear   key.Binding
	Animate key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Forward: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "forward"),
	),
	Back: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "back"),
	),
	Left: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "right"),
	),
	Up: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "down"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear selection"),
	),
	Animate: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Back, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.Left, k.Right},
		{k.Up, k.Down, k.Clear, k.Animate},
		{k.Help, k.Quit},
	}
}

// moveBindings maps key bindings onto engine movement keys.
var moveBindings = []struct {
	binding *key.Binding
	move    controls.MoveKey
}{
	{&keys.Forward, controls.MoveForward},
	{&keys.Back, controls.MoveBack},
	{&keys.Left, controls.MoveLeft},
	{&keys.Right, controls.MoveRight},
	{&keys.Up, controls.MoveUp},
	{&keys.Down, controls.MoveDown},
}

const statusRows = 2

type model struct {
	eng      *engine.Engine
	sub      *events.Subscription
	graphSub *events.Subscription
	keys     keyMap
	help  help.Model
	fps   time.Duration
	frame string

	width, height int
	dragging      bool
	lastX, lastY  int

	selected  *events.NodeSelected
	nodeCount int
	edgeCount int
}

type frameMsg time.Time

type activityMsg struct {
	event any
	from  *events.Subscription
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// waitForActivity relays one engine event into the bubbletea loop.
func waitForActivity(sub *events.Subscription) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-sub.Channel()
		if !ok {
			return nil
		}
		return activityMsg{event: ev, from: sub}
	}
}

func initialModel(eng *engine.Engine, fps time.Duration) model {
	snap := eng.Snapshot()
	m := model{
		eng:      eng,
		sub:      eng.Events(context.Background()),
		graphSub: eng.Subscribe(context.Background(), events.TopicGraph),
		keys:     keys,
		help:     help.New(),
		fps:      fps,
	}
	if snap != nil {
		m.nodeCount = snap.NodeCount()
		m.edgeCount = snap.EdgeCount()
	}
	return m
}

func (m model) Init() tea.Cmd {
	m.eng.Start()
	return tea.Batch(
		frameCmd(m.fps),
		waitForActivity(m.sub),
		waitForActivity(m.graphSub),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if msg.Height > statusRows {
			m.eng.Resize(msg.Width, msg.Height-statusRows)
		}

	case frameMsg:
		if frame := m.eng.Step(m.fps); frame != "" {
			m.frame = frame
		}
		return m, frameCmd(m.fps)

	case activityMsg:
		switch ev := msg.event.(type) {
		case events.NodeSelected:
			selected := ev
			m.selected = &selected
		case events.SelectionCleared:
			m.selected = nil
		case events.GraphReplaced:
			m.nodeCount = ev.Nodes
			m.edgeCount = ev.Edges
		}
		return m, waitForActivity(msg.from)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.eng.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.eng.ClearSelection()

		case key.Matches(msg, m.keys.Animate):
			if m.eng.Running() {
				m.eng.Stop()
			} else {
				m.eng.Start()
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			for _, mb := range moveBindings {
				if key.Matches(msg, *mb.binding) {
					m.eng.KeyDown(mb.move)
				}
			}
		}
	}

	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.dragging = true
			m.lastX, m.lastY = msg.X, msg.Y
			m.eng.HandleClick(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			m.eng.HandleWheel(1)
		case tea.MouseButtonWheelDown:
			m.eng.HandleWheel(-1)
		}

	case tea.MouseActionMotion:
		if m.dragging {
			m.eng.HandleDrag(msg.X-m.lastX, msg.Y-m.lastY)
			m.lastX, m.lastY = msg.X, msg.Y
		}

	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

func (m model) View() string {
	if m.width == 0 || m.frame == "" {
		return "Loading scene..."
	}

	scene := m.frame
	if m.selected != nil {
		scene = overlayDetail(scene, m.selected, m.width)
	}

	var s strings.Builder
	s.WriteString(scene)
	s.WriteString("\n")
	s.WriteString(m.statusLine())
	s.WriteString("\n")
	s.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return s.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("%d nodes, %d edges", m.nodeCount, m.edgeCount)
	if m.selected != nil {
		status += " | " + m.selected.Node.ID
	}
	return titleStyle.Render("graphview") + statusStyle.Render("  "+status)
}

// overlayDetail paints the selection popup over the scene's top-right
// corner.
func overlayDetail(scene string, sel *events.NodeSelected, width int) string {
	content := sel.Node.Content
	if len(content) > 40 {
		content = content[:37] + "..."
	}

	lines := []string{
		detailTitleStyle.Render(content),
		detailMetaStyle.Render("type: " + sel.Node.Type),
	}
	if sel.Node.Generated {
		lines = append(lines, detailMetaStyle.Render("generated"))
	}
	if !sel.Node.CreatedAt.IsZero() {
		lines = append(lines, detailMetaStyle.Render(sel.Node.CreatedAt.Format("2006-01-02 15:04")))
	}
	box := detailBoxStyle.Render(strings.Join(lines, "\n"))

	sceneLines := strings.Split(scene, "\n")
	for i, boxLine := range strings.Split(box, "\n") {
		if i >= len(sceneLines) {
			break
		}
		pad := width - lipgloss.Width(boxLine)
		if pad < 0 {
			pad = 0
		}
		prefix := truncateCells(sceneLines[i], pad)
		sceneLines[i] = prefix + boxLine
	}
	return strings.Join(sceneLines, "\n")
}

// truncateCells cuts a styled line down to the given cell width,
// dropping any ANSI state that follows the cut.
func truncateCells(line string, cells int) string {
	if lipgloss.Width(line) <= cells {
		return line
	}
	var b strings.Builder
	width := 0
	inEscape := false
	for _, r := range line {
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			b.WriteRune(r)
			inEscape = true
			continue
		}
		if width >= cells {
			break
		}
		b.WriteRune(r)
		width++
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

func loadGraph(path string, demo int, rng *rand.Rand) (*graph.File, error) {
	if path != "" {
		return graph.Load(path)
	}
	if demo > 0 {
		return graph.Generate(demo, rng), nil
	}
	return nil, fmt.Errorf("no graph source: pass -graph FILE or -demo N")
}

func main() {
	var (
		graphPath  = flag.String("graph", "", "graph file to load (.yaml, .yml or .json)")
		demo       = flag.Int("demo", 0, "generate a random demo graph with N nodes")
		configPath = flag.String("config", "", "optional YAML config file")
		debug      = flag.Bool("debug", false, "log debug output to stderr")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			os.Exit(1)
		}
	}

	level := logging.InfoLevel
	if *debug {
		level = logging.DebugLevel
	}
	logger := logging.NewJSONLogger(os.Stderr, level)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	file, err := loadGraph(*graphPath, *demo, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		flag.Usage()
		os.Exit(1)
	}

	eng := engine.New(engine.Options{
		Width:    80,
		Height:   24,
		Layout:   cfg.LayoutConfig(),
		Controls: cfg.ControlsConfig(),
		FOV:      cfg.FOV(),
		Stars:    cfg.Stars,
		Rand:     rng,
		Logger:   logger,
		Metrics:  metrics.NewRegistry(),
	})
	defer eng.Close()

	eng.SetGraph(file.Nodes, file.Edges, file.SeedID)

	p := tea.NewProgram(
		initialModel(eng, cfg.FrameInterval()),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
