package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/dd0wney/cluso-opsdeck/pkg/config"
	"github.com/dd0wney/cluso-opsdeck/pkg/deck"
	"github.com/dd0wney/cluso-opsdeck/pkg/events"
	"github.com/dd0wney/cluso-opsdeck/pkg/graphview"
	"github.com/dd0wney/cluso-opsdeck/pkg/logging"
	"github.com/dd0wney/cluso-opsdeck/pkg/metrics"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bd93f9")).
			MarginLeft(2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1e1e2e")).
			Background(lipgloss.Color("#bd93f9")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6272a4")).
				Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#50fa7b")).
			Padding(1, 2).
			MarginRight(2)

	chatInStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8be9fd")).
			Padding(0, 1).
			MarginLeft(2)

	chatOutStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffb86c")).
			Padding(0, 1).
			MarginLeft(12)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f8f8f2")).
			Background(lipgloss.Color("#44475a")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")).
			MarginLeft(2)

	chartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8be9fd")).
			MarginLeft(2)
)

type view int

const (
	overviewView view = iota
	agentsView
	ledgersView
	spacesView
	chatView
	explorerView
	chartsView
	viewCount
)

var viewNames = []string{"Overview", "Agents", "Ledgers", "Spaces", "Chat", "Explorer", "Charts"}

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Refresh  key.Binding
	Flat     key.Binding
	Labels   key.Binding
	Deselect key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "regenerate data"),
	),
	Flat: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle 2d/3d"),
	),
	Labels: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "toggle labels"),
	),
	Deselect: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear selection"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Refresh, k.Flat, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Refresh},
		{k.Flat, k.Labels, k.Deselect, k.Quit},
	}
}

// explorer layout: rows above the canvas and rows reserved below it
const (
	headerRows = 4
	footerRows = 2
)

type selectionMsg struct {
	node *graphview.Node
}

type model struct {
	cfg      config.Config
	gen      *deck.Generator
	logger   logging.Logger
	registry *metrics.Registry

	agents  []deck.Agent
	ledgers []deck.LedgerEntry
	spaces  []deck.Space
	chat    []deck.Message
	series  []float64

	currentView view
	agentTable  table.Model
	ledgerTable table.Model
	help        help.Model
	keys        keyMap

	explorer *graphview.Widget
	renderer *graphview.Renderer
	bus      *events.Bus
	selSub   *events.Subscription
	selected string

	width  int
	height int
}

func newModel(cfg config.Config, seed int64, logger logging.Logger) model {
	gen := deck.NewGenerator(seed)
	registry := metrics.DefaultRegistry()

	renderer := graphview.NewRenderer()
	renderer.AutoRotateStep = cfg.AutoRotateStep
	renderer.BaseRadius = cfg.BaseRadius
	renderer.Fullscreen = cfg.Fullscreen
	renderer.ShowAllLabels = cfg.ShowAllLabels

	controller := graphview.NewController()
	controller.Sensitivity = cfg.DragSensitivity
	controller.HitThreshold = cfg.HitThreshold

	engine := graphview.NewEngine(
		graphview.WithLogger(logger),
		graphview.WithMetrics(registry),
		graphview.WithColorScheme(cfg.ColorScheme()),
		graphview.WithRenderer(renderer),
		graphview.WithController(controller),
	)
	engine.SetThreeD(cfg.ThreeD)

	bus := events.NewBus()
	engine.OnSelect(func(n *graphview.Node) {
		bus.Publish(events.TopicSelection, n)
	})

	m := model{
		cfg:      cfg,
		gen:      gen,
		logger:   logger,
		registry: registry,
		help:     help.New(),
		keys:     keys,
		explorer: graphview.NewWidget(engine, cfg.FPS),
		renderer: renderer,
		bus:      bus,
		selSub:   nil,
	}
	m.selSub = bus.Subscribe(context.Background(), events.TopicSelection)
	m.refreshData()
	m.initTables()
	return m
}

// refreshData regenerates the mock data set and hands the flattened
// entity graph to the explorer
func (m *model) refreshData() {
	m.spaces = m.gen.Spaces(5)
	m.agents = m.gen.Agents(9, m.spaces)
	m.ledgers = m.gen.Ledgers(24)
	m.chat = m.gen.Transcript(10)
	m.series = m.gen.Series(60, 120, 18)

	entities, edges := deck.Graph(m.agents, m.ledgers, m.spaces)
	m.explorer.Engine().SetData(entities, edges)
}

func (m *model) initTables() {
	m.agentTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 14},
			{Title: "Status", Width: 10},
			{Title: "Load", Width: 8},
			{Title: "Space", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	m.ledgerTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Account", Width: 14},
			{Title: "Memo", Width: 22},
			{Title: "Delta", Width: 10},
			{Title: "Balance", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#6272a4")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#1e1e2e")).
		Background(lipgloss.Color("#bd93f9")).
		Bold(false)
	m.agentTable.SetStyles(s)
	m.ledgerTable.SetStyles(s)

	m.syncTables()
}

func (m *model) syncTables() {
	spaceNames := make(map[string]string, len(m.spaces))
	for _, sp := range m.spaces {
		spaceNames[sp.ID] = sp.Name
	}

	agentRows := make([]table.Row, 0, len(m.agents))
	for _, a := range m.agents {
		agentRows = append(agentRows, table.Row{
			a.Name, a.Status, fmt.Sprintf("%.0f%%", a.Load*100), spaceNames[a.Space],
		})
	}
	m.agentTable.SetRows(agentRows)

	ledgerRows := make([]table.Row, 0, len(m.ledgers))
	for _, e := range m.ledgers {
		ledgerRows = append(ledgerRows, table.Row{
			e.Account, e.Memo, fmt.Sprintf("%+.2f", e.Delta), fmt.Sprintf("%.2f", e.Balance),
		})
	}
	m.ledgerTable.SetRows(ledgerRows)
}

// listenSelection waits for the next selection event from the bus
func (m model) listenSelection() tea.Cmd {
	sub := m.selSub
	return func() tea.Msg {
		v, ok := <-sub.C()
		if !ok {
			return nil
		}
		node, _ := v.(*graphview.Node)
		return selectionMsg{node: node}
	}
}

func (m model) Init() tea.Cmd {
	return m.listenSelection()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.explorer.SetSize(msg.Width, msg.Height-headerRows-footerRows)
		m.explorer.SetOffset(0, headerRows)

	case selectionMsg:
		if msg.node != nil {
			m.selected = msg.node.Label
		} else {
			m.selected = ""
		}
		cmds = append(cmds, m.listenSelection())

	case graphview.FrameMsg:
		cmds = append(cmds, m.explorer.Update(msg))

	case tea.MouseMsg:
		if m.currentView == explorerView {
			cmds = append(cmds, m.explorer.Update(msg))
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.setView((m.currentView + 1) % viewCount)
			cmds = append(cmds, m.viewCmd())

		case key.Matches(msg, m.keys.ShiftTab):
			m.setView((m.currentView + viewCount - 1) % viewCount)
			cmds = append(cmds, m.viewCmd())

		case key.Matches(msg, m.keys.Refresh):
			m.refreshData()
			m.syncTables()

		case key.Matches(msg, m.keys.Flat):
			engine := m.explorer.Engine()
			engine.SetThreeD(!engine.Camera().ThreeD)

		case key.Matches(msg, m.keys.Labels):
			// renderer tunable, safe to flip between frames
			m.renderer.ShowAllLabels = !m.renderer.ShowAllLabels

		case key.Matches(msg, m.keys.Deselect):
			m.explorer.Engine().ClearSelection()
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case agentsView:
		m.agentTable, cmd = m.agentTable.Update(msg)
		cmds = append(cmds, cmd)
	case ledgersView:
		m.ledgerTable, cmd = m.ledgerTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setView switches tabs, starting the explorer's frame loop only while
// its tab is visible and stopping it on the way out
func (m *model) setView(v view) {
	if m.currentView == explorerView && v != explorerView {
		m.explorer.Stop()
	}
	m.currentView = v
}

func (m *model) viewCmd() tea.Cmd {
	if m.currentView == explorerView {
		return m.explorer.Start()
	}
	return nil
}

func (m *model) shutdown() {
	m.explorer.Stop()
	m.bus.Close()
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("cluso opsdeck"))
	s.WriteString("\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case overviewView:
		s.WriteString(m.renderOverview())
	case agentsView:
		s.WriteString(m.agentTable.View())
	case ledgersView:
		s.WriteString(m.ledgerTable.View())
	case spacesView:
		s.WriteString(m.renderSpaces())
	case chatView:
		s.WriteString(m.renderChat())
	case explorerView:
		s.WriteString(m.explorer.View())
	case chartsView:
		s.WriteString(m.renderCharts())
	}

	s.WriteString("\n")
	s.WriteString(m.renderStatus())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return s.String()
}

func (m model) renderTabs() string {
	rendered := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.currentView {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) renderOverview() string {
	online := 0
	for _, a := range m.agents {
		if a.Status == "online" {
			online++
		}
	}
	balance := 0.0
	if len(m.ledgers) > 0 {
		balance = m.ledgers[len(m.ledgers)-1].Balance
	}
	nodes, edges := m.explorer.Engine().Counts()

	agentsCard := cardStyle.Render(fmt.Sprintf("AGENTS\n\n%d total\n%d online", len(m.agents), online))
	ledgerCard := cardStyle.Render(fmt.Sprintf("LEDGER\n\n%d entries\n%.2f balance", len(m.ledgers), balance))
	spacesCard := cardStyle.Render(fmt.Sprintf("SPACES\n\n%d active", len(m.spaces)))
	graphCard := cardStyle.Render(fmt.Sprintf("GRAPH\n\n%d nodes\n%d edges", nodes, edges))

	return lipgloss.JoinHorizontal(lipgloss.Top, agentsCard, ledgerCard, spacesCard, graphCard)
}

func (m model) renderSpaces() string {
	var s strings.Builder
	for _, sp := range m.spaces {
		bar := strings.Repeat("█", int(sp.Activity*20))
		s.WriteString(fmt.Sprintf("  %-14s %2d members  %-20s %.0f%%\n",
			sp.Name, sp.Members, bar, sp.Activity*100))
	}
	return s.String()
}

func (m model) renderChat() string {
	var s strings.Builder
	for _, msg := range m.chat {
		line := fmt.Sprintf("%s  %s", msg.From, msg.Body)
		if msg.Inbound {
			s.WriteString(chatInStyle.Render(line))
		} else {
			s.WriteString(chatOutStyle.Render(line))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (m model) renderCharts() string {
	if len(m.series) < 2 {
		return helpStyle.Render("no data")
	}
	chart := asciigraph.Plot(m.series,
		asciigraph.Height(m.height-headerRows-footerRows-4),
		asciigraph.Width(m.width-12),
		asciigraph.Caption("throughput (ops/s)"))
	return chartStyle.Render(chart)
}

func (m model) renderStatus() string {
	nodes, edges := m.explorer.Engine().Counts()
	mode := "3D"
	if !m.explorer.Engine().Camera().ThreeD {
		mode = "2D"
	}
	selected := m.selected
	if selected == "" {
		selected = "none"
	}
	return statusStyle.Render(fmt.Sprintf(
		" %d nodes · %d edges · %s · selected: %s ", nodes, edges, mode, selected))
}
