package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/roster"
	"github.com/five82/pokedex/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewGrid View = iota
	ViewLogs
)

// Controller is the session surface the UI drives. *state.Controller
// implements it.
type Controller interface {
	Snapshot() state.Snapshot
	Subscribe() (<-chan state.Event, func())
	NextPage() state.Request
	PrevPage() (state.Request, bool)
	Reload() state.Request
	SetQuery(q string)
	Select(e roster.Entity)
	Close()
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller Controller
	Logger     zerolog.Logger
	LogPath    string
	ThemeName  string
	Compact    bool
	PrefsPath  string
	BaseURL    string
	Tick       time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctrl      Controller
	logger    zerolog.Logger
	keys      keyMap
	prefsPath string
	logPath   string
	baseURL   string
	tick      time.Duration

	events      <-chan state.Event
	unsubscribe func()

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	compact     bool
	showHelp    bool
	errorMsg    string

	// Data state
	snapshot state.Snapshot

	// Grid state
	cursor     int
	gridOffset int // first visible card row

	// Search
	searchActive bool
	searchInput  textinput.Model

	spinner spinner.Model

	// Log state
	logViewport viewport.Model
	logState    logState
}

// New creates a new Bubble Tea model and subscribes it to the controller.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search by name..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		ctx:         ctx,
		ctrl:        opts.Controller,
		logger:      opts.Logger,
		keys:        DefaultKeyMap(),
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		baseURL:     opts.BaseURL,
		tick:        tick,
		theme:       GetTheme(themeName),
		currentView: ViewGrid,
		compact:     opts.Compact,
		searchInput: ti,
		spinner:     sp,
		logState:    logState{follow: true},
		unsubscribe: func() {},
	}
	if m.ctrl != nil {
		m.events, m.unsubscribe = m.ctrl.Subscribe()
		m.snapshot = m.ctrl.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(m.tick),
	}
	if m.ctrl != nil {
		cmds = append(cmds, waitForEvent(m.events))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureCursorVisible()
		m.updateLogViewport()
		return m, nil

	case eventMsg:
		m.applySnapshot(m.ctrl.Snapshot())
		return m, waitForEvent(m.events)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.tick)}
		if m.currentView == ViewLogs && m.logState.follow {
			cmds = append(cmds, m.refreshLogs())
		}
		return m, tea.Batch(cmds...)

	case logEntriesMsg:
		m.handleLogEntries(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searchActive {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		m.savePrefs()
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.currentView == ViewLogs {
			m.currentView = ViewGrid
			return m, nil
		}
		m.currentView = ViewLogs
		m.updateLogViewport()
		return m, m.refreshLogs() // Fetch immediately

	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.NextPage()
		m.applySnapshot(m.ctrl.Snapshot())
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if _, ok := m.ctrl.PrevPage(); ok {
			m.applySnapshot(m.ctrl.Snapshot())
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.ctrl.Reload()
		m.applySnapshot(m.ctrl.Snapshot())
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.handleEscape()
		return m, nil
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleGridKey(msg)
	}
}

// handleEscape backs out one level: log view, then the detail overlay, then
// the active query.
func (m *Model) handleEscape() {
	switch {
	case m.currentView == ViewLogs:
		m.currentView = ViewGrid
	case m.snapshot.Selection.State() == roster.Inspecting:
		m.ctrl.Close()
		m.applySnapshot(m.ctrl.Snapshot())
	case m.snapshot.Query != "":
		m.searchInput.SetValue("")
		m.ctrl.SetQuery("")
		m.applySnapshot(m.ctrl.Snapshot())
	}
}

// handleSearchKey feeds the search input. The query follows the input live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Escape):
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.ctrl.SetQuery(strings.TrimSpace(m.searchInput.Value()))
	m.applySnapshot(m.ctrl.Snapshot())
	return m, cmd
}

// applySnapshot stores snap and keeps the cursor on a visible card. A new
// page or query starts the cursor at the first card.
func (m *Model) applySnapshot(snap state.Snapshot) {
	prev := m.snapshot
	m.snapshot = snap
	if snap.Loaded != prev.Loaded || snap.Query != prev.Query || snap.LastLoaded != prev.LastLoaded {
		m.cursor = 0
		m.gridOffset = 0
	}
	m.clampCursor()
	m.ensureCursorVisible()
}

// savePrefs persists the presentation choices. Failures are shown but never
// fatal.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences failed")
		m.errorMsg = "prefs not saved"
		return
	}
	m.errorMsg = ""
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n")

	b.WriteString(m.renderStatusLine())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	height := m.contentHeight()
	switch m.currentView {
	case ViewLogs:
		return m.renderLogs(height)
	default:
		if entity, ok := m.snapshot.Selected(); ok {
			return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, m.renderDetail(entity))
		}
		return m.renderGrid(height)
	}
}

func (m Model) contentHeight() int {
	h := m.height - chromeLines
	if h < 1 {
		return 1
	}
	return h
}

// Messages

type tickMsg time.Time

type eventMsg state.Event

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForEvent blocks until the controller publishes a change. A closed
// channel ends the subscription.
func waitForEvent(events <-chan state.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// Cancellation is a normal shutdown.
		return nil
	}
	return err
}
