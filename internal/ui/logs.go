package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/logtail"
)

// logState holds the session log view state.
type logState struct {
	entries []logtail.Entry
	err     error
	follow  bool
	loaded  bool
}

type logEntriesMsg struct {
	entries []logtail.Entry
	err     error
}

// refreshLogs reads the tail of the session log off the update goroutine.
func (m Model) refreshLogs() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, LogTailLines)
		return logEntriesMsg{entries: entries, err: err}
	}
}

func (m *Model) handleLogEntries(msg logEntriesMsg) {
	m.logState.loaded = true
	m.logState.err = msg.err
	if msg.err == nil {
		m.logState.entries = msg.entries
	}
	m.updateLogViewport()
}

// updateLogViewport sizes the viewport to the content area and re-renders
// the entries into it.
func (m *Model) updateLogViewport() {
	width := m.width - 2
	height := m.contentHeight() - 2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if m.logViewport.Width == 0 && m.logViewport.Height == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent(width))

	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogs renders the log view.
func (m Model) renderLogs(height int) string {
	return m.renderTitledBox("Session Log", m.logViewport.View(), m.width, height, true)
}

// renderLogStatus renders the log status line.
func (m Model) renderLogStatus(styles Styles, bg BgStyle) string {
	autoTail := "off"
	if m.logState.follow {
		autoTail = "on"
	}
	parts := []string{
		bg.Render(fmt.Sprintf("%d lines auto-tail %s", len(m.logState.entries), autoTail), styles.FaintText),
	}
	if m.logState.err != nil {
		parts = append(parts, bg.Render(truncate(m.logState.err.Error(), 60), styles.DangerText))
	}
	if m.logPath != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.logPath, 50), styles.AccentText))
	}
	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return strings.Join(parts, sep)
}

// renderLogContent renders the colorized entries.
func (m Model) renderLogContent(width int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()

	if m.logPath == "" {
		return bg.FillLine(bg.Render("Logging is disabled", styles.MutedText), width)
	}
	if len(m.logState.entries) == 0 {
		msg := "No log entries"
		if !m.logState.loaded {
			msg = "Reading log..."
		}
		return bg.FillLine(bg.Render(msg, styles.MutedText), width)
	}

	lines := make([]string, len(m.logState.entries))
	for i, e := range m.logState.entries {
		lines[i] = bg.FillLine(m.formatLogEntry(e, styles, bg), width)
	}
	return strings.Join(lines, "\n")
}

// formatLogEntry renders "15:04:05 WRN roster page load failed offset=52 …".
func (m Model) formatLogEntry(e logtail.Entry, styles Styles, bg BgStyle) string {
	if e.Level == "" && e.Time.IsZero() {
		return bg.Render(e.Raw, styles.Text)
	}

	var parts []string
	ts := "--:--:--"
	if !e.Time.IsZero() {
		ts = e.Time.Local().Format("15:04:05")
	}
	parts = append(parts, bg.Render(ts, styles.FaintText))
	parts = append(parts, bg.Render(levelLabel(e.Level), m.levelStyle(e.Level, styles)))
	if e.Component != "" {
		parts = append(parts, bg.Render(e.Component, styles.AccentText))
	}
	parts = append(parts, bg.Render(e.Message, styles.Text))
	for _, k := range e.FieldKeys() {
		parts = append(parts, bg.Render(k+"=", styles.FaintText)+bg.Render(e.Fields[k], styles.MutedText))
	}
	if e.Error != "" {
		parts = append(parts, bg.Render("error="+e.Error, styles.DangerText))
	}
	return strings.Join(parts, bg.Space())
}

// levelLabel maps zerolog level names to fixed-width tags.
func levelLabel(level string) string {
	switch strings.ToLower(level) {
	case "trace":
		return "TRC"
	case "debug":
		return "DBG"
	case "info":
		return "INF"
	case "warn":
		return "WRN"
	case "error":
		return "ERR"
	case "fatal":
		return "FTL"
	case "panic":
		return "PNC"
	default:
		return "???"
	}
}

func (m Model) levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warn":
		return styles.WarningText
	case "info":
		return styles.InfoText
	default:
		return styles.FaintText
	}
}

// handleLogsKey processes keyboard input for the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logViewport.GotoBottom()
			return m, m.refreshLogs()
		}
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.logState.follow = false
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.logState.follow = true
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		m.logState.follow = false
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
		m.logState.follow = false
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
		m.logState.follow = false
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
		m.logState.follow = false
	}
	return m, nil
}

// renderTitledBox draws content inside a ┌── Title ──┐ frame.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌"+strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad)+"┐", borderStyle)
	bottom := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	rows := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}
