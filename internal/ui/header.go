package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/roster"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	snap := m.snapshot

	var parts []string
	parts = append(parts, bg.Render("pokédex", styles.Logo))

	page := snap.Page
	pageText := fmt.Sprintf("Page %d", page.Number())
	if !compact {
		pageText += fmt.Sprintf(" (%d-%d)", page.Offset+1, page.Offset+page.Limit)
	}
	parts = append(parts, bg.Render(pageText, styles.Text))

	if snap.Loading {
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.WarningText)+bg.Space()+
				bg.Render("Loading", styles.WarningText))
	}

	if snap.HasLoaded {
		label := "Showing:"
		if compact {
			label = "N:"
		}
		count := fmt.Sprintf("%d/%d", len(snap.Visible), len(snap.Roster))
		parts = append(parts, bg.Render(label, styles.MutedText)+bg.Space()+bg.Render(count, styles.Text))
	}

	if snap.Stale() {
		parts = append(parts, bg.Render(fmt.Sprintf("showing page %d", snap.Loaded.Number()), styles.FaintText))
	}

	if !snap.LastLoaded.IsZero() {
		parts = append(parts, bg.Render(snap.LastLoaded.Format("15:04:05"), styles.MutedText))
	}

	if snap.LastError != nil {
		label := classifyLoadError(snap.LastError)
		if snap.IsOffline() {
			label = "OFFLINE " + label
		}
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render(label, styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(rootCause(snap.LastError), maxErr), styles.DangerText))
	}

	if m.errorMsg != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.errorMsg, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// classifyLoadError returns a short label for a failed load, such as
// "LISTING TIMEOUT" or "DETAIL HTTP ERROR".
func classifyLoadError(err error) string {
	if err == nil {
		return ""
	}

	kind := "LOAD"
	var loadErr *roster.LoadError
	if errors.As(err, &loadErr) {
		kind = strings.ToUpper(loadErr.Kind.String())
	}

	msg := err.Error()
	var reason string
	switch {
	case errors.Is(err, context.DeadlineExceeded), strings.Contains(strings.ToLower(msg), "timeout"):
		reason = "TIMEOUT"
	case strings.Contains(msg, "connection refused"):
		reason = "UNREACHABLE"
	case strings.Contains(msg, "no such host"):
		reason = "HOST NOT FOUND"
	case strings.Contains(msg, "returned status"):
		reason = "HTTP ERROR"
	case strings.Contains(msg, "decode response"), strings.Contains(msg, "entity "):
		reason = "BAD RESPONSE"
	default:
		reason = "ERROR"
	}
	return kind + " " + reason
}

// rootCause returns the innermost error message, which is the part worth
// showing in a narrow header.
func rootCause(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct {
		binding  key.Binding
		desc     string
		disabled bool
	}
	var commands []cmd

	switch {
	case m.currentView == ViewLogs:
		follow := "Pause"
		if !m.logState.follow {
			follow = "Follow"
		}
		commands = []cmd{
			{binding: m.keys.ToggleFollow, desc: follow},
			{binding: m.keys.Down, desc: "Scroll"},
			{binding: m.keys.Logs, desc: "Grid"},
			{binding: m.keys.Help, desc: "More"},
		}
	case m.snapshot.Selection.State() == roster.Inspecting:
		commands = []cmd{
			{binding: m.keys.Escape, desc: "Close"},
			{binding: m.keys.NextPage, desc: "Next"},
			{binding: m.keys.PrevPage, desc: "Prev", disabled: !m.snapshot.HasPrev()},
			{binding: m.keys.Help, desc: "More"},
		}
	default:
		commands = []cmd{
			{binding: m.keys.Search, desc: "Search"},
			{binding: m.keys.Select, desc: "Inspect"},
			{binding: m.keys.NextPage, desc: "Next"},
			{binding: m.keys.PrevPage, desc: "Prev", disabled: !m.snapshot.HasPrev()},
			{binding: m.keys.Reload, desc: "Reload"},
			{binding: m.keys.Logs, desc: "Log"},
			{binding: m.keys.Help, desc: "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		keyStyle, descStyle := styles.AccentText, styles.MutedText
		if c.disabled {
			keyStyle, descStyle = styles.FaintText, styles.FaintText.Strikethrough(true)
		}
		segments = append(segments,
			bg.Render(bindingLabel(c.binding), keyStyle)+colon+bg.Render(c.desc, descStyle))
	}

	segments = append(segments,
		bg.Render(bindingLabel(m.keys.CycleTheme), styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderStatusLine renders the search input or the active filter.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	var content string
	switch {
	case m.currentView == ViewLogs:
		content = m.renderLogStatus(styles, bg)
	case m.searchActive:
		content = m.searchInput.View()
	case m.snapshot.Query != "":
		content = bg.Render("filter:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%q", m.snapshot.Query), styles.AccentText) + bg.Spaces(2) +
			bg.Render(bindingLabel(m.keys.Escape)+" clears", styles.FaintText)
	default:
		content = bg.Render(truncateMiddle(m.baseURL, m.width-2), styles.FaintText)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.FocusBg)).
		Padding(0, 1).
		Width(m.width).
		MaxHeight(1).
		Render(content)
}
