package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/roster"
)

// handleGridKey processes cursor movement and selection on the card grid.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Search) {
		m.searchActive = true
		m.searchInput.SetValue(m.snapshot.Query)
		m.searchInput.CursorEnd()
		cmd := m.searchInput.Focus()
		return m, cmd
	}

	count := len(m.snapshot.Visible)
	if count == 0 {
		return m, nil
	}
	cols := m.gridColumns()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < count {
			m.cursor += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.Select):
		m.ctrl.Select(m.snapshot.Visible[m.cursor])
		m.applySnapshot(m.ctrl.Snapshot())
		return m, nil
	}

	m.ensureCursorVisible()
	return m, nil
}

// cardSize returns the outer card dimensions for the current density.
func (m Model) cardSize() (width, height int) {
	if m.compact {
		return compactCardWidth, compactCardHeight
	}
	return cardWidth, cardHeight
}

// gridColumns returns how many cards fit side by side.
func (m Model) gridColumns() int {
	w, _ := m.cardSize()
	cols := (m.width + cardGap) / (w + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// gridRows returns how many card rows fit in the content area.
func (m Model) gridRows() int {
	_, h := m.cardSize()
	rows := m.contentHeight() / h
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) clampCursor() {
	count := len(m.snapshot.Visible)
	switch {
	case count == 0:
		m.cursor = 0
	case m.cursor >= count:
		m.cursor = count - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// ensureCursorVisible scrolls the grid so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	cols := m.gridColumns()
	rows := m.gridRows()
	row := m.cursor / cols
	if row < m.gridOffset {
		m.gridOffset = row
	}
	if row >= m.gridOffset+rows {
		m.gridOffset = row - rows + 1
	}
	if m.gridOffset < 0 {
		m.gridOffset = 0
	}
}

// renderGrid renders the visible cards, or the empty state explaining why
// there are none.
func (m Model) renderGrid(height int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	if msg := m.emptyMessage(); msg != "" {
		line := bg.Render(msg, styles.MutedText)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, line,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.SurfaceAlt)))
	}

	items := m.snapshot.Visible
	cols := m.gridColumns()
	rows := m.gridRows()

	var lines []string
	for r := m.gridOffset; r < m.gridOffset+rows; r++ {
		start := r * cols
		if start >= len(items) {
			break
		}
		end := min(start+cols, len(items))

		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, bg.Spaces(cardGap))
			}
			cards = append(cards, m.renderCard(items[i], i == m.cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(grid)
}

// emptyMessage returns the placeholder shown instead of the grid, or "".
func (m Model) emptyMessage() string {
	snap := m.snapshot
	switch {
	case !snap.HasLoaded && snap.LastError != nil:
		return fmt.Sprintf("Could not load the roster. Press %s to retry.", bindingLabel(m.keys.Reload))
	case !snap.HasLoaded:
		return "Loading roster..."
	case len(snap.Roster) == 0:
		return "No entries on this page."
	case len(snap.Visible) == 0:
		return fmt.Sprintf("No matches for %q on this page.", snap.Query)
	}
	return ""
}

// renderCard draws one entity on its primary category color, bordered in
// the contrast color. The cursor card gets a heavier border.
func (m Model) renderCard(e roster.Entity, selected bool) string {
	styles := m.theme.Styles()
	base, fg := styles.CategoryColors(e.PrimaryCategory())
	w, h := m.cardSize()
	inner := w - 4 // border plus one cell of padding each side

	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}

	text := lipgloss.NewStyle().
		Background(lipgloss.Color(base)).
		Foreground(lipgloss.Color(fg))

	name := text.Bold(true).Render(truncate(displayName(e.Name), inner))
	var body string
	if m.compact {
		body = name
	} else {
		id := text.Render(formatID(e.ID))
		cats := make([]string, 0, len(e.Categories))
		for _, c := range e.Categories {
			cats = append(cats, displayName(c))
		}
		kinds := text.Italic(true).Render(truncate(strings.Join(cats, " · "), inner))
		body = lipgloss.JoinVertical(lipgloss.Left, id, name, kinds)
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(fg)).
		BorderBackground(lipgloss.Color(m.theme.SurfaceAlt)).
		Background(lipgloss.Color(base)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Width(w - 2).
		Height(h - 2).
		Render(body)
}
