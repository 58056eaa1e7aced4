package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/roster"
)

const (
	detailWidth  = 56
	statLabelW   = 16
	statBarWidth = 24
	// maxBaseStat is the highest base stat any entity has.
	maxBaseStat = 255
)

// renderDetail renders the inspection overlay for e.
func (m Model) renderDetail(e roster.Entity) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	base, _ := styles.CategoryColors(e.PrimaryCategory())
	inner := detailWidth - 6

	var lines []string

	title := bg.Render(displayName(e.Name), styles.Text.Bold(true)) + bg.Space() +
		bg.Render(formatID(e.ID), styles.MutedText)
	lines = append(lines, title)

	badges := make([]string, 0, len(e.Categories))
	for _, c := range e.Categories {
		badges = append(badges, styles.CategoryBadge(c).Render(displayName(c)))
	}
	lines = append(lines, bg.Join(badges, " "), "")

	lines = append(lines,
		m.detailRow("Height", formatHeight(e.Height), styles, bg),
		m.detailRow("Weight", formatWeight(e.Weight), styles, bg),
		m.detailRow("Base exp", fmt.Sprintf("%d", e.BaseExperience), styles, bg),
	)

	abilities := make([]string, 0, len(e.Abilities))
	for _, a := range e.Abilities {
		abilities = append(abilities, displayName(a))
	}
	if len(abilities) == 0 {
		abilities = append(abilities, "none")
	}
	lines = append(lines, m.detailRow("Abilities", truncate(strings.Join(abilities, ", "), inner-statLabelW), styles, bg))

	image := "no image"
	if e.HasImage() {
		image = truncateMiddle(e.ImageURL, inner-statLabelW)
	}
	lines = append(lines, m.detailRow("Sprite", image, styles, bg))

	if len(e.Stats) > 0 {
		lines = append(lines, "", bg.Render("Base stats", styles.AccentText.Bold(true)))
		for _, s := range e.Stats {
			lines = append(lines, m.statRow(s, base, styles, bg))
		}
	}

	lines = append(lines, "", bg.Render(fmt.Sprintf("%s to close", bindingLabel(m.keys.Escape)), styles.FaintText))

	body := make([]string, len(lines))
	for i, line := range lines {
		body[i] = bg.FillLine(line, inner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(base)).
		BorderBackground(lipgloss.Color(m.theme.SurfaceAlt)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 2).
		Width(detailWidth - 2).
		Render(strings.Join(body, "\n"))
}

func (m Model) detailRow(label, value string, styles Styles, bg BgStyle) string {
	return bg.Render(padRight(label, statLabelW), styles.MutedText) + bg.Render(value, styles.Text)
}

// statRow renders "Special Attack   65 ██████░░░░".
func (m Model) statRow(s roster.Stat, color string, styles Styles, bg BgStyle) string {
	filled := statBar(s.Base, statBarWidth)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Background(lipgloss.Color(m.theme.Surface)).
		Render(strings.Repeat("█", filled)) +
		bg.Render(strings.Repeat("░", statBarWidth-filled), styles.FaintText)
	return bg.Render(padRight(displayName(s.Name), statLabelW), styles.MutedText) +
		bg.Render(fmt.Sprintf("%3d", s.Base), styles.Text) + bg.Space() + bar
}

// statBar returns how many of width cells a base stat fills.
func statBar(value, width int) int {
	if value <= 0 || width <= 0 {
		return 0
	}
	if value >= maxBaseStat {
		return width
	}
	filled := value * width / maxBaseStat
	if filled == 0 {
		filled = 1
	}
	return filled
}
