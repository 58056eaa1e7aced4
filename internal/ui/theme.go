package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/palette"
)

// Theme defines colors and styles for the UI. Card colors come from the
// category palette; the theme only covers the chrome around them.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Grid and overlays
	FocusBg    string // Focused panels (log view, search input)

	// Cursor
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Logo is the brand color of the header.
	Logo string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Logo)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		background: t.Background,
		muted:      t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	background string
	muted      string
}

// CategoryColors returns the base and contrast colors used to draw
// category. Unknown categories fall back to the theme's muted color with a
// contrast chosen the same way as for palette colors.
func (s Styles) CategoryColors(category string) (base, border string) {
	cs, err := palette.Style(category)
	if err != nil {
		return s.muted, s.background
	}
	return cs.Base.Hex(), cs.Border.RGB().Hex()
}

// CategoryBadge returns a badge style for category.
func (s Styles) CategoryBadge(category string) lipgloss.Style {
	base, fg := s.CategoryColors(category)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(base)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with every style painted on
// bgColor, so styled runs do not leave holes in a colored line.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),

		Header:   s.Header.Background(bg),
		Logo:     s.Logo.Background(bg),
		Selected: s.Selected.Background(bg),

		background: s.background,
		muted:      s.muted,
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Kanto": kantoTheme(),
	"Johto": johtoTheme(),
	"Hoenn": hoennTheme(),
}

var themeOrder = []string{"Kanto", "Johto", "Hoenn"}

// GetTheme returns a theme by name, falling back to Kanto.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return kantoTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func kantoTheme() Theme {
	// Red device shell over charcoal.
	return Theme{
		Name: "Kanto",

		Background: "#15171c",
		Surface:    "#1d2027",
		SurfaceAlt: "#252932",
		FocusBg:    "#2d323d",

		SelectionBg:   "#3b4252",
		SelectionText: "#eceff4",

		Border:      "#434a58",
		BorderMuted: "#2d323d",
		BorderFocus: "#e3350d",

		Text:    "#e5e9f0",
		Muted:   "#8c94a4",
		Faint:   "#6b7282",
		Accent:  "#5db9ff",
		Success: "#7ac74c",
		Warning: "#ffcb05",
		Danger:  "#e3350d",
		Info:    "#96d9d6",

		Logo: "#e3350d",
	}
}

func johtoTheme() Theme {
	// Gold and silver over warm dark brown.
	return Theme{
		Name: "Johto",

		Background: "#1a1712",
		Surface:    "#231f18",
		SurfaceAlt: "#2d281f",
		FocusBg:    "#373126",

		SelectionBg:   "#4a4132",
		SelectionText: "#f3ead8",

		Border:      "#5a4f3c",
		BorderMuted: "#373126",
		BorderFocus: "#d4af37",

		Text:    "#efe6d2",
		Muted:   "#b8ad96",
		Faint:   "#857a66",
		Accent:  "#c0c0c8",
		Success: "#9ab973",
		Warning: "#d4af37",
		Danger:  "#d9534f",
		Info:    "#8fb8c9",

		Logo: "#d4af37",
	}
}

func hoennTheme() Theme {
	// Ocean blues and teal.
	return Theme{
		Name: "Hoenn",

		Background: "#07141f",
		Surface:    "#0c1d2c",
		SurfaceAlt: "#122739",
		FocusBg:    "#193247",

		SelectionBg:   "#1f6f8b",
		SelectionText: "#f0f8ff",

		Border:      "#25455e",
		BorderMuted: "#122739",
		BorderFocus: "#2ec4b6",

		Text:    "#e0f2f8",
		Muted:   "#8fb3c6",
		Faint:   "#5f8196",
		Accent:  "#2ec4b6",
		Success: "#52d681",
		Warning: "#f6c453",
		Danger:  "#ef5a6f",
		Info:    "#6cc6ff",

		Logo: "#2ec4b6",
	}
}
