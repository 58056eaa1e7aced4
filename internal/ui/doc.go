// Package ui is the Bubble Tea front end of pokedex.
//
// The Model never owns catalog data. It holds a copy of the latest
// state.Snapshot and turns key presses into Controller calls (NextPage,
// SetQuery, Select, ...). Change notifications arrive through
// Controller.Subscribe and are converted into messages, so every mutation of
// the model happens on Bubble Tea's update goroutine.
//
// # Layout
//
//	header        logo, page, spinner, counts, last load, error label
//	command bar   key hints for the current view; disabled actions are struck out
//	content       card grid, detail overlay or session log
//	status line   search input, active filter or the API base URL
//
// Cards are painted in the primary category's palette color and bordered in
// its contrast color (black or white). Categories outside the palette fall
// back to the theme's muted color.
//
// # Views
//
//   - Grid: hjkl/arrows move, enter inspects, / searches, n/p page, r reloads.
//   - Detail overlay: shown while the controller is Inspecting; esc closes it.
//     Paging and searching keep working underneath.
//   - Session log (L): tail of the zerolog file, parsed by logtail.
//
// Themes (T) and the compact card density (c) are saved to prefs.toml.
package ui
