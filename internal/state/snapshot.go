package state

import (
	"time"

	"github.com/five82/pokedex/internal/roster"
)

// Snapshot represents the latest session state available to the UI.
type Snapshot struct {
	// Roster is the full last successfully loaded page.
	Roster []roster.Entity
	// Visible is Roster narrowed by Query.
	Visible []roster.Entity
	// Page is the most recently requested page.
	Page roster.Page
	// Loaded is the page Roster belongs to.
	Loaded    roster.Page
	HasLoaded bool
	Query     string
	Selection roster.Selection

	Loading             bool
	Generation          uint64
	LastLoaded          time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed loads
}

// HasPrev reports whether the previous-page action is enabled.
func (s Snapshot) HasPrev() bool {
	return s.Page.HasPrev()
}

// Selected returns the entity under inspection, if any.
func (s Snapshot) Selected() (roster.Entity, bool) {
	return s.Selection.Current()
}

// IsOffline returns true when the API has failed for multiple loads in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Stale reports whether the visible roster belongs to a different page than
// the one last requested.
func (s Snapshot) Stale() bool {
	return s.HasLoaded && s.Loaded != s.Page
}
