package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the header drops labels.
	LayoutCompactWidth = 100
)

// Card geometry. Heights include the border.
const (
	cardWidth         = 22
	cardHeight        = 5
	compactCardWidth  = 16
	compactCardHeight = 3
	cardGap           = 1
)

// chromeLines is the number of rows taken by the header, command bar and
// status line around the grid.
const chromeLines = 3

// Log display limits.
const (
	// LogTailLines is the number of session log lines shown in the log view.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the header clock and log follow cadence.
	DefaultUIInterval = time.Second
)
