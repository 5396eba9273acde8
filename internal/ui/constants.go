package ui

import "time"

// Layout constants for panel sizing
const (
	// HelpBarHeight is the height of the help line in rows
	HelpBarHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// BorderInset is the offset from a panel's corner to its first text cell
	BorderInset = 1

	// TokenHeightPercent is the share of the screen given to the token panel
	TokenHeightPercent = 20

	// MiddleHeightPercent is the share given to the header/payload row
	MiddleHeightPercent = 50

	// HeaderWidthPercent is the header panel's share of the middle row
	HeaderWidthPercent = 50

	// MinTerminalWidth is the narrowest layout computed
	MinTerminalWidth = 20

	// MinTerminalHeight is the shortest layout computed
	MinTerminalHeight = 8
)

// Flash message timing
const (
	// DefaultFlashDuration is how long a flash stays in the help bar
	DefaultFlashDuration = 3 * time.Second
)
