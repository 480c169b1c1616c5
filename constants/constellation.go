package constants

import "time"

// Comment Phase Timings
const (
	// CenterPhaseDuration holds a fresh comment large and centered
	CenterPhaseDuration = 800 * time.Millisecond

	// TransitionPhaseDuration eases the comment toward its river row
	TransitionPhaseDuration = 4 * time.Second

	// RiverPhaseDuration keeps the comment scrolling before it may drop
	// into ambient constellation drift
	RiverPhaseDuration = 20 * time.Second
)

// River Rows
const (
	// RiverRowCount is the number of horizontal scroll lanes
	RiverRowCount = 4

	// RiverRowMargin is the off-surface margin used by wraparound tiling
	RiverRowMargin = 8.0

	// RiverWordGap is the gap between comments tiled on one row (cells)
	RiverWordGap = 6.0
)

// Constellation Drift
const (
	// ConstellationOpacity is the base opacity of ambient drifting comments
	ConstellationOpacity = 0.35

	// ConstellationDriftMin and ConstellationDriftMax bound drift speed
	// (cells per second)
	ConstellationDriftMin = 0.4
	ConstellationDriftMax = 1.6

	// FractureOpacityScale halves constellation visibility while the hook's
	// final line holds the stage
	FractureOpacityScale = 0.5
)

// Comment Typography
const (
	// CenterFontSize is the entry size of a fresh comment
	CenterFontSize = 28.0
)
