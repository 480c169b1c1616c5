package constants

import "time"

// Frame Loop Timing
const (
	// FrameInterval is the target frame tick interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// HookEndThreshold is the progress ratio at which onEnd fires
	HookEndThreshold = 0.98

	// HookEndRearmThreshold re-arms the onEnd guard once progress drops below it
	HookEndRearmThreshold = 0.5
)

// Beat Scheduling
const (
	// DownbeatInterval groups beats: every Nth beat is a downbeat
	DownbeatInterval = 4

	// DownbeatStrength is the tick strength of a downbeat
	DownbeatStrength = 1.0

	// OffbeatStrength is the tick strength of a non-downbeat
	OffbeatStrength = 0.6

	// BeatDecayRate controls how fast beat intensity relaxes after a tick
	// (per-second exponential decay constant)
	BeatDecayRate = 6.0
)

// Line Animation Windows
const (
	// LineEntryWindow is the ramp duration of a line's entrance
	LineEntryWindow = 0.45

	// LineExitWindow is the ramp duration of a line's exit, ending at line end
	LineExitWindow = 0.40

	// EntranceCutThreshold flips a "cuts" entrance visible past this progress
	EntranceCutThreshold = 0.08

	// ExitSnapThreshold flips a "snaps-off" exit invisible past this progress
	ExitSnapThreshold = 0.88
)
