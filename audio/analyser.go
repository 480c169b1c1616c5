package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Analyser taps an audio stream and reports its rolling RMS level in [0,1].
// The engine folds the live level into beat intensity so rendering reacts
// to what the track is actually doing, not just the precomputed grid.
type Analyser struct {
	source beep.Streamer

	// level is the smoothed RMS stored as math.Float64bits; Stream runs on
	// the speaker goroutine, Level on the frame loop
	level atomic.Uint64
}

// NewAnalyser creates a detached analyser; OpenTrack wires it into a
// clock's stream chain
func NewAnalyser() *Analyser {
	return &Analyser{}
}

// Stream passes samples through while accumulating their RMS level
func (a *Analyser) Stream(samples [][2]float64) (int, bool) {
	if a.source == nil {
		return 0, false
	}
	n, ok := a.source.Stream(samples)
	if n > 0 {
		sum := 0.0
		for i := 0; i < n; i++ {
			m := (samples[i][0] + samples[i][1]) / 2
			sum += m * m
		}
		rms := math.Sqrt(sum / float64(n))
		prev := math.Float64frombits(a.level.Load())
		// One-pole smoothing keeps the level from strobing per buffer
		a.level.Store(math.Float64bits(prev*0.8 + rms*0.2))
	}
	return n, ok
}

// Err reports the underlying stream error, if any
func (a *Analyser) Err() error {
	if a.source == nil {
		return nil
	}
	return a.source.Err()
}

// Level returns the current smoothed RMS level clamped to [0,1]
func (a *Analyser) Level() float64 {
	l := math.Float64frombits(a.level.Load())
	if l > 1 {
		return 1
	}
	if l < 0 {
		return 0
	}
	return l
}
