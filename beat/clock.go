package beat

import (
	"math"
	"sort"

	"github.com/lixenwraith/hookdance/constants"
)

// Clock maps a playback time onto the tick schedule: how many ticks have
// passed and how hot the most recent one still burns
type Clock struct {
	ticks []Tick
}

// NewClock wraps a tick schedule. A nil schedule is valid and pins the
// clock at rest.
func NewClock(ticks []Tick) *Clock {
	return &Clock{ticks: ticks}
}

// Count returns the number of ticks at or before time t
func (c *Clock) Count(t float64) int {
	return sort.Search(len(c.ticks), func(i int) bool {
		return c.ticks[i].Time > t
	})
}

// Intensity returns the instantaneous beat intensity at time t: the last
// tick's strength decayed exponentially since it fired, in [0,1]. With no
// ticks the intensity is 0 and beat-driven modifiers stay at rest.
func (c *Clock) Intensity(t float64) float64 {
	n := c.Count(t)
	if n == 0 {
		return 0
	}
	last := c.ticks[n-1]
	elapsed := t - last.Time
	if elapsed < 0 {
		return 0
	}
	return last.Strength * math.Exp(-constants.BeatDecayRate*elapsed)
}

// LastDownbeat returns the time of the most recent downbeat at or before t,
// and false when none has fired yet
func (c *Clock) LastDownbeat(t float64) (float64, bool) {
	for i := c.Count(t) - 1; i >= 0; i-- {
		if c.ticks[i].IsDownbeat {
			return c.ticks[i].Time, true
		}
	}
	return 0, false
}

// Ticks exposes the schedule for inspection
func (c *Clock) Ticks() []Tick {
	return c.ticks
}
