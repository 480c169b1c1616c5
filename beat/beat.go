package beat

import (
	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/hook"
)

// Tick is one classified beat: its timestamp, whether it opens a 4-beat
// grouping, and its strength
type Tick struct {
	Time       float64
	IsDownbeat bool
	Strength   float64
}

// Schedule converts a beat grid into classified ticks. Derived once per
// document load; nothing is recomputed during playback. An empty or
// malformed grid yields no ticks and the rest of the system renders from
// elapsed time alone.
func Schedule(grid hook.BeatGrid) []Tick {
	if len(grid.Beats) == 0 {
		return nil
	}
	ticks := make([]Tick, 0, len(grid.Beats))
	for i, t := range grid.Beats {
		down := i%constants.DownbeatInterval == 0
		strength := constants.OffbeatStrength
		if down {
			strength = constants.DownbeatStrength
		}
		ticks = append(ticks, Tick{
			Time:       t,
			IsDownbeat: down,
			Strength:   strength,
		})
	}
	return ticks
}
