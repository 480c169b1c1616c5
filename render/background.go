package render

import (
	"math"

	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/sim"
)

// DrawBackground paints the particle field from the frame's physics
// snapshot. Depth scales opacity; the beat breathes through everything.
func (b *Buffer) DrawBackground(state *sim.State, scene hook.Scene, beatIntensity float64) {
	if state == nil {
		return
	}
	for i := range state.Particles {
		p := &state.Particles[i]
		x := int(p.Pos.X)
		y := int(p.Pos.Y)

		// Slow per-particle breathing on top of the beat pulse
		breathe := 0.7 + 0.3*math.Sin(state.Elapsed*0.8+p.Phase)
		alpha := p.Depth * breathe * (0.25 + 0.35*beatIntensity)

		color := scene.Secondary.Lerp(scene.Accent, beatIntensity*p.Depth)
		b.Set(x, y, p.Glyph, color, alpha, false)
	}
}
