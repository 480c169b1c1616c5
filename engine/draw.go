package engine

import (
	"github.com/lixenwraith/hookdance/anim"
	"github.com/lixenwraith/hookdance/constellation"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/layout"
	"github.com/lixenwraith/hookdance/sim"
)

// draw composes one frame. Any missing collaborator makes this a silent
// no-op: the engine degrades to "nothing drawn this frame" rather than
// crashing the host. Caller holds the engine lock.
func (e *Engine) draw(hookTime float64, state *sim.State, intensity float64) {
	if e.doc == nil || e.buf == nil || e.simulator == nil || e.resolver == nil || !e.resolver.Loaded() {
		return
	}

	scene := e.doc.BuildScene()
	e.buf.Clear(scene.Primary)
	e.buf.DrawBackground(state, scene, intensity)

	line, lineIdx := e.doc.LineAt(hookTime)

	// The climactic line owns the stage: river rows vanish and ambient
	// drift dims while it holds
	fracture := line != nil && e.doc.IsFinalLine(lineIdx)
	e.field.SetFracture(fracture)

	if line != nil {
		e.drawLine(line, lineIdx, hookTime, intensity, scene)
	}

	e.drawComments(scene)

	e.buf.Flush(e.screen)
}

// drawLine lays out the active line and paints each word through its
// resolved transform chain: line entrance/exit, then the word's mark
func (e *Engine) drawLine(line *hook.LyricLine, lineIdx int, hookTime, intensity float64, scene hook.Scene) {
	activeIdx := line.ActiveWordIndex(hookTime)
	res := e.layoutEng.Layout(line, activeIdx, e.buf.Area().Inset(1), scene)

	ls := e.resolver.ResolveLine(lineIdx, line, hookTime, intensity, scene)
	base := anim.BaseTransform(ls)
	if !base.Visible {
		return
	}

	rng := e.simulator.Rand()
	elapsed := hookTime - line.Start

	// Static glitch displaces the whole line on a minority of frames
	var lineOffsetX float64
	if ls.Mod == anim.ModStaticGlitch && rng.Chance(0.2) {
		lineOffsetX = rng.Jitter(1.5)
	}

	for i, p := range res.Placements {
		t := base
		if accent, ok := e.resolver.ResolveWord(lineIdx, i, intensity); ok {
			t = anim.ApplyMark(t, accent, elapsed, scene, rng)
		}
		if !t.Visible || t.Alpha <= 0 {
			continue
		}

		// The emphasis word reads heavier than its neighbors
		bold := t.Bold || t.Scale >= 1.05 || i == activeIdx
		color := t.Color
		alpha := t.Alpha
		if i == activeIdx {
			color = color.Lerp(scene.Accent, 0.25)
		} else if res.Strategy == layout.StrategyOrbital {
			// Orbital neighbors sit back so the centered word pops
			alpha *= 0.75
		}

		e.buf.DrawTextCentered(p.X+t.OffsetX+lineOffsetX, p.Y+t.OffsetY, p.Word, color, alpha, bold)
	}
}

// drawComments overlays the constellation field, aged on wall-clock time
// so drift continues while playback is paused
func (e *Engine) drawComments(scene hook.Scene) {
	if e.field == nil {
		return
	}
	now := e.timeProvider.Now()
	e.field.Advance(now)

	for _, ds := range e.field.Draw(now) {
		if !ds.Visible || ds.Opacity <= 0 {
			continue
		}
		color := scene.Secondary
		bold := false
		if ds.Phase == constellation.PhaseCenter {
			color = scene.Secondary.Lerp(core.RGBWhite, 0.5)
			bold = true
		}
		e.buf.DrawTextCentered(ds.X, ds.Y, ds.Text, color, ds.Opacity, bold)
	}
}
