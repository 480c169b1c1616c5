package anim

import (
	"math"

	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/vmath"
)

// Transform is the accumulated draw-level modifier for one word this frame:
// offset in cells, opacity, scale, a color override and a visibility flip
type Transform struct {
	OffsetX, OffsetY float64
	Alpha            float64
	Scale            float64
	Color            core.RGB
	Bold             bool
	Visible          bool
}

// BaseTransform starts from the line state: entrance and exit ramps applied
// at the transform level before any per-word mark
func BaseTransform(ls LineState) Transform {
	t := Transform{Alpha: 1, Scale: ls.Scale, Color: ls.Color, Visible: true}
	t = applyEntrance(t, ls.Entrance, ls.EntryProgress)
	t = applyExit(t, ls.Exit, ls.ExitProgress)
	return t
}

func applyEntrance(t Transform, e Entrance, progress float64) Transform {
	if progress >= 1 {
		return t
	}
	switch e {
	case EntranceMaterialize:
		t.Alpha *= progress
	case EntranceSlam:
		// Overshoot past full size, settling to 1
		t.Scale *= core.EaseOutBack(progress)
		t.Alpha *= core.Clamp01(progress * 2)
	case EntranceRise:
		t.OffsetY += (1 - core.EaseOutCubic(progress)) * 4
		t.Alpha *= progress
	case EntranceFracture:
		jitter := (1 - progress) * 1.5
		t.OffsetX += math.Sin(progress*47) * jitter
		t.OffsetY += math.Cos(progress*31) * jitter * 0.5
		t.Alpha *= progress
	case EntranceCut:
		t.Visible = progress >= constants.EntranceCutThreshold
	case EntranceFade:
		t.Alpha *= progress
	}
	return t
}

func applyExit(t Transform, e Exit, progress float64) Transform {
	if progress <= 0 {
		return t
	}
	switch e {
	case ExitDissolveUp:
		t.OffsetY -= core.EaseInCubic(progress) * 5
		t.Alpha *= 1 - progress
	case ExitShatter:
		spread := core.EaseInCubic(progress) * 3
		t.OffsetX += math.Sin(progress*59) * spread
		t.OffsetY += math.Cos(progress*43) * spread
		t.Alpha *= 1 - progress
	case ExitDrop:
		t.OffsetY += core.EaseInCubic(progress) * 6
		t.Alpha *= 1 - progress
	case ExitBurnOut:
		t.Scale *= 1 + 0.5*progress
		t.Alpha *= 1 - progress
	case ExitSnapOff:
		if progress >= constants.ExitSnapThreshold {
			t.Visible = false
		}
	case ExitFade:
		t.Alpha *= 1 - progress
	}
	return t
}

// ApplyMark layers a word's accent onto its transform. GLITCH draws from the
// simulator's seeded generator so replays reproduce the same flicker.
func ApplyMark(t Transform, a WordAccent, elapsed float64, scene hook.Scene, rng *vmath.FastRand) Transform {
	switch a.Mark {
	case MarkShatter:
		// Jitter inversely with intensity: the accent settles as the beat hits
		amp := (1 - a.Intensity) * 1.2
		t.OffsetX += math.Sin(elapsed*37) * amp
		t.OffsetY += math.Cos(elapsed*29) * amp * 0.5
	case MarkGlow:
		t.Bold = true
		t.Color = t.Color.Lerp(scene.Accent, 0.3+0.7*a.Intensity)
	case MarkFade:
		t.Alpha *= 0.35 + 0.65*a.Intensity
	case MarkPulse:
		t.Scale *= 1 + 0.08*a.Intensity*math.Sin(2*math.Pi*2*elapsed)
	case MarkShimmer:
		t.Alpha *= 0.6 + 0.4*core.Pulse(elapsed, 8)
	case MarkGlitch:
		if rng != nil && rng.Chance(0.3) {
			t.OffsetX += rng.Jitter(2.0)
		}
	}
	return t
}
