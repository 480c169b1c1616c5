package anim

import (
	"math"

	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/vmath"
)

// lineStyle is the stable per-line styling derived once at document load.
// Recomputing these per frame would flicker the vocabulary choices.
type lineStyle struct {
	mod      LineMod
	entrance Entrance
	exit     Exit
}

// wordAccent marks one word; sparse by design
type wordAccent struct {
	mark Mark
}

// LineState is the resolved per-frame line animation, recomputed every
// frame and never stored
type LineState struct {
	EntryProgress float64
	ExitProgress  float64
	Scale         float64
	Mod           LineMod
	Entrance      Entrance
	Exit          Exit
	Color         core.RGB
}

// WordAccent is the resolved mark for one word this frame
type WordAccent struct {
	Mark      Mark
	Intensity float64
}

// Resolver derives stable per-line and per-word stylistic decisions from a
// document's physics spec. One instance per playback engine; re-seeding is
// a full document swap, never a per-frame operation.
type Resolver struct {
	doc    *hook.HookDocument
	styles []lineStyle
	// accents[line][word]; nil entry means the word carries no mark
	accents [][]*wordAccent
}

// NewResolver creates an empty resolver; Load must run before resolution
func NewResolver() *Resolver {
	return &Resolver{}
}

// EffectKey returns the effect pool identifier for a line index:
// pool[(seed + index*7) mod len(pool)]
func EffectKey(seed, index int, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	i := (seed + index*7) % len(pool)
	if i < 0 {
		i += len(pool)
	}
	return pool[i]
}

// Load re-seeds the resolver for a document. Per-line modifiers follow the
// declared effect pool; the hook-final line is pinned to the climax spike.
// Entrances, exits and sparse word marks come from a generator seeded by
// the logic seed, so a reload reproduces the same choices.
func (r *Resolver) Load(doc *hook.HookDocument) {
	r.doc = doc
	scene := doc.BuildScene()
	seed := doc.Physics.LogicSeed

	rng := vmath.NewFastRand(uint64(int64(seed)) + 0x9e3779b97f4a7c15)

	r.styles = make([]lineStyle, len(doc.Lines))
	r.accents = make([][]*wordAccent, len(doc.Lines))

	for i := range doc.Lines {
		st := lineStyle{
			mod:      ParseLineMod(EffectKey(seed, i, scene.EffectPool)),
			entrance: entrances[rng.Intn(len(entrances))],
			exit:     exits[rng.Intn(len(exits))],
		}
		if doc.IsFinalLine(i) {
			st.mod = ModHeatSpike
		}
		r.styles[i] = st

		words := doc.Lines[i].TimedWords()
		accents := make([]*wordAccent, len(words))
		for w := range words {
			// Emphasis is sparse: marking every word defeats the purpose
			if rng.Chance(0.3) {
				accents[w] = &wordAccent{mark: marks[rng.Intn(len(marks))]}
			}
		}
		r.accents[i] = accents
	}
}

// Loaded reports whether a document is currently resolved
func (r *Resolver) Loaded() bool {
	return r.doc != nil
}

// ResolveLine computes the per-frame line animation from the current time
// and instantaneous beat intensity
func (r *Resolver) ResolveLine(lineIndex int, line *hook.LyricLine, now, beatIntensity float64, scene hook.Scene) LineState {
	st := lineStyle{}
	if lineIndex >= 0 && lineIndex < len(r.styles) {
		st = r.styles[lineIndex]
	}

	entry := core.Clamp01((now - line.Start) / constants.LineEntryWindow)
	exit := core.Clamp01((now - (line.End - constants.LineExitWindow)) / constants.LineExitWindow)

	out := LineState{
		EntryProgress: entry,
		ExitProgress:  exit,
		Scale:         1.0,
		Mod:           st.mod,
		Entrance:      st.entrance,
		Exit:          st.exit,
		Color:         scene.TextColor,
	}

	elapsed := now - line.Start
	switch st.mod {
	case ModPulseSlow:
		out.Scale = 1 + 0.03*math.Sin(2*math.Pi*0.8*elapsed) + 0.02*beatIntensity
	case ModPulseStrong:
		out.Scale = 1 + 0.10*beatIntensity
	case ModShimmerFast:
		out.Color = scene.TextColor.Lerp(scene.Secondary, 0.5+0.5*math.Sin(2*math.Pi*6*elapsed))
	case ModWaveDistort:
		out.Scale = 1 + 0.04*math.Sin(2*math.Pi*1.5*elapsed)
	case ModStaticGlitch:
		// Position noise is applied per word at draw time
	case ModHeatSpike:
		out.Scale = 1 + 0.12*beatIntensity
		out.Color = scene.TextColor.Lerp(scene.Accent, 0.4+0.6*beatIntensity)
	case ModBlurOut:
		out.Color = out.Color.Scale(1 - 0.4*exit)
	case ModFadeOutFast:
		out.ExitProgress = core.Clamp01(exit * 1.6)
	case ModNone:
	}

	return out
}

// ResolveWord returns the word's mark for this frame, if it carries one.
// Mark intensity composes the beat so accents hit on the rhythm.
func (r *Resolver) ResolveWord(lineIndex, wordIndex int, beatIntensity float64) (WordAccent, bool) {
	if lineIndex < 0 || lineIndex >= len(r.accents) {
		return WordAccent{}, false
	}
	accents := r.accents[lineIndex]
	if wordIndex < 0 || wordIndex >= len(accents) || accents[wordIndex] == nil {
		return WordAccent{}, false
	}
	return WordAccent{
		Mark:      accents[wordIndex].mark,
		Intensity: 0.3 + 0.7*beatIntensity,
	}, true
}
