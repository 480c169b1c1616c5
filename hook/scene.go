package hook

import (
	"github.com/lixenwraith/hookdance/core"
)

// Scene is a derived, read-only projection of the physics spec with safe
// fallbacks resolved. Computed once per draw call, never persisted.
type Scene struct {
	Primary   core.RGB
	Secondary core.RGB
	Accent    core.RGB

	// TextColor contrasts against Primary so lyric text stays readable on
	// any declared palette
	TextColor core.RGB

	System     string
	Typography Typography
	EffectPool []string
	Particles  ParticleConfig
}

// Default palette used when the document declares none
var (
	defaultPrimary   = core.RGB{R: 16, G: 18, B: 38}
	defaultSecondary = core.RGB{R: 120, G: 134, B: 199}
	defaultAccent    = core.RGB{R: 247, G: 118, B: 142}
)

// defaultEffectPool keeps line styling alive for minimal manifests that
// declare no pool of their own
var defaultEffectPool = []string{"pulse-slow", "shimmer-fast", "fade-out-fast"}

// BuildScene projects the document's physics spec into a Scene, degrading
// every missing field to a safe default
func (d *HookDocument) BuildScene() Scene {
	s := Scene{
		Primary:   defaultPrimary,
		Secondary: defaultSecondary,
		Accent:    defaultAccent,
	}

	if d.Palette[0] != "" {
		s.Primary = core.ParseHex(d.Palette[0])
	}
	if d.Palette[1] != "" {
		s.Secondary = core.ParseHex(d.Palette[1])
	}
	if d.Palette[2] != "" {
		s.Accent = core.ParseHex(d.Palette[2])
	}
	s.TextColor = s.Primary.ContrastText()

	s.System = d.Physics.System
	if s.System != "orbital" {
		s.System = "linear"
	}

	s.Typography = d.Physics.Typography
	if d.TypographyOverride != nil {
		s.Typography = *d.TypographyOverride
	}
	if s.Typography.BaseSize <= 0 {
		s.Typography.BaseSize = 32
	}

	s.EffectPool = d.Physics.EffectPool
	if len(s.EffectPool) == 0 {
		s.EffectPool = defaultEffectPool
	}

	s.Particles = d.Physics.Particles
	if s.Particles.Count <= 0 {
		s.Particles.Count = 48
	}
	if s.Particles.Glyphs == "" {
		s.Particles.Glyphs = "·∙*+"
	}
	if s.Particles.Speed <= 0 {
		s.Particles.Speed = 1.0
	}

	return s
}
