package sim

import (
	"math"

	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/vmath"
)

// Particle is one glyph in the background field
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Glyph rune
	Depth float64 // [0,1], scales opacity and speed
	Phase float64 // per-particle oscillation offset
}

// State is the per-frame physics snapshot consumed by the drawers.
// Ownership is exclusive to the current frame; nothing retains it.
type State struct {
	Elapsed   float64
	BeatCount int
	Particles []Particle
}

// Simulator owns the deterministic generator and the particle field.
// The same (song, hook start) key always reproduces the same motion.
type Simulator struct {
	rng  *vmath.FastRand
	area core.Area

	particles []Particle
	glyphs    []rune
	speed     float64

	lastElapsed   float64
	lastBeatCount int

	state State
}

// New creates a simulator seeded from the document's stable key
func New(doc *hook.HookDocument, area core.Area) *Simulator {
	scene := doc.BuildScene()
	s := &Simulator{
		rng:    vmath.NewKeyedRand(doc.SimKey()),
		area:   area,
		glyphs: []rune(scene.Particles.Glyphs),
		speed:  scene.Particles.Speed,
	}
	s.seedParticles(scene.Particles.Count)
	return s
}

// Rand exposes the seeded generator; all "random-looking" motion in the
// pipeline draws from here so a replay reproduces exactly
func (s *Simulator) Rand() *vmath.FastRand {
	return s.rng
}

// Resize updates the wraparound bounds; particles keep their positions and
// re-enter through the new edges
func (s *Simulator) Resize(area core.Area) {
	s.area = area
}

func (s *Simulator) seedParticles(count int) {
	s.particles = make([]Particle, count)
	w := float64(s.area.Width)
	h := float64(s.area.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	for i := range s.particles {
		depth := s.rng.Range(0.2, 1.0)
		angle := s.rng.Range(0, 2*math.Pi)
		speed := s.speed * depth * s.rng.Range(0.3, 1.0)
		s.particles[i] = Particle{
			Pos:   core.Vec{X: s.rng.Range(0, w), Y: s.rng.Range(0, h)},
			Vel:   core.Vec{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
			Glyph: s.glyphs[s.rng.Intn(len(s.glyphs))],
			Depth: depth,
			Phase: s.rng.Range(0, 2*math.Pi),
		}
	}
}

// Advance integrates the particle field to the given elapsed time and beat
// count and returns the frame snapshot. Downbeat-grouped kicks come from the
// seeded generator, so they are reproducible too.
func (s *Simulator) Advance(elapsed float64, beatCount int) *State {
	dt := elapsed - s.lastElapsed
	if dt < 0 {
		// Loop restart: keep the field but restart integration
		dt = 0
	}
	if dt > 0.25 {
		dt = 0.25
	}

	kicked := beatCount != s.lastBeatCount
	down := kicked && beatCount%constants.DownbeatInterval == 1

	w := float64(s.area.Width)
	h := float64(s.area.Height)
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos.X = vmath.WrapMod(p.Pos.X+p.Vel.X*dt, w)
		p.Pos.Y = vmath.WrapMod(p.Pos.Y+p.Vel.Y*dt, h)
		if down {
			p.Vel.X += s.rng.Jitter(s.speed * 0.6)
			p.Vel.Y += s.rng.Jitter(s.speed * 0.3)
		}
		// Gentle drag returns kicked particles to their cruise speed
		p.Vel.X -= p.Vel.X * 0.4 * dt
		p.Vel.Y -= p.Vel.Y * 0.4 * dt
	}

	s.lastElapsed = elapsed
	s.lastBeatCount = beatCount

	s.state = State{
		Elapsed:   elapsed,
		BeatCount: beatCount,
		Particles: s.particles,
	}
	return &s.state
}
