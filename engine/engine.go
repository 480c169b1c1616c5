package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hookdance/anim"
	"github.com/lixenwraith/hookdance/audio"
	"github.com/lixenwraith/hookdance/beat"
	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/constellation"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/layout"
	"github.com/lixenwraith/hookdance/render"
	"github.com/lixenwraith/hookdance/sim"
)

// Config wires an engine together. Zero fields fall back to production
// defaults; tests inject a mock clock and a step scheduler.
type Config struct {
	Document *hook.HookDocument

	// Screen may be nil; the engine then runs the full pipeline headless
	Screen tcell.Screen

	// Width/Height seed the surface size for headless engines
	Width, Height int

	Scheduler    Scheduler
	TimeProvider TimeProvider

	// Registry shares audio graphs across engines; nil creates a private one
	Registry *audio.Registry

	// Analyser, when supplied, is externally owned: the engine reads its
	// level but never releases or rewires it
	Analyser *audio.Analyser

	// OnEnd fires once per loop pass as playback approaches the hook's end
	OnEnd func()
}

// FrameRef is the read-only snapshot of the last completed frame
type FrameRef struct {
	Time      float64
	BeatCount int
	Progress  float64
	State     *sim.State
}

// Engine owns one hook's playback: the timing source, the frame loop and
// the draw pipeline composing simulator, beat clock, layout, animation and
// the comment field.
type Engine struct {
	mu sync.Mutex

	doc       *hook.HookDocument
	simulator *sim.Simulator
	beatClock *beat.Clock
	layoutEng *layout.Engine
	resolver  *anim.Resolver
	field     *constellation.Field

	buf    *render.Buffer
	screen tcell.Screen

	registry *audio.Registry
	source   *audio.Source
	external *audio.Analyser

	scheduler    Scheduler
	timeProvider TimeProvider

	active  atomic.Bool
	running atomic.Bool
	muted   bool

	endFired bool
	onEnd    func()

	frameRef FrameRef
}

// New assembles an engine; Setup must run before Start
func New(cfg Config) *Engine {
	e := &Engine{
		doc:          cfg.Document,
		screen:       cfg.Screen,
		registry:     cfg.Registry,
		external:     cfg.Analyser,
		scheduler:    cfg.Scheduler,
		timeProvider: cfg.TimeProvider,
		onEnd:        cfg.OnEnd,
		muted:        true,
	}
	if e.registry == nil {
		e.registry = audio.NewRegistry()
	}
	if e.scheduler == nil {
		e.scheduler = NewTickerScheduler(constants.FrameInterval)
	}
	if e.timeProvider == nil {
		e.timeProvider = NewMonotonicTimeProvider()
	}

	w, h := cfg.Width, cfg.Height
	if e.screen != nil {
		w, h = e.screen.Size()
	}
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	e.buf = render.NewBuffer(w, h)
	return e
}

// Setup performs the one-shot startup work: audio graph acquisition and
// per-document state. It is the only place the engine may suspend; nothing
// blocks mid-frame afterwards.
func (e *Engine) Setup() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.doc == nil {
		return errors.New("no document")
	}
	e.loadDocumentLocked(e.doc)
	return nil
}

// loadDocumentLocked (re)binds every per-document component. Latest
// document wins; the reseed completes before the next frame draws because
// frames take the same lock.
func (e *Engine) loadDocumentLocked(doc *hook.HookDocument) {
	e.doc = doc

	area := e.buf.Area()
	e.simulator = sim.New(doc, area)
	e.layoutEng = layout.New(e.simulator)
	e.beatClock = beat.NewClock(beat.Schedule(doc.BeatGrid))

	e.resolver = anim.NewResolver()
	e.resolver.Load(doc)

	e.field = constellation.NewField(area, e.simulator.Rand())

	e.acquireSourceLocked()
}

// acquireSourceLocked leases the document's audio source, releasing any
// previous lease first
func (e *Engine) acquireSourceLocked() {
	if e.source != nil {
		e.source.Release()
	}
	loop := time.Duration(e.doc.Duration() * float64(time.Second))
	e.source = e.registry.Acquire(e.doc.AudioRef, loop)
	e.source.Clock.SetMuted(e.muted)
	if !e.active.Load() {
		// A paused (or not yet started) engine must not let a freshly
		// acquired clock run ahead
		e.source.Clock.Pause()
	}
}

// Swap replaces the playing document without tearing the engine down,
// reusing the audio graph when the reference is unchanged
func (e *Engine) Swap(doc *hook.HookDocument) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if doc == nil {
		return
	}
	e.loadDocumentLocked(doc)
	e.source.Clock.Seek(0)
	e.endFired = false
}

// Start resets playback to the beginning and begins ticking. A source
// released by an earlier Stop is reacquired through the registry, so
// Stop followed by Start resumes a working engine.
func (e *Engine) Start() {
	e.active.Store(true)
	e.mu.Lock()
	if e.source == nil && e.doc != nil {
		e.acquireSourceLocked()
	}
	if e.source != nil {
		e.source.Clock.Seek(0)
		e.source.Clock.Resume()
	}
	e.endFired = false
	e.mu.Unlock()

	if e.running.CompareAndSwap(false, true) {
		e.scheduler.Start(e.frame)
	}
}

// Stop synchronously halts the frame loop and releases the audio lease.
// An externally supplied analyser is left untouched.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	e.active.Store(false)
	e.scheduler.Stop()

	e.mu.Lock()
	if e.source != nil {
		e.source.Clock.Pause()
		e.source.Release()
		e.source = nil
	}
	e.mu.Unlock()
}

// Pause gates the active flag without discarding state. Comment drift
// keeps moving; only playback freezes.
func (e *Engine) Pause() {
	if e.active.CompareAndSwap(true, false) {
		e.mu.Lock()
		if e.source != nil {
			e.source.Clock.Pause()
		}
		e.mu.Unlock()
	}
}

// Resume reopens the gate
func (e *Engine) Resume() {
	if e.active.CompareAndSwap(false, true) {
		e.mu.Lock()
		if e.source != nil {
			e.source.Clock.Resume()
		}
		e.mu.Unlock()
	}
}

// Restart is stop+start, preserving the externally controlled mute state
func (e *Engine) Restart() {
	e.active.Store(true)
	e.mu.Lock()
	if e.source != nil {
		e.source.Clock.Seek(0)
		e.source.Clock.Resume()
	}
	e.endFired = false
	e.mu.Unlock()
	if e.running.CompareAndSwap(false, true) {
		e.scheduler.Start(e.frame)
	}
}

// SetMuted controls whether the timing track is audible
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	if e.source != nil {
		e.source.Clock.SetMuted(muted)
	}
}

// Resize re-measures the surface only when the backing dimensions changed
func (e *Engine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	w, h := e.buf.Size()
	if w == width && h == height {
		return
	}
	e.buf.Resize(width, height)
	area := e.buf.Area()
	if e.simulator != nil {
		e.simulator.Resize(area)
	}
	if e.field != nil {
		e.field.Resize(area)
	}
}

// AddComment spawns a constellation node for a newly arrived comment
func (e *Engine) AddComment(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.field == nil {
		return
	}
	e.field.Add(text, e.timeProvider.Now())
}

// Frame returns the last completed frame's read-only snapshot
func (e *Engine) Frame() FrameRef {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameRef
}

// Progress returns the hook progress ratio of the last frame
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameRef.Progress
}

// frame advances one tick: simulator and beat state first, then the draw
// pipeline, then the end-of-hook bookkeeping
func (e *Engine) frame() {
	e.mu.Lock()

	var fired func()
	if e.doc != nil && e.source != nil && e.simulator != nil {
		pos := e.source.Clock.Pos()
		hookTime := e.doc.HookStart + pos

		intensity := e.beatClock.Intensity(hookTime)
		if a := e.analyserLocked(); a != nil {
			if level := a.Level(); level > intensity {
				intensity = level
			}
		}

		beatCount := e.beatClock.Count(hookTime)
		state := e.simulator.Advance(pos, beatCount)

		e.draw(hookTime, state, intensity)

		progress := 0.0
		if d := e.doc.Duration(); d > 0 {
			progress = core.Clamp01(pos / d)
		}

		// Fire once per loop pass: armed again only after progress falls
		// back below the rearm threshold, so a single loop never
		// double-fires and a genuine restart fires again
		if progress >= constants.HookEndThreshold && !e.endFired {
			e.endFired = true
			fired = e.onEnd
		} else if progress < constants.HookEndRearmThreshold {
			e.endFired = false
		}

		e.frameRef = FrameRef{
			Time:      hookTime,
			BeatCount: beatCount,
			Progress:  progress,
			State:     state,
		}
	}
	e.mu.Unlock()

	if fired != nil {
		fired()
	}
}

func (e *Engine) analyserLocked() *audio.Analyser {
	if e.external != nil {
		return e.external
	}
	if e.source != nil {
		return e.source.Analyser
	}
	return nil
}
