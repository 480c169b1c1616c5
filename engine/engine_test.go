package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/hookdance/audio"
	"github.com/lixenwraith/hookdance/hook"
)

// testHarness steps a headless engine with fully controlled time
type testHarness struct {
	eng   *Engine
	clock *MockTimeProvider
	sched *StepScheduler
	fired *int
}

func newHarness(t *testing.T, doc *hook.HookDocument) *testHarness {
	t.Helper()

	clock := NewMockTimeProvider(time.Unix(1000, 0))
	sched := NewStepScheduler()
	reg := audio.NewRegistry()
	reg.Now = clock.Now

	fired := 0
	eng := New(Config{
		Document:     doc,
		Width:        80,
		Height:       24,
		Scheduler:    sched,
		TimeProvider: clock,
		Registry:     reg,
		OnEnd:        func() { fired++ },
	})
	if err := eng.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return &testHarness{eng: eng, clock: clock, sched: sched, fired: &fired}
}

func harnessDoc() *hook.HookDocument {
	return &hook.HookDocument{
		SongName:  "midnight drive",
		HookStart: 10.0,
		HookEnd:   14.0,
		BeatGrid:  hook.BeatGrid{BPM: 120, Beats: []float64{10, 10.5, 11, 11.5, 12, 12.5, 13, 13.5}},
		Lines: []hook.LyricLine{
			{Text: "we run the night", Start: 10, End: 12},
			{Text: "until it breaks", Start: 12, End: 14},
		},
	}
}

func TestProgressComputation(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	h.clock.Advance(2 * time.Second)
	h.sched.Step(1)

	if got := h.eng.Progress(); got < 0.49 || got > 0.51 {
		t.Errorf("progress after 2s of a 4s hook = %f, want ~0.5", got)
	}
	ref := h.eng.Frame()
	if ref.Time < 11.9 || ref.Time > 12.1 {
		t.Errorf("frame time = %f, want ~12.0", ref.Time)
	}
	if ref.BeatCount != 5 {
		t.Errorf("beat count at t=12 = %d, want 5", ref.BeatCount)
	}
	if ref.State == nil {
		t.Error("frame ref should carry the physics state")
	}
}

func TestOnEndFiresOncePerLoop(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	// Hook window [10, 14): at 13.92 progress is 0.98
	h.clock.Advance(3920 * time.Millisecond)
	h.sched.Step(1)
	if *h.fired != 1 {
		t.Fatalf("onEnd fired %d times at progress 0.98, want 1", *h.fired)
	}

	// Stepping again in the end zone must not re-fire
	h.clock.Advance(10 * time.Millisecond)
	h.sched.Step(3)
	if *h.fired != 1 {
		t.Fatalf("onEnd re-fired inside the same pass: %d", *h.fired)
	}

	// Loop wraps: progress drops below the rearm threshold, then a second
	// pass reaches the end zone again
	h.clock.Advance(1 * time.Second) // 4.93s -> wraps to 0.93s, progress ~0.23
	h.sched.Step(1)
	if *h.fired != 1 {
		t.Fatalf("onEnd fired during rearm: %d", *h.fired)
	}
	h.clock.Advance(3 * time.Second) // ~3.93s, progress ~0.98
	h.sched.Step(1)
	if *h.fired != 2 {
		t.Fatalf("onEnd fired %d times across two loops, want exactly 2", *h.fired)
	}
}

func TestOnEndNotRearmedAboveThreshold(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	h.clock.Advance(3920 * time.Millisecond) // t=13.92, progress 0.98: fires
	h.sched.Step(1)
	if *h.fired != 1 {
		t.Fatalf("setup: fired %d", *h.fired)
	}

	// The loop wraps but the next sampled frame lands at t=13.5 (progress
	// 0.875): no frame ever observed progress below the rearm threshold,
	// so the guard must stay armed against re-firing
	h.clock.Advance(3580 * time.Millisecond)
	h.sched.Step(1)
	if *h.fired != 1 {
		t.Fatalf("fired at progress 0.875: %d", *h.fired)
	}

	// Back into the end zone without a rearm: still no fire
	h.clock.Advance(430 * time.Millisecond)
	h.sched.Step(1)
	if *h.fired != 1 {
		t.Errorf("re-fired without rearm: %d", *h.fired)
	}
}

func TestRestartRearmsOnEnd(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	h.clock.Advance(3920 * time.Millisecond)
	h.sched.Step(1)
	if *h.fired != 1 {
		t.Fatalf("setup: fired %d", *h.fired)
	}

	h.eng.Restart()
	h.clock.Advance(3920 * time.Millisecond)
	h.sched.Step(1)
	if *h.fired != 2 {
		t.Errorf("restart should re-arm onEnd, fired %d", *h.fired)
	}
}

func TestStopThenStartKeepsPlaying(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	h.clock.Advance(1 * time.Second)
	h.sched.Step(1)
	h.eng.Stop()

	// Stop released the audio lease; a fresh Start must reacquire it and
	// resume producing frames from the beginning
	h.eng.Start()
	defer h.eng.Stop()
	h.clock.Advance(2 * time.Second)
	h.sched.Step(1)
	if got := h.eng.Progress(); got < 0.49 || got > 0.51 {
		t.Errorf("progress after stop+start and 2s = %f, want ~0.5", got)
	}
	if ref := h.eng.Frame(); ref.State == nil {
		t.Error("frames after stop+start should carry physics state")
	}
}

func TestRestartWhilePausedResumes(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	h.clock.Advance(2 * time.Second)
	h.sched.Step(1)
	h.eng.Pause()

	h.eng.Restart()
	h.clock.Advance(1 * time.Second)
	h.sched.Step(1)
	if got := h.eng.Progress(); got < 0.24 || got > 0.26 {
		t.Errorf("progress after restart from pause = %f, want ~0.25", got)
	}
}

func TestPauseFreezesPlayback(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	h.clock.Advance(1 * time.Second)
	h.sched.Step(1)
	before := h.eng.Progress()

	h.eng.Pause()
	h.clock.Advance(2 * time.Second)
	h.sched.Step(1)
	if got := h.eng.Progress(); got != before {
		t.Errorf("paused progress moved: %f -> %f", before, got)
	}

	h.eng.Resume()
	h.clock.Advance(1 * time.Second)
	h.sched.Step(1)
	if got := h.eng.Progress(); got <= before {
		t.Errorf("resumed progress should advance past %f, got %f", before, got)
	}
}

func TestDrawWithoutDocumentIsNoOp(t *testing.T) {
	eng := New(Config{
		Width:     80,
		Height:    24,
		Scheduler: NewStepScheduler(),
	})
	// No Setup: document and simulator are absent. Frames must be silent
	// no-ops, never panics.
	eng.Start()
	eng.scheduler.(*StepScheduler).Step(5)
	eng.Stop()
}

func TestCommentsAgeWhilePaused(t *testing.T) {
	h := newHarness(t, harnessDoc())
	h.eng.Start()
	defer h.eng.Stop()

	h.eng.AddComment("this part >>>")
	h.eng.Pause()

	// Comment aging runs on wall clock, not playback time
	h.clock.Advance(2 * time.Second)
	h.sched.Step(1)

	nodes := h.eng.field.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	if nodes[0].Phase.String() != "transitioning" {
		t.Errorf("paused comment should keep aging, phase = %v", nodes[0].Phase)
	}
}

func TestResizeOnlyOnChange(t *testing.T) {
	h := newHarness(t, harnessDoc())

	h.eng.Resize(80, 24) // unchanged dimensions
	w, h2 := h.eng.buf.Size()
	if w != 80 || h2 != 24 {
		t.Fatalf("size changed unexpectedly: %dx%d", w, h2)
	}

	h.eng.Resize(100, 30)
	w, h2 = h.eng.buf.Size()
	if w != 100 || h2 != 30 {
		t.Errorf("resize not applied: %dx%d", w, h2)
	}
}
