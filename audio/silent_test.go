package audio

import (
	"math"
	"sync"
	"testing"
	"time"
)

// fakeNow is a hand-cranked wall clock
type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeNow() *fakeNow { return &fakeNow{t: time.Unix(100, 0)} }

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func TestSilentClockLoops(t *testing.T) {
	now := newFakeNow()
	c := NewSilentClock(4*time.Second, now.Now)

	now.Advance(1 * time.Second)
	if got := c.Pos(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Pos() = %f, want 1.0", got)
	}

	now.Advance(4 * time.Second)
	if got := c.Pos(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Pos() after a full loop = %f, want 1.0", got)
	}
}

func TestSilentClockPauseResume(t *testing.T) {
	now := newFakeNow()
	c := NewSilentClock(10*time.Second, now.Now)

	now.Advance(2 * time.Second)
	c.Pause()
	now.Advance(5 * time.Second)
	if got := c.Pos(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("paused Pos() = %f, want frozen at 2.0", got)
	}

	c.Resume()
	now.Advance(1 * time.Second)
	if got := c.Pos(); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("resumed Pos() = %f, want 3.0", got)
	}
}

func TestSilentClockSeek(t *testing.T) {
	now := newFakeNow()
	c := NewSilentClock(10*time.Second, now.Now)

	now.Advance(7 * time.Second)
	c.Seek(0)
	if got := c.Pos(); got != 0 {
		t.Errorf("Pos() after Seek(0) = %f, want 0", got)
	}

	c.Seek(2.5)
	if got := c.Pos(); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Pos() after Seek(2.5) = %f, want 2.5", got)
	}
}

func TestRegistrySharesAndReleases(t *testing.T) {
	r := NewRegistry()

	a := r.Acquire("", 4*time.Second)
	b := r.Acquire("", 4*time.Second)
	if a.Clock != b.Clock {
		t.Error("same reference should share one clock")
	}

	a.Release()
	a.Release() // double release is a no-op
	if len(r.entries) != 1 {
		t.Fatalf("entry dropped while leased: %d", len(r.entries))
	}
	b.Release()
	if len(r.entries) != 0 {
		t.Errorf("entry should close with its last lease, %d left", len(r.entries))
	}
}

func TestRegistryKeysSilentClocksByLoop(t *testing.T) {
	r := NewRegistry()

	a := r.Acquire("", 4*time.Second)
	b := r.Acquire("", 8*time.Second)
	if a.Clock == b.Clock {
		t.Error("different loop lengths must not share a silent clock")
	}
	a.Release()
	b.Release()
}

func TestRegistryMissingFileFallsBack(t *testing.T) {
	r := NewRegistry()
	s := r.Acquire("/nonexistent/track.wav", 4*time.Second)
	defer s.Release()
	if s.Clock == nil {
		t.Fatal("unreadable reference must degrade to a silent clock")
	}
	if s.Analyser == nil {
		t.Fatal("analyser should exist even for silent sources")
	}
	if s.Analyser.Level() != 0 {
		t.Errorf("silent level = %f, want 0", s.Analyser.Level())
	}
}

func TestAnalyserLevel(t *testing.T) {
	a := NewAnalyser()
	a.source = constStreamer(0.5)

	buf := make([][2]float64, 512)
	for i := 0; i < 50; i++ {
		a.Stream(buf)
	}
	level := a.Level()
	if level <= 0.4 || level > 0.6 {
		t.Errorf("RMS of a constant 0.5 signal = %f, want ~0.5", level)
	}
}

// constStreamer emits a constant sample value forever
type constStreamer float64

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = float64(c)
		samples[i][1] = float64(c)
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }
