package audio

import (
	"sync"
	"time"
)

// silentClock is the fallback timing source for documents without a usable
// audio track: a pausable monotonic clock wrapped around a loop duration.
// The engine behaves identically; there is simply nothing to hear.
type silentClock struct {
	mu sync.Mutex

	now func() time.Time

	loop time.Duration

	start       time.Time
	pausedAt    time.Time
	totalPaused time.Duration
	paused      bool
}

// NewSilentClock creates a looping procedural clock. nowFn may be nil for
// wall-clock time; tests inject their own.
func NewSilentClock(loop time.Duration, nowFn func() time.Time) Clock {
	if nowFn == nil {
		nowFn = time.Now
	}
	if loop <= 0 {
		loop = time.Second
	}
	return &silentClock{
		now:   nowFn,
		loop:  loop,
		start: nowFn(),
	}
}

func (c *silentClock) Pos() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var elapsed time.Duration
	if c.paused {
		elapsed = c.pausedAt.Sub(c.start) - c.totalPaused
	} else {
		elapsed = c.now().Sub(c.start) - c.totalPaused
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return (elapsed % c.loop).Seconds()
}

func (c *silentClock) Seek(sec float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = c.now().Add(-time.Duration(sec * float64(time.Second)))
	c.totalPaused = 0
	if c.paused {
		c.pausedAt = c.now()
	}
}

func (c *silentClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		c.paused = true
		c.pausedAt = c.now()
	}
}

func (c *silentClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.paused = false
		c.totalPaused += c.now().Sub(c.pausedAt)
	}
}

func (c *silentClock) SetMuted(bool) {}

func (c *silentClock) Close() error { return nil }
