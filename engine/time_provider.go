package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock time to the engine. Constellation aging
// runs on this clock, independent of playback time, so ambient comment
// drift keeps real speed even while the hook is paused.
type TimeProvider interface {
	Now() time.Time
}

// monotonicTimeProvider is the production provider
type monotonicTimeProvider struct{}

// NewMonotonicTimeProvider returns the real-time provider
func NewMonotonicTimeProvider() TimeProvider {
	return monotonicTimeProvider{}
}

func (monotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-cranked clock for stepping the engine through
// frames without real timers. Nothing moves until a test cranks it.
type MockTimeProvider struct {
	mu     sync.Mutex
	base   time.Time
	offset time.Duration
}

// NewMockTimeProvider creates a mock clock pinned at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Add(m.offset)
}

// SetTime pins the clock to an absolute instant
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.base = t
	m.offset = 0
	m.mu.Unlock()
}

// Advance cranks the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.offset += d
	m.mu.Unlock()
}
