package engine

import (
	"sync"
	"time"
)

// Scheduler drives the frame loop: one tick, one frame. Injected so the
// whole pipeline can be stepped synchronously in tests without a screen
// or timer.
type Scheduler interface {
	// Start begins invoking tick; it must not block the caller
	Start(tick func())
	// Stop synchronously halts ticking; no tick runs after it returns
	Stop()
}

// TickerScheduler ticks on a real interval from its own goroutine
type TickerScheduler struct {
	interval time.Duration

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewTickerScheduler creates a scheduler at the given frame interval
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval}
}

// Start launches the tick goroutine; a second Start without Stop is ignored
func (s *TickerScheduler) Start(tick func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopChan != nil {
		return
	}
	stop := make(chan struct{})
	s.stopChan = stop

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}

// Stop halts ticking and waits for the goroutine to exit
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop := s.stopChan
	s.stopChan = nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	s.wg.Wait()
}

// StepScheduler runs frames only when told to, for tests
type StepScheduler struct {
	mu   sync.Mutex
	tick func()
}

// NewStepScheduler creates an idle step scheduler
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

func (s *StepScheduler) Start(tick func()) {
	s.mu.Lock()
	s.tick = tick
	s.mu.Unlock()
}

func (s *StepScheduler) Stop() {
	s.mu.Lock()
	s.tick = nil
	s.mu.Unlock()
}

// Step synchronously runs n frames
func (s *StepScheduler) Step(n int) {
	s.mu.Lock()
	tick := s.tick
	s.mu.Unlock()
	if tick == nil {
		return
	}
	for i := 0; i < n; i++ {
		tick()
	}
}
