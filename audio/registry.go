package audio

import (
	"sync"
	"time"
)

// Source is a leased clock+analyser pair. Callers must Release it; the
// backing track closes when the last lease goes.
type Source struct {
	Clock    Clock
	Analyser *Analyser

	ref      string
	registry *Registry
	released bool
}

// Release returns the lease to the registry. Safe to call once.
func (s *Source) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.registry != nil {
		s.registry.release(s.ref)
	}
}

type registryEntry struct {
	refs     int
	clock    Clock
	analyser *Analyser
}

// Registry shares audio sources across engines keyed by the document's
// audio reference. A track can only be wrapped by one stream graph, so
// re-running setup for the same reference must reuse the existing graph
// instead of double-wrapping it.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry

	// Now, when set, times silent fallback clocks; tests inject a mock
	Now func() time.Time
}

// NewRegistry creates an empty audio source registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// Acquire leases the source for an audio reference, building it on first
// use. An empty or unreadable reference degrades to a silent clock looping
// over fallbackLoop; the engine renders from elapsed time alone.
func (r *Registry) Acquire(ref string, fallbackLoop time.Duration) *Source {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ref
	if key == "" {
		// Silent clocks are loop-length specific; key them apart so two
		// documents with different windows never share one
		key = "silent:" + fallbackLoop.String()
	}

	e, ok := r.entries[key]
	if !ok {
		e = &registryEntry{analyser: NewAnalyser()}
		if ref != "" {
			clock, err := OpenTrack(ref, e.analyser)
			if err == nil {
				e.clock = clock
			}
		}
		if e.clock == nil {
			e.clock = NewSilentClock(fallbackLoop, r.Now)
		}
		r.entries[key] = e
	}
	e.refs++

	return &Source{
		Clock:    e.clock,
		Analyser: e.analyser,
		ref:      key,
		registry: r,
	}
}

func (r *Registry) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(r.entries, key)
	e.clock.Close()
}
