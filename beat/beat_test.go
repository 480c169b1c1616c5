package beat

import (
	"math"
	"testing"

	"github.com/lixenwraith/hookdance/hook"
)

func TestScheduleClassification(t *testing.T) {
	tests := []struct {
		name  string
		beats int
	}{
		{"one beat", 1},
		{"one bar", 4},
		{"two bars", 8},
		{"ragged", 11},
		{"long", 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beats := make([]float64, tt.beats)
			for i := range beats {
				beats[i] = float64(i) * 0.5
			}
			ticks := Schedule(hook.BeatGrid{BPM: 120, Beats: beats})
			if len(ticks) != tt.beats {
				t.Fatalf("got %d ticks, want %d", len(ticks), tt.beats)
			}

			downbeats := 0
			for i, tick := range ticks {
				if i%4 == 0 {
					if !tick.IsDownbeat || tick.Strength != 1.0 {
						t.Errorf("tick %d: want downbeat strength 1.0, got %+v", i, tick)
					}
					downbeats++
				} else if tick.IsDownbeat || tick.Strength != 0.6 {
					t.Errorf("tick %d: want offbeat strength 0.6, got %+v", i, tick)
				}
			}
			want := (tt.beats + 3) / 4
			if downbeats != want {
				t.Errorf("got %d downbeats, want ceil(%d/4) = %d", downbeats, tt.beats, want)
			}
		})
	}
}

func TestScheduleScenario(t *testing.T) {
	grid := hook.BeatGrid{BPM: 120, Beats: []float64{0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5}}
	ticks := Schedule(grid)

	want := []Tick{
		{0, true, 1.0},
		{0.5, false, 0.6},
		{1.0, false, 0.6},
		{1.5, false, 0.6},
		{2.0, true, 1.0},
		{2.5, false, 0.6},
		{3.0, false, 0.6},
		{3.5, false, 0.6},
	}
	for i, w := range want {
		if ticks[i] != w {
			t.Errorf("tick %d = %+v, want %+v", i, ticks[i], w)
		}
	}
}

func TestScheduleEmptyGrid(t *testing.T) {
	if ticks := Schedule(hook.BeatGrid{}); ticks != nil {
		t.Errorf("empty grid should yield no ticks, got %d", len(ticks))
	}
}

func TestClockCount(t *testing.T) {
	c := NewClock(Schedule(hook.BeatGrid{Beats: []float64{0, 0.5, 1.0, 1.5}}))

	tests := []struct {
		time float64
		want int
	}{
		{-0.1, 0},
		{0, 1},
		{0.49, 1},
		{0.5, 2},
		{1.6, 4},
		{100, 4},
	}
	for _, tt := range tests {
		if got := c.Count(tt.time); got != tt.want {
			t.Errorf("Count(%f) = %d, want %d", tt.time, got, tt.want)
		}
	}
}

func TestClockIntensityDecay(t *testing.T) {
	c := NewClock(Schedule(hook.BeatGrid{Beats: []float64{1.0}}))

	if got := c.Intensity(0.5); got != 0 {
		t.Errorf("intensity before first tick = %f, want 0", got)
	}
	at := c.Intensity(1.0)
	if math.Abs(at-1.0) > 1e-9 {
		t.Errorf("intensity at downbeat = %f, want 1.0", at)
	}
	later := c.Intensity(1.3)
	if later >= at || later <= 0 {
		t.Errorf("intensity should decay toward zero, got %f after %f", later, at)
	}
}

func TestClockAtRestWithoutTicks(t *testing.T) {
	c := NewClock(nil)
	for _, tm := range []float64{0, 1, 10, 100} {
		if c.Intensity(tm) != 0 {
			t.Fatalf("empty clock intensity at %f should stay at rest", tm)
		}
		if c.Count(tm) != 0 {
			t.Fatalf("empty clock count at %f should be 0", tm)
		}
	}
}

func TestLastDownbeat(t *testing.T) {
	c := NewClock(Schedule(hook.BeatGrid{Beats: []float64{0, 0.5, 1.0, 1.5, 2.0}}))

	if _, ok := c.LastDownbeat(-1); ok {
		t.Error("downbeat reported before any tick")
	}
	if got, ok := c.LastDownbeat(1.9); !ok || got != 0 {
		t.Errorf("LastDownbeat(1.9) = %f, %v; want 0, true", got, ok)
	}
	if got, ok := c.LastDownbeat(2.0); !ok || got != 2.0 {
		t.Errorf("LastDownbeat(2.0) = %f, %v; want 2.0, true", got, ok)
	}
}
