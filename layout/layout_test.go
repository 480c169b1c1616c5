package layout

import (
	"math"
	"testing"

	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/sim"
	"github.com/lixenwraith/hookdance/vmath"
)

func testEngine() *Engine {
	doc := &hook.HookDocument{
		SongName:  "midnight drive",
		HookStart: 10,
		HookEnd:   14,
	}
	return New(sim.New(doc, core.Area{Width: 120, Height: 40}))
}

func orbitalScene() hook.Scene {
	doc := &hook.HookDocument{Physics: hook.PhysicsSpec{System: "orbital"}}
	return doc.BuildScene()
}

func linearScene() hook.Scene {
	return (&hook.HookDocument{}).BuildScene()
}

func TestSingleTokenCenters(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 120, Height: 40}
	line := &hook.LyricLine{Text: "gold", Start: 0, End: 2}

	for _, scene := range []hook.Scene{linearScene(), orbitalScene()} {
		res := e.Layout(line, 0, area, scene)
		if len(res.Placements) != 1 {
			t.Fatalf("got %d placements, want 1", len(res.Placements))
		}
		p := res.Placements[0]
		c := area.Center()
		if p.X != float64(c.X) || p.Y != float64(c.Y) {
			t.Errorf("single token not centered: (%f, %f), want (%d, %d)", p.X, p.Y, c.X, c.Y)
		}
	}
}

func TestLinearFitsWidthBudget(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 120, Height: 40}
	line := &hook.LyricLine{Text: "we run the night together", Start: 0, End: 2}

	res := e.Layout(line, 0, area, linearScene())
	budget := constants.LineWidthBudget * float64(area.Width)

	var minX, maxX float64 = math.Inf(1), math.Inf(-1)
	for _, p := range res.Placements {
		if p.X-p.Width/2 < minX {
			minX = p.X - p.Width/2
		}
		if p.X+p.Width/2 > maxX {
			maxX = p.X + p.Width/2
		}
	}
	if maxX-minX > budget {
		t.Errorf("line spans %f cells, budget %f", maxX-minX, budget)
	}
}

func TestLinearWrapsOnNarrowSurface(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 24, Height: 40}
	line := &hook.LyricLine{Text: "every single word stacked tall", Start: 0, End: 2}

	res := e.Layout(line, 0, area, linearScene())
	if res.Rows < 2 {
		t.Errorf("narrow surface should stack rows, got %d", res.Rows)
	}
	if res.FontSize < constants.FontFloor {
		t.Errorf("font %d fell below floor", res.FontSize)
	}
}

func TestOrbitalCollisionLaw(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 120, Height: 40}
	line := &hook.LyricLine{Text: "we run the whole night long together forever", Start: 0, End: 4}

	res := e.Layout(line, 2, area, orbitalScene())

	const eps = 1e-6
	for i := 0; i < len(res.Placements); i++ {
		for j := i + 1; j < len(res.Placements); j++ {
			a, b := res.Placements[i], res.Placements[j]
			required := a.Width/2 + b.Width/2 + constants.OrbitWordPadding
			dist := vmath.Distance(a.X, a.Y, b.X, b.Y)
			if dist < required-eps {
				t.Errorf("words %q and %q too close: %f < %f", a.Word, b.Word, dist, required)
			}
		}
	}
}

func TestOrbitalActiveWordAtCenter(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 120, Height: 40}
	line := &hook.LyricLine{Text: "we run the night", Start: 0, End: 4}

	const active = 2
	res := e.Layout(line, active, area, orbitalScene())
	c := area.Center()
	p := res.Placements[active]
	if math.Abs(p.X-float64(c.X)) > 1e-6 || math.Abs(p.Y-float64(c.Y)) > 1e-6 {
		t.Errorf("active word at (%f, %f), want surface center (%d, %d)", p.X, p.Y, c.X, c.Y)
	}
}

func TestSmoothingConvergesAndResets(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 120, Height: 40}
	lineA := &hook.LyricLine{Text: "we run the night", Start: 0, End: 2}
	lineB := &hook.LyricLine{Text: "we run the night", Start: 2, End: 4}

	// First layout seeds history at the targets
	first := e.Layout(lineA, 0, area, orbitalScene())

	// Moving the active word shifts targets; one frame moves only the
	// smoothing fraction of the way there
	second := e.Layout(lineA, 2, area, orbitalScene())
	moved := false
	for i := range second.Placements {
		if second.Placements[i].X != first.Placements[i].X {
			moved = true
		}
	}
	if !moved {
		t.Fatal("active word change should move placements")
	}

	// A different line identity resets history: the very first frame lands
	// exactly on its targets (the active word is dead center, not sliding)
	reset := e.Layout(lineB, 1, area, orbitalScene())
	c := area.Center()
	p := reset.Placements[1]
	if math.Abs(p.X-float64(c.X)) > 1e-6 || math.Abs(p.Y-float64(c.Y)) > 1e-6 {
		t.Errorf("line switch should reset smoothing; active word at (%f, %f)", p.X, p.Y)
	}
}

func TestSmoothingFactor(t *testing.T) {
	e := testEngine()
	area := core.Area{Width: 120, Height: 40}
	line := &hook.LyricLine{Text: "alpha beta", Start: 0, End: 2}
	scene := linearScene()

	first := e.Layout(line, 0, area, scene)

	// Same line on a resized area: targets shift, positions chase them by
	// exactly the smoothing factor. A fresh engine on the wide area gives
	// the raw targets to compare against.
	wide := core.Area{Width: 160, Height: 40}
	second := e.Layout(line, 0, wide, scene)
	raw := testEngine().Layout(line, 0, wide, scene)

	for i := range second.Placements {
		prev := first.Placements[i].X
		target := raw.Placements[i].X
		want := vmath.Smooth(prev, target, constants.PlacementSmoothing)
		if got := second.Placements[i].X; math.Abs(got-want) > 1e-9 {
			t.Errorf("placement %d = %f, want %f (prev %f toward %f)", i, got, want, prev, target)
		}
	}
}

func TestGapScalesWithFont(t *testing.T) {
	if Gap(constants.FontFloor) >= Gap(constants.FontCeiling) {
		t.Error("gap should grow with font size")
	}
	if Gap(constants.FontFloor) < 1 {
		t.Error("gap floor should stay at least one cell")
	}
}
