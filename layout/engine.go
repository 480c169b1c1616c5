package layout

import (
	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/sim"
	"github.com/lixenwraith/hookdance/vmath"
)

// Strategy selects how a line's words are placed
type Strategy int

const (
	StrategyLinear Strategy = iota
	StrategyOrbital
)

// Placement is one word's resolved position. X/Y address the word's center
// in fractional cells.
type Placement struct {
	Word  string
	X, Y  float64
	Width float64
	Row   int
}

// Result is the full layout of the active line, computed before any drawing
type Result struct {
	Strategy   Strategy
	FontSize   int
	Rows       int
	Placements []Placement
}

// Engine fits, wraps and positions the active line's words, smoothing
// positions frame to frame. One instance per playback engine.
type Engine struct {
	sim *sim.Simulator

	// Smoothing history; keyed by line identity so a line switch resets it
	// instead of sliding from stale positions
	historyKey string
	smoothed   []core.Vec
}

// New creates a layout engine backed by the given simulator, which remains
// the single source of truth for fit validation
func New(s *sim.Simulator) *Engine {
	return &Engine{sim: s}
}

// Layout places the active line's words within the safe area. activeIdx is
// the index of the currently emphasized word.
func (e *Engine) Layout(line *hook.LyricLine, activeIdx int, area core.Area, scene hook.Scene) Result {
	words := line.TimedWords()
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}

	strategy := StrategyLinear
	if scene.System == "orbital" {
		strategy = StrategyOrbital
	}

	var res Result
	switch {
	case len(texts) == 0:
		res = Result{Strategy: strategy, FontSize: scene.Typography.BaseSize}
	case len(texts) == 1:
		// Both strategies degenerate to centering a single token
		res = e.single(texts[0], area, scene, strategy)
	case strategy == StrategyOrbital:
		res = e.orbital(line, texts, activeIdx, area, scene)
	default:
		res = e.linear(texts, area, scene)
	}

	e.smooth(line.Identity(), &res)
	return res
}

// single centers one token; no collision logic runs
func (e *Engine) single(text string, area core.Area, scene hook.Scene, strategy Strategy) Result {
	font := e.fitFont([]string{text}, area, scene)
	c := area.Center()
	return Result{
		Strategy: strategy,
		FontSize: font,
		Rows:     1,
		Placements: []Placement{{
			Word:  text,
			X:     float64(c.X),
			Y:     float64(c.Y),
			Width: WordWidth(text),
		}},
	}
}

// fitFont shrinks the font in integer steps until the line fits the width
// budget or the floor is reached, then lets the simulator validate the box
// against the safe area. The loop is bounded; overflow at the floor is
// accepted.
func (e *Engine) fitFont(texts []string, area core.Area, scene hook.Scene) int {
	font := scene.Typography.BaseSize
	if font > constants.FontCeiling {
		font = constants.FontCeiling
	}
	if font < constants.FontFloor {
		font = constants.FontFloor
	}

	budget := constants.LineWidthBudget * float64(area.Width)
	for font > constants.FontFloor && lineWidth(texts, font) > budget {
		font--
	}

	return e.sim.ValidateLayout(sim.LayoutRequest{
		TextWidth:  lineWidth(texts, font),
		TextHeight: float64(RowAdvance(font)),
		SafeWidth:  float64(area.Width),
		SafeHeight: float64(area.Height),
		FontSize:   font,
		LineHeight: float64(RowAdvance(font)),
	})
}

// linear lays words left to right, wrapping into stacked rows when the
// width budget cannot hold the whole line even at the floor size
func (e *Engine) linear(texts []string, area core.Area, scene hook.Scene) Result {
	font := e.fitFont(texts, area, scene)
	budget := constants.LineWidthBudget * float64(area.Width)
	gap := Gap(font)

	// Greedy wrap: a row takes words while it stays under budget
	type row struct {
		words []string
		width float64
	}
	rows := []row{{}}
	for _, w := range texts {
		cur := &rows[len(rows)-1]
		width := WordWidth(w)
		next := cur.width + width
		if len(cur.words) > 0 {
			next += gap
		}
		if len(cur.words) > 0 && next > budget {
			rows = append(rows, row{words: []string{w}, width: width})
			continue
		}
		cur.words = append(cur.words, w)
		cur.width = next
	}

	adv := RowAdvance(font)
	c := area.Center()
	blockTop := float64(c.Y) - float64(adv*(len(rows)-1))/2

	res := Result{
		Strategy:   StrategyLinear,
		FontSize:   font,
		Rows:       len(rows),
		Placements: make([]Placement, 0, len(texts)),
	}
	for ri, r := range rows {
		x := float64(c.X) - r.width/2
		y := blockTop + float64(ri*adv)
		for _, w := range r.words {
			width := WordWidth(w)
			res.Placements = append(res.Placements, Placement{
				Word:  w,
				X:     x + width/2,
				Y:     y,
				Width: width,
				Row:   ri,
			})
			x += width + gap
		}
	}
	return res
}

// smooth applies frame-to-frame exponential interpolation keyed by line
// identity; switching lines resets the history to the fresh targets
func (e *Engine) smooth(identity string, res *Result) {
	if identity != e.historyKey || len(e.smoothed) != len(res.Placements) {
		e.historyKey = identity
		e.smoothed = make([]core.Vec, len(res.Placements))
		for i, p := range res.Placements {
			e.smoothed[i] = core.Vec{X: p.X, Y: p.Y}
		}
		return
	}
	for i := range res.Placements {
		p := &res.Placements[i]
		prev := e.smoothed[i]
		p.X = vmath.Smooth(prev.X, p.X, constants.PlacementSmoothing)
		p.Y = vmath.Smooth(prev.Y, p.Y, constants.PlacementSmoothing)
		e.smoothed[i] = core.Vec{X: p.X, Y: p.Y}
	}
}
