package layout

import (
	"hash/fnv"
	"math"

	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/hook"
	"github.com/lixenwraith/hookdance/vmath"
)

// ringAspect stretches the ring horizontally; cells are roughly twice as
// tall as they are wide
const ringAspect = 2.0

// orbital distributes words around a ring, resolves overlap between placed
// words, then recenters the ring so the active word sits at the surface
// center while its neighbors orbit past
func (e *Engine) orbital(line *hook.LyricLine, texts []string, activeIdx int, area core.Area, scene hook.Scene) Result {
	font := e.fitFont(texts, area, scene)
	radius := ringRadius(line.Identity(), area)

	// Angular slots proportional to word width plus fixed padding, so wider
	// words consume more arc
	widths := make([]float64, len(texts))
	total := 0.0
	for i, w := range texts {
		widths[i] = WordWidth(w) + constants.OrbitWordPadding
		total += widths[i]
	}

	c := area.Center()
	cx, cy := float64(c.X), float64(c.Y)

	res := Result{
		Strategy:   StrategyOrbital,
		FontSize:   font,
		Rows:       1,
		Placements: make([]Placement, len(texts)),
	}

	arc := 0.0
	for i, w := range texts {
		// Center of this word's slot
		angle := 2 * math.Pi * (arc + widths[i]/2) / total
		arc += widths[i]

		x := cx + radius*ringAspect*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		res.Placements[i] = Placement{
			Word:  w,
			X:     x,
			Y:     y,
			Width: WordWidth(w),
		}
	}

	resolveCollisions(res.Placements)

	// Translate the whole ring so the active word lands exactly at center;
	// translation preserves the resolved separations
	if activeIdx >= 0 && activeIdx < len(res.Placements) {
		dx := cx - res.Placements[activeIdx].X
		dy := cy - res.Placements[activeIdx].Y
		for i := range res.Placements {
			res.Placements[i].X += dx
			res.Placements[i].Y += dy
		}
	}

	return res
}

// ringRadius derives a stable radius in the 20-28% band of the shorter
// surface dimension, keyed by the line identity so every line keeps its
// radius for its whole visible life
func ringRadius(identity string, area core.Area) float64 {
	h := fnv.New32a()
	h.Write([]byte(identity))
	t := float64(h.Sum32()%1000) / 1000.0
	frac := constants.OrbitRadiusMin + t*(constants.OrbitRadiusMax-constants.OrbitRadiusMin)
	return frac * float64(area.Shorter())
}

// resolveCollisions pushes overlapping word pairs apart by half the deficit
// each, sweeping until clean or the pass bound is hit. The law afterwards:
// distance between any two centers >= halfA + halfB + padding (up to the
// bound's tolerance).
func resolveCollisions(placements []Placement) {
	const maxSweeps = constants.OrbitCollisionPasses * 8
	for sweep := 0; sweep < maxSweeps; sweep++ {
		clean := true
		for i := 0; i < len(placements); i++ {
			for j := i + 1; j < len(placements); j++ {
				a, b := &placements[i], &placements[j]
				required := a.Width/2 + b.Width/2 + constants.OrbitWordPadding
				dist := vmath.Distance(a.X, a.Y, b.X, b.Y)

				if dist >= required {
					continue
				}
				clean = false

				var ux, uy float64
				if dist > 1e-9 {
					ux = (b.X - a.X) / dist
					uy = (b.Y - a.Y) / dist
				} else {
					// Coincident centers: separate along a deterministic
					// axis derived from the pair's indices
					angle := float64(i*7+j) * 0.7
					ux, uy = math.Cos(angle), math.Sin(angle)
				}

				push := (required - dist) / 2
				a.X -= ux * push
				a.Y -= uy * push
				b.X += ux * push
				b.Y += uy * push
			}
		}
		if clean {
			return
		}
	}
}
