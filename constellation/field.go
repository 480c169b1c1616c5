package constellation

import (
	"math"
	"time"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hookdance/constants"
	"github.com/lixenwraith/hookdance/core"
	"github.com/lixenwraith/hookdance/vmath"
)

// DrawState is one node's renderable snapshot for the current frame
type DrawState struct {
	Text    string
	X, Y    float64
	Opacity float64
	Size    float64
	Phase   Phase
	Visible bool
}

// Field owns every live comment node and ages them on wall-clock time,
// independent of playback time: ambient drift keeps moving while the hook
// is paused, and stops only at teardown.
type Field struct {
	nodes []*Node
	rng   *vmath.FastRand
	area  core.Area

	nextID  uint64
	nextRow int

	fracture bool

	lastAdvance time.Time
}

// NewField creates an empty comment field over the given surface area
func NewField(area core.Area, rng *vmath.FastRand) *Field {
	return &Field{area: area, rng: rng}
}

// Resize updates the surface bounds; rows and drift wrap into the new edges
func (f *Field) Resize(area core.Area) {
	f.area = area
}

// SetFracture toggles the climax rendering state: river rows vanish and
// ambient drift dims so the final lyric line owns the stage
func (f *Field) SetFracture(on bool) {
	f.fracture = on
}

// Add spawns a node for a newly arrived comment, centered and large.
// Rows are assigned round-robin so consecutive comments spread across lanes.
func (f *Field) Add(text string, now time.Time) *Node {
	c := f.area.Center()
	f.nextID++
	n := &Node{
		ID:          f.nextID,
		Text:        text,
		SpawnTime:   now,
		SeedPos:     core.Vec{X: float64(c.X), Y: float64(c.Y)},
		Pos:         core.Vec{X: float64(c.X), Y: float64(c.Y)},
		DriftSpeed:  f.rng.Range(constants.ConstellationDriftMin, constants.ConstellationDriftMax),
		DriftAngle:  f.rng.Range(0, 6.28318),
		Phase:       PhaseCenter,
		PhaseStart:  now,
		Row:         f.nextRow,
		Size:        constants.CenterFontSize,
		BaseOpacity: 1.0,
	}
	f.nextRow = (f.nextRow + 1) % len(riverRows)
	f.nodes = append(f.nodes, n)
	return n
}

// Nodes exposes the live nodes, oldest first
func (f *Field) Nodes() []*Node {
	return f.nodes
}

// Advance ages every node to the given wall-clock time and mutates phases
// in place. Call once per frame before Draw.
func (f *Field) Advance(now time.Time) {
	dt := 0.0
	if !f.lastAdvance.IsZero() {
		dt = now.Sub(f.lastAdvance).Seconds()
	}
	f.lastAdvance = now

	for _, n := range f.nodes {
		age := now.Sub(n.SpawnTime)

		// Sequential checks rather than a switch: a node whose frames
		// stalled still cascades through every boundary it has passed.
		// Phase starts anchor to the nominal boundary, not the frame that
		// noticed it, so river scroll and easing stay time-exact.
		if n.Phase == PhaseCenter && age >= constants.CenterPhaseDuration {
			n.advancePhase(PhaseTransitioning, n.SpawnTime.Add(constants.CenterPhaseDuration))
		}
		if n.Phase == PhaseTransitioning {
			f.advanceTransition(n, now)
			if age >= constants.CenterPhaseDuration+constants.TransitionPhaseDuration {
				n.advancePhase(PhaseRiver, n.SpawnTime.Add(constants.CenterPhaseDuration+constants.TransitionPhaseDuration))
			}
		}
		if n.Phase == PhaseRiver {
			if now.Sub(n.PhaseStart) >= constants.RiverPhaseDuration && f.rng.Chance(0.01) {
				// Some comments retire into ambient drift, the rest keep
				// scrolling indefinitely
				n.advancePhase(PhaseConstellation, now)
				n.SeedPos = n.Pos
			}
		}
		if n.Phase == PhaseConstellation {
			f.advanceDrift(n, dt)
		}
	}
}

// advanceTransition eases position, size and opacity from the centered
// spawn toward the node's assigned row
func (f *Field) advanceTransition(n *Node, now time.Time) {
	row := riverRows[n.Row]
	t := core.EaseInOutCubic(now.Sub(n.PhaseStart).Seconds() / constants.TransitionPhaseDuration.Seconds())

	// X holds at the spawn column; the row scroll takes over once it lands
	targetY := row.yFrac * float64(f.area.Height)
	n.Pos.Y = vmath.Lerp(n.SeedPos.Y, targetY, t)
	n.Size = vmath.Lerp(constants.CenterFontSize, row.size, t)
	n.BaseOpacity = vmath.Lerp(1.0, row.opacity, t)
}

// advanceDrift moves an ambient node with toroidal wraparound: exiting one
// edge re-enters the opposite edge. Horizontal speed doubles to compensate
// for cell aspect.
func (f *Field) advanceDrift(n *Node, dt float64) {
	dx := n.DriftSpeed * dt * 2 * math.Cos(n.DriftAngle)
	dy := n.DriftSpeed * dt * math.Sin(n.DriftAngle)
	n.Pos.X = vmath.WrapMod(n.Pos.X+dx, float64(f.area.Width))
	n.Pos.Y = vmath.WrapMod(n.Pos.Y+dy, float64(f.area.Height))
}

// RiverTileWidth computes the seamless marquee tile for one row: the larger
// of the row's content width (word widths plus gaps) and the surface width
// plus margin, so sparse rows still wrap without visible seams
func (f *Field) RiverTileWidth(row int) float64 {
	content := 0.0
	for _, n := range f.nodes {
		if n.Phase == PhaseRiver && n.Row == row {
			content += float64(runewidth.StringWidth(n.Text)) + constants.RiverWordGap
		}
	}
	minTile := float64(f.area.Width) + constants.RiverRowMargin
	if content > minTile {
		return content
	}
	return minTile
}

// RiverX returns a river node's draw X at the given time and whether that
// instance is on screen. The scroll cycles over the row's tile width, which
// spaces the marquee and hides the seam; the draw coordinate itself always
// lands inside the visible band [-margin, width+margin]. When the row's
// content outgrows the band, the node spends the excess part of each cycle
// off screen instead of being drawn outside it.
func (f *Field) RiverX(n *Node, now time.Time) (float64, bool) {
	row := riverRows[n.Row]
	tile := f.RiverTileWidth(n.Row)
	band := float64(f.area.Width) + 2*constants.RiverRowMargin
	scrolled := now.Sub(n.riverStart).Seconds() * row.speed * row.dir
	off := vmath.WrapMod(n.Pos.X+scrolled+constants.RiverRowMargin, tile)
	x := vmath.WrapMod(off, band) - constants.RiverRowMargin
	return x, off < band
}

// Draw resolves every node into its renderable state for this frame
func (f *Field) Draw(now time.Time) []DrawState {
	out := make([]DrawState, 0, len(f.nodes))
	for _, n := range f.nodes {
		ds := DrawState{
			Text:    n.Text,
			X:       n.Pos.X,
			Y:       n.Pos.Y,
			Opacity: n.BaseOpacity,
			Size:    n.Size,
			Phase:   n.Phase,
			Visible: true,
		}
		switch n.Phase {
		case PhaseCenter:
			// Large, centered, fixed opacity
			ds.Opacity = 1.0
		case PhaseTransitioning:
			// Position already eased by Advance
		case PhaseRiver:
			row := riverRows[n.Row]
			x, onScreen := f.RiverX(n, now)
			ds.X = x
			ds.Y = row.yFrac * float64(f.area.Height)
			ds.Opacity = row.opacity
			ds.Size = row.size
			if !onScreen || f.fracture {
				ds.Visible = false
			}
		case PhaseConstellation:
			ds.Opacity = constants.ConstellationOpacity
			if f.fracture {
				ds.Opacity *= constants.FractureOpacityScale
			}
		}
		out = append(out, ds)
	}
	return out
}
