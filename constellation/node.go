package constellation

import (
	"time"

	"github.com/lixenwraith/hookdance/core"
)

// Phase is a comment's lifecycle stage. The progression is one-way; a node
// never regresses to an earlier phase.
type Phase int

const (
	PhaseCenter Phase = iota
	PhaseTransitioning
	PhaseRiver
	PhaseConstellation
)

func (p Phase) String() string {
	switch p {
	case PhaseCenter:
		return "center"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseRiver:
		return "river"
	case PhaseConstellation:
		return "constellation"
	default:
		return "unknown"
	}
}

// Node is the transient visual state of one live comment. Phase transitions
// mutate it in place; it is discarded with its field, never persisted.
type Node struct {
	ID   uint64
	Text string

	SpawnTime time.Time

	SeedPos core.Vec
	Pos     core.Vec

	DriftSpeed float64
	DriftAngle float64

	Phase      Phase
	PhaseStart time.Time

	Row         int
	Size        float64
	BaseOpacity float64

	// riverStart anchors the row scroll so a node joins the marquee where
	// the transition eased it to
	riverStart time.Time
}

// advancePhase moves the node forward; the one-way invariant lives here
func (n *Node) advancePhase(p Phase, now time.Time) {
	if p <= n.Phase {
		return
	}
	n.Phase = p
	n.PhaseStart = now
	if p == PhaseRiver {
		n.riverStart = now
	}
}
