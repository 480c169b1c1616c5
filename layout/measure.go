package layout

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hookdance/constants"
)

// cellsPerPoint maps the abstract font size onto cell-space spacing.
// A base-size font yields gaps of a few cells; the floor size collapses
// gaps to about one cell.
const cellsPerPoint = 0.125

// WordWidth returns the display width of a word in cells, wide-rune aware
func WordWidth(text string) float64 {
	return float64(runewidth.StringWidth(text))
}

// Gap returns the inter-word spacing in cells at the given font size
// (a fixed ratio of the font size, mapped into cell space)
func Gap(fontSize int) float64 {
	g := constants.WordSpacingRatio * float64(fontSize) * cellsPerPoint * 4
	if g < 1 {
		g = 1
	}
	return g
}

// RowAdvance returns the vertical distance between stacked rows in cells
func RowAdvance(fontSize int) int {
	adv := int(float64(fontSize)*cellsPerPoint) + 1
	if adv < 2 {
		adv = 2
	}
	return adv
}

// lineWidth measures a full line: word widths plus gaps
func lineWidth(words []string, fontSize int) float64 {
	if len(words) == 0 {
		return 0
	}
	total := Gap(fontSize) * float64(len(words)-1)
	for _, w := range words {
		total += WordWidth(w)
	}
	return total
}
