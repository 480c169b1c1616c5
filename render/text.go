package render

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hookdance/core"
)

// DrawTextCentered draws text with its center at the fractional cell
// coordinate (cx, cy)
func (b *Buffer) DrawTextCentered(cx, cy float64, text string, fg core.RGB, alpha float64, bold bool) {
	width := runewidth.StringWidth(text)
	x := int(cx - float64(width)/2 + 0.5)
	y := int(cy + 0.5)
	b.DrawText(x, y, text, fg, alpha, bold)
}

// DrawText draws text left-anchored at cell (x, y), advancing by display
// width so wide runes stay aligned
func (b *Buffer) DrawText(x, y int, text string, fg core.RGB, alpha float64, bold bool) {
	for _, r := range text {
		b.Set(x, y, r, fg, alpha, bold)
		x += runewidth.RuneWidth(r)
	}
}
