package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hookdance/core"
)

// Cell is one composited surface cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

// Buffer is a compositor backed by a cell array with dirty tracking.
// All drawing for a frame lands here; Flush pushes only the cells that
// changed since the previous flush.
type Buffer struct {
	cells   []Cell
	flushed []Cell
	width   int
	height  int
	bg      core.RGB

	// redraw forces the next Flush to repaint every cell; set on resize,
	// when the flushed shadow no longer matches the screen
	redraw bool
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.flushed = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
		b.flushed = b.flushed[:size]
	}
	b.width = width
	b.height = height
	b.redraw = true
	b.Clear(b.bg)
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Area returns the buffer as a drawable area
func (b *Buffer) Area() core.Area {
	return core.Area{Width: b.width, Height: b.height}
}

// Clear resets every cell to the background color
func (b *Buffer) Clear(bg core.RGB) {
	b.bg = bg
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: bg, Bg: bg}
	// Exponential copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set composites a glyph with alpha blending against the current cell
func (b *Buffer) Set(x, y int, r rune, fg core.RGB, alpha float64, bold bool) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = dst.Bg.Blend(fg, core.Clamp01(alpha))
	dst.Bold = bold
}

// Tint adds light to a cell's background without writing a glyph
func (b *Buffer) Tint(x, y int, c core.RGB, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.Blend(c, core.Clamp01(alpha))
	if dst.Rune == 0 {
		dst.Fg = dst.Bg
	}
}

// Get returns the cell at (x, y); out of bounds returns a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush writes the cells that changed since the last flush to a tcell
// screen and shows it. A nil screen is a no-op so headless engines can run
// the full pipeline.
func (b *Buffer) Flush(screen tcell.Screen) {
	if screen == nil {
		return
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			if !b.redraw && c == b.flushed[idx] {
				continue
			}
			b.flushed[idx] = c
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B))).
				Bold(c.Bold)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, st)
		}
	}
	b.redraw = false
	screen.Show()
}
