package core

// Point is an integer cell coordinate on the render surface
type Point struct {
	X, Y int
}

// Vec is a sub-cell position or velocity
type Vec struct {
	X, Y float64
}

// Area is a rectangular region of the render surface
type Area struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Center returns the area's center cell
func (a Area) Center() Point {
	return Point{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Shorter returns the smaller of width and height
func (a Area) Shorter() int {
	if a.Width < a.Height {
		return a.Width
	}
	return a.Height
}

// Inset shrinks the area by n cells on every side, clamping at zero size
func (a Area) Inset(n int) Area {
	w := a.Width - 2*n
	h := a.Height - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Area{X: a.X + n, Y: a.Y + n, Width: w, Height: h}
}
