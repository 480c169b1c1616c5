package constellation

// rowSpec is one horizontal scroll lane: vertical position as a fraction of
// the surface height, scroll speed in cells per second, direction, opacity
// and target size
type rowSpec struct {
	yFrac   float64
	speed   float64
	dir     float64
	opacity float64
	size    float64
}

// riverRows is the fixed lane table. Alternating directions keep the
// marquee from reading as a single conveyor.
var riverRows = []rowSpec{
	{yFrac: 0.12, speed: 5.5, dir: 1, opacity: 0.55, size: 14},
	{yFrac: 0.30, speed: 3.5, dir: -1, opacity: 0.45, size: 12},
	{yFrac: 0.72, speed: 4.5, dir: 1, opacity: 0.40, size: 12},
	{yFrac: 0.88, speed: 6.5, dir: -1, opacity: 0.50, size: 14},
}
