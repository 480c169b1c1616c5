package vmath

import "math"

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smooth moves prev toward target by the given factor per frame.
// This is the frame-to-frame exponential smoothing used for word placement:
// next = prev + (target - prev) * factor
func Smooth(prev, target, factor float64) float64 {
	return prev + (target-prev)*factor
}

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// WrapAngle normalizes an angle to [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// WrapMod is a positive modulo for toroidal coordinate wrapping; the result
// is always in [0, m) for m > 0
func WrapMod(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	return v
}

// OnRing returns the point at the given angle and radius around a center
func OnRing(cx, cy, radius, angle float64) (x, y float64) {
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}
