package core

import "math"

// Clamp01 clamps t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutCubic decelerates toward the end of the ramp
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseInCubic accelerates from rest
func EaseInCubic(t float64) float64 {
	t = Clamp01(t)
	return t * t * t
}

// EaseInOutCubic is symmetric acceleration/deceleration
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	inv := -2*t + 2
	return 1 - inv*inv*inv/2
}

// EaseOutBack overshoots past 1 before settling, used for slam entrances
func EaseOutBack(t float64) float64 {
	t = Clamp01(t)
	const c1 = 1.70158
	const c3 = c1 + 1
	inv := t - 1
	return 1 + c3*inv*inv*inv + c1*inv*inv
}

// Pulse returns a [0,1] sine pulse at the given frequency (Hz) over elapsed seconds
func Pulse(elapsed, freq float64) float64 {
	return 0.5 + 0.5*math.Sin(2*math.Pi*freq*elapsed)
}
