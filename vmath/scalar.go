package vmath

import "math"

// Lerp moves a toward b by factor t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether f is neither NaN nor infinite
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vec2F is the analog stick / pointer vector
type Vec2F struct {
	X, Y float64
}
