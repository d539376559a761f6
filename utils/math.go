// Package utils contains small math helpers shared across the drive packages.
package utils

import "math"

// WrapAngle normalizes an angle in radians to [-pi, pi).
func WrapAngle(rad float64) float64 {
	wrapped := math.Mod(rad+math.Pi, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}

// AngleDiff returns the shortest signed angular distance from one angle to
// another, in radians. The result is always in [-pi, pi).
func AngleDiff(from, to float64) float64 {
	return WrapAngle(to - from)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
