package common

import "math"

// Clamp constrains v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to constrain
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; t=0 returns a, t=1 returns b.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EaseOutCubic applies a cubic ease-out curve to a normalized progress value.
// Fast at the start, decelerating toward the end: eased = 1 - (1-t)^3.
//
// Parameters:
//   - t: progress in [0, 1]
//
// Returns:
//   - float32: eased progress in [0, 1]
func EaseOutCubic(t float32) float32 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

// WrapAngle normalizes an angle in radians to the range (-π, π].
//
// Parameters:
//   - a: angle in radians
//
// Returns:
//   - float32: the equivalent angle in (-π, π]
func WrapAngle(a float32) float32 {
	wrapped := math.Mod(float64(a)+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return float32(wrapped - math.Pi)
}

// Finite reports whether v is a normal, usable value (not NaN or ±Inf).
//
// Parameters:
//   - v: the value to check
//
// Returns:
//   - bool: true if v is finite
func Finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
