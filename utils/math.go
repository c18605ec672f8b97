package utils

import "math"

// Scrub maps NaN and +-Inf to 0, leaving finite values untouched.
// Applied after fractional powers and ratio operations so that isolated
// degenerate directions do not abort a full sweep.
func Scrub(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func Clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// ClampBelow raises x to at least floor. Used to keep fractional-power
// arguments positive.
func ClampBelow(x, floor float64) float64 {
	if x < floor {
		return floor
	}
	return x
}
