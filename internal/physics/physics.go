// Package physics implements the stateless primitive calculators that turn
// raw physical quantities into normalized [0,1] scores with qualitative
// labels. Primitives carry no species knowledge and no state; every function
// here is pure and safe for unbounded concurrent use.
//
// Input hygiene is uniform across the package: negative speeds, heights and
// totals clamp to zero, percentages clamp to [0,100], and directions wrap
// into [0,360). Primitives never return errors; missing upstream data is the
// caller's concern (the species layer substitutes neutral defaults before
// invoking a primitive, or skips it entirely).
package physics

import "math"

// clamp01 bounds v to the canonical primitive score range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampMin bounds v to at least min.
func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

// clampRange bounds v to [lo, hi].
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeDeg wraps an angle into [0,360).
func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngularDiff returns the smallest angle in degrees between two bearings,
// handling 0-360 wraparound. The result is always in [0,180].
func AngularDiff(a, b float64) float64 {
	diff := math.Abs(normalizeDeg(a) - normalizeDeg(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
