// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symlog implements a symmetric logarithmic transform.
//
// A plain logarithm is undefined at zero and for negative values, which
// makes it useless for axes whose data spans both signs. The symlog
// transform behaves logarithmically away from zero but collapses the
// band (-c, c) to the single position 0, so every real value has a
// well-defined, sign-symmetric position.
//
// All functions work in ordinary float64 arithmetic. The cutoff c must
// be finite and nonzero; passing c == 0 divides by zero.
package symlog

import "math"

// Log returns the base-base logarithm of x.
//
// x must be > 0. For x <= 0 the result is NaN or -Inf; callers handle
// sign separately.
func Log(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

// NextPow rounds the magnitude of x up to the nearest integer power of
// base, preserving sign. NextPow(10, 37) is 100 and NextPow(10, -37) is
// -100. Zero maps to zero.
func NextPow(base, x float64) float64 {
	if x == 0 {
		return 0
	}
	p := math.Pow(base, math.Ceil(Log(base, math.Abs(x))))
	if x < 0 {
		return -p
	}
	return p
}

// PrevPow rounds the magnitude of x down to the nearest integer power
// of base, preserving sign. PrevPow(10, 37) is 10 and PrevPow(10, -37)
// is -10. Zero maps to zero.
func PrevPow(base, x float64) float64 {
	if x == 0 {
		return 0
	}
	p := math.Pow(base, math.Floor(Log(base, math.Abs(x))))
	if x < 0 {
		return -p
	}
	return p
}

// ValueToScale maps a value to its symlog scale position.
//
// The magnitude is first snapped to the nearest multiple of c, which
// keeps positions stable under sub-c floating-point noise. A magnitude
// that snaps below c collapses to exactly 0 (the dead zone). The result
// is monotonic in v and continuous across zero, but the snapping makes
// the mapping lossy near the c boundary.
func ValueToScale(base, v, c float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	r := 1 / c
	v = math.Round(v*r) / r
	if v < c {
		return 0
	}
	return sign * Log(base, 1+v/math.Pow(base, c))
}

// ScaleToValue maps a symlog scale position back to a value.
//
// The result is truncated toward zero to a multiple of c. Truncation is
// deliberately asymmetric with the rounding snap in ValueToScale, so a
// value→scale→value round trip can lose up to c near the dead-zone
// boundary.
func ScaleToValue(base, y, c float64) float64 {
	if y == 0 {
		// The sign split below would turn a negative zero position
		// into -0; the zero fixpoint stays exact instead.
		return 0
	}
	sign := 1.0
	if y < 0 {
		sign, y = -1, -y
	}
	raw := sign * ((math.Pow(base, y) - 1) * math.Pow(base, c))
	return math.Trunc(raw/c) * c
}
