// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"
)

const maxPrecision = 20

// Precision returns the number of decimal places needed to represent x
// exactly, capped at 20.
func Precision(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	e, p := 1.0, 0
	for p < maxPrecision && math.Round(x*e)/e != x {
		e *= 10
		p++
	}
	return p
}

// intervalPrecision returns the rounding precision for stepping by
// interval. Two guard digits absorb accumulated float noise without
// disturbing the interval itself.
func intervalPrecision(interval float64) int {
	return Precision(interval) + 2
}

// RoundTo rounds x to p decimal places. It rounds decimally, through
// the printed representation, so results agree with their labels.
func RoundTo(x float64, p int) float64 {
	if p < 0 {
		p = 0
	} else if p > maxPrecision {
		p = maxPrecision
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', p, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// niceNumber rounds x up to a "nice" value: 1, 2, 3 or 5 times a power
// of ten. With round, x instead rounds to the nearest nice value.
// x must be >= 0.
func niceNumber(x float64, round bool) float64 {
	if x == 0 {
		return 0
	}
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)
	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 2.5:
			nf = 2
		case f < 4:
			nf = 3
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 3:
			nf = 3
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	v := nf * math.Pow(10, exp)
	if exp >= -maxPrecision {
		// Clean mantissa noise from the power-of-ten multiply.
		d := 0
		if exp < 0 {
			d = int(-exp)
		}
		return RoundTo(v, d)
	}
	return v
}
