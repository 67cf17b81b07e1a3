// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// An Extent is an ordered (lo, hi) pair bounding a value or coordinate
// range. The empty extent is (+Inf, -Inf); Union grows it in place, so
// an empty extent unioned with any range becomes that range.
type Extent [2]float64

// EmptyExtent returns the empty extent sentinel.
func EmptyExtent() Extent {
	return Extent{math.Inf(1), math.Inf(-1)}
}

// Set stores the pair, swapping lo and hi if they conflict.
func (e *Extent) Set(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	e[0], e[1] = lo, hi
}

// Union widens e to include [lo, hi], swapping the pair first if it
// conflicts. Unioning with the empty extent is a no-op.
func (e *Extent) Union(lo, hi float64) {
	if math.IsInf(lo, 1) && math.IsInf(hi, -1) {
		return
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < e[0] {
		e[0] = lo
	}
	if hi > e[1] {
		e[1] = hi
	}
}

// Span returns hi - lo.
func (e Extent) Span() float64 {
	return e[1] - e[0]
}

// Empty reports whether e holds no range at all.
func (e Extent) Empty() bool {
	return !(e[0] <= e[1])
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
