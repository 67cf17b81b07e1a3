// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// An OutputScale maps normalized [0, 1] positions from a Scale onto an
// output interval, typically pixels.
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an output scale spanning [min, max] that crops
// out-of-range positions.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes out-of-range positions report failure.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp lets out-of-range positions extrapolate past the interval.
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp pins out-of-range positions to the interval edges.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps a normalized position to the output interval. ok is false if
// the position was cropped.
func (s OutputScale) Of(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	} else if s.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// Map is Of without the crop report, always pinning to the interval
// edges. Its shape suits vec.Map over a tick slice.
func (s OutputScale) Map(x float64) float64 {
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return x*(s.max-s.min) + s.min
}
