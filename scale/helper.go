// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Range logic shared by the interval and symlog scales. Both delegate
// here after converting to their scale space, so membership and
// normalization behave identically across scale types.

func contain(v float64, e Extent) bool {
	return v >= e[0] && v <= e[1]
}

func normalize(v float64, e Extent) float64 {
	if e[1] == e[0] {
		return 0.5
	}
	return (v - e[0]) / (e[1] - e[0])
}

func denormalize(t float64, e Extent) float64 {
	return t*(e[1]-e[0]) + e[0]
}

// minorBetween splits each gap of the given scale-space ticks into
// splitNumber parts and returns the interior split positions per gap,
// omitting positions outside extent.
func minorBetween(ticks []float64, splitNumber int, extent Extent) [][]float64 {
	if splitNumber < 2 || len(ticks) < 2 {
		return nil
	}
	minor := make([][]float64, 0, len(ticks)-1)
	for i := 1; i < len(ticks); i++ {
		var group []float64
		prev, cur := ticks[i-1], ticks[i]
		step := (cur - prev) / float64(splitNumber)
		for j := 1; j < splitNumber; j++ {
			m := prev + step*float64(j)
			if m > extent[0] && m < extent[1] {
				group = append(group, m)
			}
		}
		minor = append(minor, group)
	}
	return minor
}
