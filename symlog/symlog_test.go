// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symlog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroFixpoint(t *testing.T) {
	for _, base := range []float64{2, math.E, 10} {
		for _, c := range []float64{0.1, 0.01, 0.001} {
			got := ScaleToValue(base, ValueToScale(base, 0, c), c)
			require.Equal(t, 0.0, got, "base=%v c=%v", base, c)
			require.False(t, math.Signbit(got), "base=%v c=%v produced -0", base, c)
		}
	}
}

func TestSignSymmetry(t *testing.T) {
	const c = 0.01
	for _, base := range []float64{2, 10} {
		for _, v := range []float64{0.01, 0.5, 1, 37, 1000, 1e6} {
			require.Equal(t, -ValueToScale(base, v, c), ValueToScale(base, -v, c),
				"base=%v v=%v", base, v)
		}
	}
}

func TestDeadZoneCollapse(t *testing.T) {
	const c = 0.01
	for _, v := range []float64{0, 1e-9, 0.001, 0.004, -0.0049, -1e-6} {
		require.Equal(t, 0.0, ValueToScale(10, v, c), "v=%v", v)
	}
	// Just past the dead zone the position is nonzero.
	require.NotZero(t, ValueToScale(10, 0.011, c))
	require.NotZero(t, ValueToScale(10, -0.011, c))
}

func TestMonotonic(t *testing.T) {
	const c = 0.01
	values := []float64{-1e6, -1000, -50, -1, -0.02, -0.004, 0, 0.004, 0.02, 1, 50, 1000, 1e6}
	prev := math.Inf(-1)
	for _, v := range values {
		y := ValueToScale(10, v, c)
		require.LessOrEqual(t, prev, y, "v=%v", v)
		prev = y
	}
}

func TestPowerRounding(t *testing.T) {
	tests := []struct {
		f          func(base, x float64) float64
		base, x, y float64
	}{
		{NextPow, 10, 37, 100},
		{NextPow, 10, -37, -100},
		{PrevPow, 10, 37, 10},
		{PrevPow, 10, -37, -10},
		{NextPow, 10, 0, 0},
		{PrevPow, 10, 0, 0},
		{NextPow, 2, 0, 0},
		{PrevPow, 2, 0, 0},
		{NextPow, 2, 3, 4},
		{PrevPow, 2, 3, 2},
		{NextPow, 10, 0.05, 0.1},
		{PrevPow, 10, 0.05, 0.01},
	}
	for _, test := range tests {
		require.InDelta(t, test.y, test.f(test.base, test.x), math.Abs(test.y)*1e-12,
			"base=%v x=%v", test.base, test.x)
	}
}

func TestRoundTripAwayFromCutoff(t *testing.T) {
	const c = 0.01
	for _, v := range []float64{3, -3, 50, -50, 1000, -1000} {
		got := ScaleToValue(10, ValueToScale(10, v, c), c)
		// Truncation can lose one cutoff step.
		require.InDelta(t, v, got, c+1e-9, "v=%v", v)
	}
}

func TestInverseTruncatesTowardZero(t *testing.T) {
	// A position whose raw inverse is 0.025 must land on 0.02, not
	// 0.03: the inverse truncates where the forward transform rounds.
	const c = 0.01
	y := Log(10, 1+0.025/math.Pow(10, c))
	require.InDelta(t, 0.02, ScaleToValue(10, y, c), 1e-12)

	yNeg := -y
	require.InDelta(t, -0.02, ScaleToValue(10, yNeg, c), 1e-12)
}

func TestLog(t *testing.T) {
	require.InDelta(t, 3, Log(10, 1000), 1e-9)
	require.InDelta(t, 10, Log(2, 1024), 1e-9)
	require.True(t, math.IsNaN(Log(10, -1)))
}
