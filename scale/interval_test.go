// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalNiceTicks(t *testing.T) {
	s := NewInterval()
	s.SetExtent(0, 17)
	s.CalcNiceTicks(5, 0, 0)

	require.Equal(t, 3.0, s.interval)
	require.Equal(t, Extent{0, 15}, s.niceExtent)

	require.Equal(t, []float64{0, 3, 6, 9, 12, 15, 17}, s.Ticks(false))
	require.Equal(t, []float64{0, 3, 6, 9, 12, 15, 18}, s.Ticks(true))
}

func TestIntervalCalcNiceExtent(t *testing.T) {
	s := NewInterval()
	s.SetExtent(1.2, 9.7)
	s.CalcNiceExtent(NiceExtentOption{SplitNumber: 5})

	lo, hi := s.Extent()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 10.0, hi)
	require.Equal(t, []float64{0, 2, 4, 6, 8, 10}, s.Ticks(false))
}

func TestIntervalFixedBounds(t *testing.T) {
	s := NewInterval()
	s.SetExtent(1.2, 9.7)
	s.CalcNiceExtent(NiceExtentOption{SplitNumber: 5, FixMin: true, FixMax: true})

	lo, hi := s.Extent()
	require.Equal(t, 1.2, lo)
	require.Equal(t, 9.7, hi)
	// Ticks stay on the interval grid between the fixed bounds.
	require.Equal(t, []float64{1.2, 2, 4, 6, 8, 9.7}, s.Ticks(false))
}

func TestIntervalMinMaxInterval(t *testing.T) {
	s := NewInterval()
	s.SetExtent(0, 10)
	s.CalcNiceTicks(5, 3, 0)
	require.Equal(t, 3.0, s.interval)
	require.Equal(t, []float64{0, 3, 6, 9, 10}, s.Ticks(false))

	s = NewInterval()
	s.SetExtent(0, 10)
	s.CalcNiceTicks(5, 0, 1)
	require.Equal(t, 1.0, s.interval)
	require.Len(t, s.Ticks(false), 11)
}

func TestIntervalFractionalTicks(t *testing.T) {
	s := NewInterval()
	s.SetExtent(0, 1)
	s.CalcNiceTicks(5, 0, 0)

	require.Equal(t, 0.2, s.interval)
	require.Equal(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, s.Ticks(false))
}

func TestIntervalMinorTicks(t *testing.T) {
	s := NewInterval()
	s.SetExtent(1.2, 9.7)
	s.CalcNiceExtent(NiceExtentOption{SplitNumber: 5})

	minor := s.MinorTicks(2)
	require.Equal(t, [][]float64{{1}, {3}, {5}, {7}, {9}}, minor)
}

func TestIntervalLabel(t *testing.T) {
	s := NewInterval()
	s.SetExtent(0, 10)
	s.CalcNiceTicks(5, 0, 0)
	require.Equal(t, "4", s.Label(4))

	s = NewInterval()
	s.SetExtent(0, 1)
	s.CalcNiceTicks(5, 0, 0)
	require.Equal(t, "0.4", s.Label(0.4))
	require.Equal(t, "0", s.Label(0))
}

func TestIntervalDegenerate(t *testing.T) {
	s := NewInterval()
	require.Empty(t, s.ScaleTicks(true))

	// Niceing an empty extent is a no-op.
	s.CalcNiceTicks(5, 0, 0)
	require.Empty(t, s.Ticks(false))
}

func TestIntervalContainNormalizeScale(t *testing.T) {
	s := NewInterval()
	s.SetExtent(0, 10)

	require.True(t, s.Contain(0))
	require.True(t, s.Contain(10))
	require.False(t, s.Contain(10.5))

	require.Equal(t, 0.5, s.Normalize(5))
	require.Equal(t, 2.5, s.Scale(0.25))
	require.Equal(t, 7.0, s.Parse(7))
}

func TestIntervalUnionExtent(t *testing.T) {
	s := NewInterval()
	s.UnionExtent(3, 7)
	s.UnionExtent(9, -1) // conflicting order is corrected
	lo, hi := s.Extent()
	require.Equal(t, -1.0, lo)
	require.Equal(t, 9.0, hi)

	s.UnionExtentFromData(fakeData{lo: -5, hi: 5}, "x")
	lo, hi = s.Extent()
	require.Equal(t, -5.0, lo)
	require.Equal(t, 9.0, hi)
}
