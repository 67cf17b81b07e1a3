// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtentSet(t *testing.T) {
	var e Extent
	e.Set(1, 5)
	require.Equal(t, Extent{1, 5}, e)

	// Conflicting order is corrected.
	e.Set(5, 1)
	require.Equal(t, Extent{1, 5}, e)
}

func TestExtentUnion(t *testing.T) {
	e := EmptyExtent()
	require.True(t, e.Empty())

	e.Union(3, 7)
	require.Equal(t, Extent{3, 7}, e)
	require.False(t, e.Empty())

	e.Union(9, -1)
	require.Equal(t, Extent{-1, 9}, e)

	// A contained range changes nothing.
	e.Union(0, 5)
	require.Equal(t, Extent{-1, 9}, e)
}

func TestExtentUnionEmptyPair(t *testing.T) {
	// The empty sentinel must not be mistaken for a reversed range;
	// reordering it would absorb every later union.
	e := Extent{3, 7}
	e.Union(math.Inf(1), math.Inf(-1))
	require.Equal(t, Extent{3, 7}, e)

	e = EmptyExtent()
	e.Union(math.Inf(1), math.Inf(-1))
	require.True(t, e.Empty())
	e.Union(-5, 5)
	require.Equal(t, Extent{-5, 5}, e)
}

func TestExtentSpan(t *testing.T) {
	e := Extent{2, 10}
	require.Equal(t, 8.0, e.Span())
	require.True(t, math.IsInf(EmptyExtent().Span(), -1))
}
