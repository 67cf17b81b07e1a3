// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides chart-axis scales: extent accumulation, "nice"
// extent and tick computation, and value↔position mapping.
//
// A scale works in two coordinate spaces. Value space is raw data
// units. Scale space is the coordinate in which ticks are evenly spaced
// and rendering positions are computed; for the linear Interval scale
// the two coincide, for Symlog they are related by the symlog
// transform.
//
// Scales are plain in-memory state machines with no locking. A render
// pass owns its scale instance and serializes all calls on it.
package scale

// A Scale is an axis scale: it accumulates a data extent, rounds it to
// "nice" bounds, generates tick positions, and maps values to
// normalized rendering positions.
//
// The usual call sequence for one render pass is UnionExtentFromData
// per data series, then CalcNiceExtent, then Ticks and MinorTicks.
type Scale interface {
	// Parse interprets a raw input as an axis value. It is the
	// identity for numeric scales.
	Parse(v float64) float64

	// Contain reports whether v falls inside the current extent.
	Contain(v float64) bool

	// Normalize maps v to [0, 1] across the current extent.
	Normalize(v float64) float64

	// Scale maps a normalized position in [0, 1] back to a value. It
	// is the inverse of Normalize.
	Scale(t float64) float64

	// SetExtent replaces the current extent with the value-space
	// range [lo, hi].
	SetExtent(lo, hi float64)

	// Extent returns the current value-space bounds.
	Extent() (lo, hi float64)

	// UnionExtent widens the current extent to include the
	// value-space range [lo, hi].
	UnionExtent(lo, hi float64)

	// UnionExtentFromData widens the current extent to include the
	// extent of dimension dim in data.
	UnionExtentFromData(data DataProvider, dim string)

	// CalcNiceTicks computes a tick interval targeting n ticks across
	// the niced extent; n <= 0 selects the default of 5. When
	// positive, minInterval and maxInterval clamp the interval;
	// scales that cannot honor them ignore them.
	CalcNiceTicks(n int, minInterval, maxInterval float64)

	// CalcNiceExtent rounds the extent outward to tick-aligned
	// bounds.
	CalcNiceExtent(opt NiceExtentOption)

	// Ticks returns the value-space tick positions in ascending
	// order. With expandToNicedExtent the ticks cover the niced
	// extent; otherwise they are clipped to the data extent.
	Ticks(expandToNicedExtent bool) []float64

	// ScaleTicks returns the scale-space tick positions underlying
	// Ticks.
	ScaleTicks(expandToNicedExtent bool) []float64

	// MinorTicks returns scale-space minor ticks grouped by the major
	// tick gap containing them. splitNumber is the number of
	// subdivisions per gap.
	MinorTicks(splitNumber int) [][]float64

	// Label formats a value-space tick for display.
	Label(v float64) string
}

// NiceExtentOption configures CalcNiceExtent.
type NiceExtentOption struct {
	SplitNumber int // target tick count; 0 means the default of 5

	// FixMin and FixMax snap the corresponding nice-extent bound to
	// the data precision, correcting floating rounding error at the
	// boundary.
	FixMin, FixMax bool

	// MinInterval and MaxInterval clamp the tick interval when
	// positive. Not every scale can honor them; see CalcNiceTicks.
	MinInterval, MaxInterval float64
}

// A DataProvider describes one data series to a scale. It is the
// scale's only view of series storage.
type DataProvider interface {
	// MaxPrecision returns the maximum number of decimal places
	// observed in dimension dim.
	MaxPrecision(dim string) int

	// ApproximateExtent returns the value-space extent of dimension
	// dim.
	ApproximateExtent(dim string) (lo, hi float64)
}

// Settings supplies scale configuration values by name. A missing name
// means the scale should use its default.
type Settings interface {
	Setting(name string) (float64, bool)
}

// An Initializer is a Scale that takes one-time configuration from the
// owning axis during setup.
type Initializer interface {
	Init(Settings)
}
