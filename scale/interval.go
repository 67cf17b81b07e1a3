// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"
)

const (
	defaultSplitNumber = 5

	// tickSafeLimit caps tick generation. Degenerate intervals from
	// runaway zoom or pan states would otherwise step essentially
	// forever; an empty axis beats a hung renderer.
	tickSafeLimit = 10000
)

// Interval is a linear scale with evenly spaced "nice" ticks. It is
// also the linear helper other scales delegate to for minor-tick and
// label behavior over their transformed coordinate, where spacing is
// uniform again.
type Interval struct {
	extent            Extent
	niceExtent        Extent
	interval          float64
	intervalPrecision int
	splitNumber       int
}

var _ Scale = (*Interval)(nil)

// NewInterval returns an interval scale with an empty extent.
func NewInterval() *Interval {
	return &Interval{
		extent:      EmptyExtent(),
		niceExtent:  EmptyExtent(),
		splitNumber: defaultSplitNumber,
	}
}

// Parse interprets a raw input as an axis value.
func (s *Interval) Parse(v float64) float64 { return v }

// Contain reports whether v falls inside the current extent.
func (s *Interval) Contain(v float64) bool { return contain(v, s.extent) }

// Normalize maps v to [0, 1] across the current extent.
func (s *Interval) Normalize(v float64) float64 { return normalize(v, s.extent) }

// Scale maps a normalized position back to a value.
func (s *Interval) Scale(t float64) float64 { return denormalize(t, s.extent) }

// SetExtent replaces the current extent with [lo, hi].
func (s *Interval) SetExtent(lo, hi float64) { s.extent.Set(lo, hi) }

// Extent returns the current bounds.
func (s *Interval) Extent() (lo, hi float64) { return s.extent[0], s.extent[1] }

// UnionExtent widens the current extent to include [lo, hi].
func (s *Interval) UnionExtent(lo, hi float64) { s.extent.Union(lo, hi) }

// UnionExtentFromData widens the current extent to include the extent
// of dimension dim in data.
func (s *Interval) UnionExtentFromData(data DataProvider, dim string) {
	s.UnionExtent(data.ApproximateExtent(dim))
}

// CalcNiceTicks derives a nice tick interval targeting n ticks across
// the extent and aligns the nice extent to interval multiples inside
// it. A degenerate extent (non-finite or non-positive span) leaves the
// interval untouched.
func (s *Interval) CalcNiceTicks(n int, minInterval, maxInterval float64) {
	if n <= 0 {
		n = defaultSplitNumber
	}
	span := s.extent.Span()
	if !isFinite(span) || span <= 0 {
		return
	}
	interval := niceNumber(span/float64(n), true)
	if minInterval > 0 && interval < minInterval {
		interval = minInterval
	}
	if maxInterval > 0 && interval > maxInterval {
		interval = maxInterval
	}
	prec := intervalPrecision(interval)
	s.interval, s.intervalPrecision, s.splitNumber = interval, prec, n
	s.niceExtent.Set(
		RoundTo(math.Ceil(s.extent[0]/interval)*interval, prec),
		RoundTo(math.Floor(s.extent[1]/interval)*interval, prec),
	)
}

// CalcNiceExtent computes nice ticks and then expands the extent itself
// outward to interval multiples. FixMin and FixMax keep the
// corresponding bound where the data put it.
func (s *Interval) CalcNiceExtent(opt NiceExtentOption) {
	lo, hi := s.extent[0], s.extent[1]
	s.CalcNiceTicks(opt.SplitNumber, opt.MinInterval, opt.MaxInterval)
	if s.interval == 0 {
		return
	}
	if !opt.FixMin {
		s.extent[0] = RoundTo(math.Floor(lo/s.interval)*s.interval, s.intervalPrecision)
	}
	if !opt.FixMax {
		s.extent[1] = RoundTo(math.Ceil(hi/s.interval)*s.interval, s.intervalPrecision)
	}
	// The tick extent stays interval-aligned even when a fixed bound
	// keeps the extent itself off-grid.
	s.niceExtent.Set(
		RoundTo(math.Ceil(s.extent[0]/s.interval)*s.interval, s.intervalPrecision),
		RoundTo(math.Floor(s.extent[1]/s.interval)*s.interval, s.intervalPrecision),
	)
}

// ScaleTicks returns the tick positions. With expandToNicedExtent the
// first and last ticks extend one interval beyond the nice extent when
// the data extent reaches past it; otherwise the data bounds themselves
// cap the sequence.
func (s *Interval) ScaleTicks(expandToNicedExtent bool) []float64 {
	if s.interval == 0 {
		return nil
	}
	ticks := []float64{}
	if s.extent[0] < s.niceExtent[0] {
		if expandToNicedExtent {
			ticks = append(ticks, RoundTo(s.niceExtent[0]-s.interval, s.intervalPrecision))
		} else {
			ticks = append(ticks, s.extent[0])
		}
	}
	tick := s.niceExtent[0]
	for tick <= s.niceExtent[1] {
		ticks = append(ticks, tick)
		next := RoundTo(tick+s.interval, s.intervalPrecision)
		if next == tick {
			break // interval below float resolution
		}
		tick = next
		if len(ticks) > tickSafeLimit {
			return []float64{}
		}
	}
	last := s.niceExtent[1]
	if n := len(ticks); n > 0 {
		last = ticks[n-1]
	}
	if s.extent[1] > last {
		if expandToNicedExtent {
			ticks = append(ticks, RoundTo(last+s.interval, s.intervalPrecision))
		} else {
			ticks = append(ticks, s.extent[1])
		}
	}
	return ticks
}

// Ticks returns the tick values. Value space and scale space coincide
// for a linear scale.
func (s *Interval) Ticks(expandToNicedExtent bool) []float64 {
	return s.ScaleTicks(expandToNicedExtent)
}

// MinorTicks returns splitNumber-1 evenly spaced minor ticks inside
// each major tick gap, omitting any outside the extent.
func (s *Interval) MinorTicks(splitNumber int) [][]float64 {
	return s.minorTicksBetween(s.ScaleTicks(true), splitNumber)
}

// minorTicksBetween splits the gaps of the given major ticks against
// the scale's extent. Other scales call it with their own major ticks
// after syncing the extent.
func (s *Interval) minorTicksBetween(ticks []float64, splitNumber int) [][]float64 {
	return minorBetween(ticks, splitNumber, s.extent)
}

// Label formats v using the precision of the current interval, so
// labels along one axis agree on decimal places.
func (s *Interval) Label(v float64) string {
	p := Precision(s.interval)
	if s.interval == 0 {
		p = Precision(v)
	}
	return s.formatLabel(v, p)
}

// formatLabel renders v with at most p decimal places, trimming
// trailing zeros. It is the label behavior other scales borrow.
func (s *Interval) formatLabel(v float64, p int) string {
	return strconv.FormatFloat(RoundTo(v, p), 'f', -1, 64)
}
