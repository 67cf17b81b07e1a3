// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-axis/symlog"
)

// Symlog is a symmetric-log scale: logarithmic away from zero with a
// dead zone of half-width c around zero that collapses to position 0.
// It keeps extents renderable when the data spans both signs across
// several orders of magnitude.
//
// A Symlog is configured at most once with Init, fed extents with
// SetExtent, UnionExtent or UnionExtentFromData, niced with
// CalcNiceExtent, and then queried for ticks, labels and positions.
type Symlog struct {
	base        float64
	c           float64 // +Inf means derive from the data precision
	initialized bool

	extent         Extent // scale space
	originalExtent Extent // value space, accumulated across series

	niceExtent      Extent // scale space
	niceExtentValue Extent // value space; a non-finite bound means stale

	interval          float64
	intervalPrecision int
	splitNumber       int

	// dataPrecision is the maximum decimal precision observed across
	// unioned series. It only ever increases, and each increase
	// shrinks the derived cutoff.
	dataPrecision  int
	fixMin, fixMax bool

	dim string // axis dimension label, diagnostics only

	helper *Interval // linear behavior over scale space
}

var _ Scale = (*Symlog)(nil)
var _ Initializer = (*Symlog)(nil)

// NewSymlog returns a symlog scale with defaults: base 10 and a cutoff
// derived from the data precision.
func NewSymlog() *Symlog {
	return &Symlog{
		base:            10,
		c:               math.Inf(1),
		extent:          EmptyExtent(),
		originalExtent:  EmptyExtent(),
		niceExtent:      EmptyExtent(),
		niceExtentValue: EmptyExtent(),
		splitNumber:     defaultSplitNumber,
		helper:          NewInterval(),
	}
}

// Init resolves the base and cutoff settings. It runs at most once;
// later calls are no-ops. A missing, non-finite or non-positive "base"
// falls back to 10; a missing, non-finite or zero "C" leaves the cutoff
// tracking the data precision.
func (s *Symlog) Init(settings Settings) {
	if s.initialized {
		return
	}
	s.initialized = true
	if settings == nil {
		return
	}
	if v, ok := settings.Setting("base"); ok && isFinite(v) && v > 0 {
		s.base = v
	}
	if v, ok := settings.Setting("C"); ok && isFinite(v) && v != 0 {
		s.c = v
	}
}

// SetDim records the axis dimension label for diagnostics.
func (s *Symlog) SetDim(dim string) { s.dim = dim }

// Dim returns the axis dimension label.
func (s *Symlog) Dim() string { return s.dim }

// cutoff returns the effective dead-zone half-width: the configured
// value, or 1/base^(dataPrecision+1) when tracking data precision.
func (s *Symlog) cutoff() float64 {
	if math.IsInf(s.c, 1) {
		return 1 / math.Pow(s.base, float64(s.dataPrecision+1))
	}
	return s.c
}

func (s *Symlog) toScale(v float64) float64 {
	return symlog.ValueToScale(s.base, v, s.cutoff())
}

func (s *Symlog) toValue(y float64) float64 {
	return symlog.ScaleToValue(s.base, y, s.cutoff())
}

// Parse interprets a raw input as an axis value.
func (s *Symlog) Parse(v float64) float64 { return v }

// Contain reports whether v falls inside the current extent.
func (s *Symlog) Contain(v float64) bool {
	return contain(s.toScale(v), s.extent)
}

// Normalize maps v to [0, 1] across the current extent.
func (s *Symlog) Normalize(v float64) float64 {
	return normalize(s.toScale(v), s.extent)
}

// Scale maps a normalized position in [0, 1] back to a value.
func (s *Symlog) Scale(t float64) float64 {
	return s.toValue(denormalize(t, s.extent))
}

// SetExtent replaces the extent with the value-space range [lo, hi]. A
// non-finite bound stores the pair unchanged, which is how an axis is
// reset to empty.
func (s *Symlog) SetExtent(lo, hi float64) {
	if isFinite(lo) && isFinite(hi) {
		s.extent.Set(s.toScale(lo), s.toScale(hi))
	} else {
		s.extent[0], s.extent[1] = lo, hi
	}
	s.niceExtentValue = EmptyExtent()
}

// Extent returns the value-space bounds of the niced extent,
// recomputing it if a mutation left it stale. With the fix-min/fix-max
// corrections the corresponding bound is rounded to the data precision,
// cancelling transform rounding error at the boundary.
func (s *Symlog) Extent() (lo, hi float64) {
	if !isFinite(s.niceExtentValue[0]) || !isFinite(s.niceExtentValue[1]) {
		s.prepareNiceExtent()
	}
	lo, hi = s.niceExtentValue[0], s.niceExtentValue[1]
	if s.fixMin {
		lo = RoundTo(lo, s.dataPrecision)
	}
	if s.fixMax {
		hi = RoundTo(hi, s.dataPrecision)
	}
	return lo, hi
}

// UnionExtent widens the accumulated value-space extent to include
// [lo, hi] and re-derives the scale-space extent from it.
func (s *Symlog) UnionExtent(lo, hi float64) {
	s.originalExtent.Union(lo, hi)
	if !s.originalExtent.Empty() {
		s.extent.Set(s.toScale(s.originalExtent[0]), s.toScale(s.originalExtent[1]))
	}
	s.niceExtentValue = EmptyExtent()
}

// UnionExtentFromData merges the extent and decimal precision of
// dimension dim in data. Precision only ever increases over the life of
// the scale; an increase re-derives the cutoff as 1/base^(precision+1),
// tightening the dead zone, and invalidates previously computed nice
// extents and ticks.
func (s *Symlog) UnionExtentFromData(data DataProvider, dim string) {
	if p := data.MaxPrecision(dim); p > s.dataPrecision {
		s.dataPrecision = p
		s.c = 1 / math.Pow(s.base, float64(p+1))
		s.niceExtentValue = EmptyExtent()
	}
	s.UnionExtent(data.ApproximateExtent(dim))
}

// prepareNiceExtent rounds the extent outward to powers of the base and
// caches the result in both value and scale space. Each bound rounds
// away from the data: toward zero for the bound nearer zero and away
// from zero for the bound farther from it, so the nice extent contains
// the data extent on both sides regardless of sign.
func (s *Symlog) prepareNiceExtent() {
	start := s.toValue(s.extent[0])
	end := s.toValue(s.extent[1])
	if start > 0 {
		start = symlog.PrevPow(s.base, start)
	} else if start < 0 {
		start = symlog.NextPow(s.base, start)
	}
	if end > 0 {
		end = symlog.NextPow(s.base, end)
	} else if end < 0 {
		end = symlog.PrevPow(s.base, end)
	}
	// A tiny rounded bound opposite a large one reads as noise; pin
	// it to the edge of the dead zone instead.
	if start > 0 && start < 1 && end > 1 {
		start = 0
	}
	if end > 0 && end < 1 && start < -1 {
		end = 1
	}
	s.niceExtentValue[0], s.niceExtentValue[1] = start, end
	s.niceExtent[0], s.niceExtent[1] = s.toScale(start), s.toScale(end)
}

// CalcNiceTicks recomputes the nice extent and derives the scale-space
// tick interval targeting n ticks. A non-finite or negative nice span
// leaves the interval untouched.
//
// minInterval and maxInterval exist for interface parity with Interval
// and are not applied: the symlog interval lives in transformed
// coordinates, where a value-space interval bound has no fixed meaning.
func (s *Symlog) CalcNiceTicks(n int, minInterval, maxInterval float64) {
	if n <= 0 {
		n = defaultSplitNumber
	}
	s.prepareNiceExtent()
	span := s.niceExtent.Span()
	if math.IsInf(span, 0) || span < 0 {
		return
	}
	s.interval = span / float64(n)
	s.intervalPrecision = intervalPrecision(s.interval)
	s.splitNumber = n
}

// CalcNiceExtent nices the extent for rendering and records the
// requested boundary corrections.
func (s *Symlog) CalcNiceExtent(opt NiceExtentOption) {
	s.CalcNiceTicks(opt.SplitNumber, opt.MinInterval, opt.MaxInterval)
	s.fixMin, s.fixMax = opt.FixMin, opt.FixMax
}

// ScaleTicks returns the scale-space tick positions. With
// expandToNicedExtent the ticks span the niced extent; otherwise they
// are clipped to the data extent.
//
// Stepping retracts the previously appended tick when the current step
// rounds to the same value-space label or when the previous tick fell
// before the starting boundary, and inserts an explicit zero tick when
// a step crosses the dead zone from negative to positive.
func (s *Symlog) ScaleTicks(expandToNicedExtent bool) []float64 {
	if s.interval == 0 || math.IsNaN(s.interval) {
		return nil
	}
	start, end := s.extent[0], s.extent[1]
	if expandToNicedExtent {
		start, end = s.niceExtent[0], s.niceExtent[1]
	}

	ticks := []float64{}
	tick := s.niceExtent[0]
	if tick < s.extent[0] {
		if expandToNicedExtent {
			ticks = append(ticks, tick)
		} else {
			ticks = append(ticks, s.extent[0])
		}
		tick = RoundTo(s.niceExtent[0]+s.interval, s.intervalPrecision)
	}
	for tick <= end {
		if len(ticks) > tickSafeLimit {
			return []float64{}
		}
		if n := len(ticks); n > 0 {
			prev := ticks[n-1]
			prevVal := RoundTo(s.toValue(prev), s.dataPrecision)
			curVal := RoundTo(s.toValue(tick), s.dataPrecision)
			switch {
			case prevVal < 0 && curVal > 0:
				// The dead zone can make one step jump clean
				// across zero; zero always gets a tick.
				ticks = append(ticks, 0)
			case curVal == prevVal || prev < start:
				ticks = ticks[:n-1]
			}
		}
		ticks = append(ticks, tick)
		next := RoundTo(tick+s.interval, s.intervalPrecision)
		if next == tick {
			break // interval below float resolution
		}
		tick = next
	}
	if n := len(ticks); n > 0 {
		lastVal := RoundTo(s.toValue(ticks[n-1]), s.dataPrecision)
		endVal := RoundTo(s.toValue(end), s.dataPrecision)
		if lastVal < endVal {
			// The boundary append skips the crossing checks above: a
			// sign change inside this final partial step yields the
			// end tick but no zero tick.
			ticks = append(ticks, end)
		}
	}
	return ticks
}

// Ticks returns the value-space tick values, rounded to the data
// precision for display.
func (s *Symlog) Ticks(expandToNicedExtent bool) []float64 {
	scaleTicks := s.ScaleTicks(expandToNicedExtent)
	ticks := make([]float64, len(scaleTicks))
	for i, t := range scaleTicks {
		ticks[i] = RoundTo(s.toValue(t), s.dataPrecision)
	}
	return ticks
}

// MinorTicks returns scale-space minor ticks splitting each major tick
// gap. The work is delegated to the linear helper: spacing is uniform
// in scale space, so linear subdivision is exact.
func (s *Symlog) MinorTicks(splitNumber int) [][]float64 {
	s.helper.extent = s.extent
	return s.helper.minorTicksBetween(s.ScaleTicks(true), splitNumber)
}

// Label formats a value-space tick, delegated to the linear helper at
// the data precision so symlog and linear axes label identically.
func (s *Symlog) Label(v float64) string {
	return s.helper.formatLabel(v, s.dataPrecision)
}
