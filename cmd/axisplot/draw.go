// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/aclements/go-moremath/vec"
	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/aclements/go-axis/scale"
)

const (
	marginX  = 40
	majorLen = 8
	minorLen = 4
	fontSize = 12
)

// drawAxis renders a horizontal axis strip: a baseline, major and minor
// tick marks, and a label under each major tick.
func drawAxis(sc scale.Scale, ticks []float64, minorSplit, width, height int) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Over)

	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	fontCtx := freetype.NewContext()
	fontCtx.SetFontSize(fontSize)
	fontCtx.SetSrc(image.Black)
	fontCtx.SetFont(font)
	fontCtx.SetDst(img)
	fontCtx.SetClip(img.Bounds())

	axisY := height / 2
	for x := marginX; x <= width-marginX; x++ {
		img.Set(x, axisY, color.Black)
	}

	out := scale.NewOutputScale(marginX, float64(width-marginX))
	out.Clamp()
	xs := vec.Map(func(v float64) float64 { return out.Map(sc.Normalize(v)) }, ticks)

	for i, x := range xs {
		px := int(x)
		for y := axisY - majorLen; y <= axisY; y++ {
			img.Set(px, y, color.Black)
		}
		label := sc.Label(ticks[i])
		// Rough centering; the demo doesn't measure glyphs.
		offset := len(label) * fontSize / 4
		if _, err := fontCtx.DrawString(label, freetype.Pt(px-offset, axisY+fontSize+4)); err != nil {
			return nil, err
		}
	}

	if minorSplit > 1 {
		// Minor ticks come back in scale space. Major tick pixels
		// are affine in scale space, so each minor position maps by
		// interpolating inside its gap.
		st := sc.ScaleTicks(true)
		for gi, group := range sc.MinorTicks(minorSplit) {
			if gi+1 >= len(st) || gi+1 >= len(xs) {
				break
			}
			lo, hi := st[gi], st[gi+1]
			if hi == lo {
				continue
			}
			for _, m := range group {
				frac := (m - lo) / (hi - lo)
				px := int(xs[gi] + frac*(xs[gi+1]-xs[gi]))
				for y := axisY - minorLen; y <= axisY; y++ {
					img.Set(px, y, color.Gray{0x60})
				}
			}
		}
	}

	return img, nil
}
