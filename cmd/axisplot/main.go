// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot renders a chart axis described by a TOML file to a
// PNG image.
//
// The axis file names a scale type and either a fixed range or an
// inline data series:
//
//	type = "symlog"
//	dim = "y"
//	base = 10
//	c = 0.01
//	split-number = 5
//	minor-split = 2
//	min = -1000.0
//	max = 1000.0
//
// With a data series instead of min/max, the extent and the decimal
// precision of the values are taken from the data:
//
//	data = [-120.5, -3.25, 0.0, 14.75, 980.0]
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/aclements/go-axis/scale"
)

type axisConfig struct {
	Type        string    `toml:"type"`
	Dim         string    `toml:"dim"`
	Base        float64   `toml:"base"`
	C           float64   `toml:"c"`
	SplitNumber int       `toml:"split-number"`
	MinorSplit  int       `toml:"minor-split"`
	Min         *float64  `toml:"min"`
	Max         *float64  `toml:"max"`
	Data        []float64 `toml:"data"`
	FixMin      bool      `toml:"fix-min"`
	FixMax      bool      `toml:"fix-max"`
}

// Setting implements scale.Settings over the axis file.
func (c *axisConfig) Setting(name string) (float64, bool) {
	switch name {
	case "base":
		if c.Base != 0 {
			return c.Base, true
		}
	case "C":
		if c.C != 0 {
			return c.C, true
		}
	}
	return 0, false
}

// series implements scale.DataProvider over an inline data list.
type series []float64

func (d series) MaxPrecision(dim string) int {
	p := 0
	for _, v := range d {
		if q := scale.Precision(v); q > p {
			p = q
		}
	}
	return p
}

func (d series) ApproximateExtent(dim string) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range d {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return
}

func main() {
	var (
		flagAxis   = flag.String("axis", "axis.toml", "read axis description from `file`")
		flagOut    = flag.String("o", "axis.png", "write rendered axis to `file`")
		flagWidth  = flag.Int("w", 800, "output width in pixels")
		flagHeight = flag.Int("h", 80, "output height in pixels")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	var cfg axisConfig
	if _, err := toml.DecodeFile(*flagAxis, &cfg); err != nil {
		logger.Fatal("reading axis description", "err", err)
	}
	if cfg.Type == "" {
		cfg.Type = "symlog"
	}

	sc := scale.New(cfg.Type)
	if sc == nil {
		logger.Fatal("unknown scale type", "type", cfg.Type)
	}
	if ic, ok := sc.(scale.Initializer); ok {
		ic.Init(&cfg)
	}
	if sl, ok := sc.(*scale.Symlog); ok {
		sl.SetDim(cfg.Dim)
	}

	switch {
	case len(cfg.Data) > 0:
		sc.UnionExtentFromData(series(cfg.Data), cfg.Dim)
	case cfg.Min != nil && cfg.Max != nil:
		sc.SetExtent(*cfg.Min, *cfg.Max)
	default:
		logger.Fatal("axis description needs min/max or data")
	}
	sc.CalcNiceExtent(scale.NiceExtentOption{
		SplitNumber: cfg.SplitNumber,
		FixMin:      cfg.FixMin,
		FixMax:      cfg.FixMax,
	})

	ticks := sc.Ticks(true)
	if len(ticks) == 0 {
		logger.Fatal("degenerate axis produced no ticks")
	}
	lo, hi := sc.Extent()
	logger.Info("computed axis",
		"dim", cfg.Dim,
		"extent", fmt.Sprintf("[%g, %g]", lo, hi),
		"ticks", len(ticks))

	img, err := drawAxis(sc, ticks, cfg.MinorSplit, *flagWidth, *flagHeight)
	if err != nil {
		logger.Fatal("rendering axis", "err", err)
	}
	f, err := os.Create(*flagOut)
	if err != nil {
		logger.Fatal("creating output", "err", err)
	}
	if err := png.Encode(f, img); err != nil {
		logger.Fatal("encoding PNG", "err", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("writing output", "err", err)
	}
	logger.Info("wrote axis", "file", *flagOut)
}
