// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
)

// ErrUnavailable is returned by [Probe] when drawing does not work
// in the current build or environment.
var ErrUnavailable = errors.New("paint: drawing support is unavailable")

// Probe checks that paths can be rasterized, by filling a square
// on a small canvas and checking coverage inside and outside it.
func Probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()
	pc := NewContext(4)
	pc.Clear(color.Black)
	var p Path
	p.Rectangle(1, 1, 2, 2)
	pc.Fill(p, color.White)
	in := color.RGBAModel.Convert(pc.Image.At(2, 2)).(color.RGBA)
	out := color.RGBAModel.Convert(pc.Image.At(0, 0)).(color.RGBA)
	if in.R < 0xf0 || out.R > 0x0f {
		return fmt.Errorf("%w: probe coverage %v inside, %v outside", ErrUnavailable, in, out)
	}
	return nil
}
