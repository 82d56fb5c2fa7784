// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint rasterizes filled and stroked vector paths onto
// RGBA images, with anti-aliasing and source-over compositing.
//
// The rasterization is done by [rasterx]; this package holds the path
// representation and the stroke styling used to drive it.
package paint

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/core/math32"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// miterLimit is the ratio of miter length to stroke width beyond
// which a miter join is clipped.
const miterLimit = 4

// Context paints paths onto an [image.RGBA].
type Context struct {
	// Image is the render target.
	Image *image.RGBA

	// raster is the stroke and fill engine; its embedded Filler
	// is used for fills.
	raster *rasterx.Dasher
}

// NewContext returns a new [Context] painting onto a new
// transparent image of size×size pixels.
func NewContext(size int) *Context {
	return NewContextForImage(image.NewRGBA(image.Rect(0, 0, size, size)))
}

// NewContextForImage returns a new [Context] painting onto img.
func NewContextForImage(img *image.RGBA) *Context {
	sz := img.Bounds().Size()
	scan := rasterx.NewScannerGV(sz.X, sz.Y, img, img.Bounds())
	return &Context{Image: img, raster: rasterx.NewDasher(sz.X, sz.Y, scan)}
}

// Clear sets every pixel of the image to c, replacing what was there.
func (pc *Context) Clear(c color.Color) {
	draw.Draw(pc.Image, pc.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Fill fills the interior of the path with c, using the non-zero
// winding rule. Open subpaths are implicitly closed.
func (pc *Context) Fill(p Path, c color.Color) {
	if len(p) == 0 {
		return
	}
	rf := &pc.raster.Filler
	rf.Clear()
	rf.SetWinding(true)
	p.addTo(rf)
	rf.SetColor(c)
	rf.Draw()
	rf.Clear()
}

// Stroke draws the outline of the path with c, centered on the path.
// Nothing is drawn when the stroke width is not positive.
func (pc *Context) Stroke(p Path, c color.Color, st StrokeStyle) {
	if len(p) == 0 || st.Width <= 0 {
		return
	}
	rs := pc.raster
	rs.Clear()
	rs.SetStroke(toFixed(st.Width), toFixed(miterLimit), st.Cap.capFunc(), nil, rasterx.RoundGap, st.Join.joinMode(), nil, 0)
	rs.SetWinding(true)
	p.addTo(rs)
	rs.SetColor(c)
	rs.Draw()
	rs.Clear()
}

// addTo feeds the path to the given rasterx adder.
func (p Path) addTo(a rasterx.Adder) {
	open := false
	for _, sg := range p {
		switch sg.Cmd {
		case MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toFixedP(sg.Pts[0].X, sg.Pts[0].Y))
			open = true
		case LineTo:
			a.Line(toFixedP(sg.Pts[0].X, sg.Pts[0].Y))
		case QuadTo:
			a.QuadBezier(toFixedP(sg.Pts[0].X, sg.Pts[0].Y), toFixedP(sg.Pts[1].X, sg.Pts[1].Y))
		case CubeTo:
			a.CubeBezier(toFixedP(sg.Pts[0].X, sg.Pts[0].Y), toFixedP(sg.Pts[1].X, sg.Pts[1].Y), toFixedP(sg.Pts[2].X, sg.Pts[2].Y))
		case Close:
			if open {
				a.Stop(true)
			}
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

func toFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(x * 64))
}

func toFixedP(x, y float32) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}
