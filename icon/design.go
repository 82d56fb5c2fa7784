// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/cyberwatch/shieldicon/paint"
)

// Reference is the edge length in pixels of the grid the design
// is authored on. Every other size is a uniform scaling of it.
const Reference = 64

var (
	white      = color.RGBA{255, 255, 255, 255}
	black      = color.RGBA{0, 0, 0, 255}
	innerShade = color.NRGBA{255, 255, 255, 38}
)

// Shape is one drawing step of the design. A shape is filled when
// Fill is non-nil and then stroked when Stroke is non-nil.
type Shape struct {
	// Name identifies the part of the design.
	Name string

	// Path is the outline in canvas coordinates.
	Path paint.Path

	Fill   color.Color
	Stroke color.Color
	Style  paint.StrokeStyle
}

// Scale returns the factor mapping the reference grid to size pixels.
func Scale(size int) float32 {
	return float32(size) / Reference
}

// ShieldPoints are the vertices of the classic shield outline on the
// reference grid, clockwise from the top.
var ShieldPoints = []math32.Vector2{
	math32.Vec2(32, 12), math32.Vec2(20, 18), math32.Vec2(20, 28), math32.Vec2(24, 38),
	math32.Vec2(32, 48), math32.Vec2(40, 38), math32.Vec2(44, 28), math32.Vec2(44, 18),
}

// Shapes returns the drawing steps of the given style scaled by sc,
// in paint order.
func Shapes(st Styles, sc float32) []Shape {
	if st == Detailed {
		return detailedShapes(sc)
	}
	return classicShapes(sc)
}

// classicShapes is the flat design: stroke widths are rounded to whole pixels.
func classicShapes(sc float32) []Shape {
	var shield paint.Path
	shield.Polygon(ShieldPoints...)

	// the body spans 28..36 on the grid at every size
	var body paint.Path
	body.Rectangle(28, 28, 8, 8)

	// lower half of the ellipse inscribed in (29,22)-(35,28)
	var shackle paint.Path
	shackle.Arc(32, 25, 3, 3, 0, math32.Pi)

	return []Shape{
		{Name: "shield", Path: shield.Scale(sc), Stroke: white,
			Style: paint.StrokeStyle{Width: math32.Round(2.5 * sc), Join: paint.JoinMiter}},
		{Name: "body", Path: body.Scale(sc), Fill: white},
		{Name: "shackle", Path: shackle.Scale(sc), Stroke: white,
			Style: paint.StrokeStyle{Width: math32.Round(2 * sc)}},
		keyhole(sc),
	}
}

func detailedShapes(sc float32) []Shape {
	var shield paint.Path
	shield.MoveTo(32, 12).
		LineTo(20, 18).
		LineTo(20, 28).
		CubeTo(20, 36, 24, 42, 32, 48).
		CubeTo(40, 42, 44, 36, 44, 28).
		LineTo(44, 18).
		Close()

	var inner paint.Path
	inner.MoveTo(32, 16).
		LineTo(24, 20).
		LineTo(24, 28).
		CubeTo(24, 34, 27, 39, 32, 43).
		CubeTo(37, 39, 40, 34, 40, 28).
		LineTo(40, 20).
		Close()

	var body paint.Path
	body.RoundedRectangle(28, 28, 8, 8, 1)

	var shackle paint.Path
	shackle.Arc(32, 25, 3, 3, math32.Pi, 0)

	return []Shape{
		{Name: "shield", Path: shield.Scale(sc), Stroke: white,
			Style: paint.StrokeStyle{Width: 2.5 * sc, Join: paint.JoinRound}},
		{Name: "inner", Path: inner.Scale(sc), Fill: innerShade},
		{Name: "body", Path: body.Scale(sc), Fill: white},
		{Name: "shackle", Path: shackle.Scale(sc), Stroke: white,
			Style: paint.StrokeStyle{Width: 2 * sc, Cap: paint.CapRound}},
		keyhole(sc),
	}
}

func keyhole(sc float32) Shape {
	var p paint.Path
	p.Circle(32, 32, 1.5)
	return Shape{Name: "keyhole", Path: p.Scale(sc), Fill: black}
}
