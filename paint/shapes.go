// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"cogentcore.org/core/math32"
)

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	if len(points) < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	if len(points) < 2 {
		return p
	}
	p.Polyline(points...)
	p.Close()
	return p
}

// Rectangle adds a rectangle of width w and height h.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if w == 0 || h == 0 {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle adds a rectangle of width w and height h
// with corners of radius r drawn as quadratic curves.
func (p *Path) RoundedRectangle(x, y, w, h, r float32) *Path {
	if w == 0 || h == 0 {
		return p
	}
	r = math32.Min(r, math32.Min(w, h)/2)
	if r <= 0 {
		return p.Rectangle(x, y, w, h)
	}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.QuadTo(x+w, y, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.QuadTo(x+w, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.QuadTo(x, y+h, x, y+h-r)
	p.LineTo(x, y+r)
	p.QuadTo(x, y, x+r, y)
	p.Close()
	return p
}

// Circle adds a circle at given center coordinates of radius r.
func (p *Path) Circle(cx, cy, r float32) *Path {
	if r <= 0 {
		return p
	}
	p.Arc(cx, cy, r, r, 0, 2*math32.Pi)
	p.Close()
	return p
}

// Arc adds an elliptical arc as a new open subpath, centered at (cx, cy)
// with radii rx and ry, running from angle theta0 to theta1 in radians.
// Angles are measured in canvas space, where y points down, so an
// increasing angle turns clockwise on screen: 0 to Pi covers the
// lower half. If theta1 < theta0 the arc runs counter-clockwise.
func (p *Path) Arc(cx, cy, rx, ry, theta0, theta1 float32) *Path {
	sweep := theta1 - theta0
	n := int(math32.Ceil(math32.Abs(sweep) / (math32.Pi / 2)))
	if n == 0 {
		return p
	}
	d := sweep / float32(n)
	// control point distance for a cubic approximating d radians
	k := 4.0 / 3.0 * math32.Tan(d/4)
	p.MoveTo(cx+rx*math32.Cos(theta0), cy+ry*math32.Sin(theta0))
	for i := range n {
		a0 := theta0 + d*float32(i)
		a1 := a0 + d
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)
		p.CubeTo(
			cx+rx*(c0-k*s0), cy+ry*(s0+k*c0),
			cx+rx*(c1+k*s1), cy+ry*(s1-k*c1),
			cx+rx*c1, cy+ry*s1)
	}
	return p
}
