// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"cogentcore.org/core/math32"
)

// Cmds are the path drawing commands.
type Cmds int32

const (
	MoveTo Cmds = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Segment is one path command. Pts holds the control points
// followed by the end point; unused entries are zero.
type Segment struct {
	Cmd Cmds
	Pts [3]math32.Vector2
}

// End returns the pen position after the segment.
// It is undefined for [Close].
func (s Segment) End() math32.Vector2 {
	switch s.Cmd {
	case QuadTo:
		return s.Pts[1]
	case CubeTo:
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Path is a sequence of MoveTo, LineTo, QuadTo, CubeTo and Close
// commands in canvas coordinates, with y pointing down.
type Path []Segment

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float32) *Path {
	*p = append(*p, Segment{Cmd: MoveTo, Pts: [3]math32.Vector2{math32.Vec2(x, y)}})
	return p
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	*p = append(*p, Segment{Cmd: LineTo, Pts: [3]math32.Vector2{math32.Vec2(x, y)}})
	return p
}

// QuadTo adds a quadratic Bézier curve with control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	*p = append(*p, Segment{Cmd: QuadTo, Pts: [3]math32.Vector2{math32.Vec2(cx, cy), math32.Vec2(x, y)}})
	return p
}

// CubeTo adds a cubic Bézier curve with control points (cx1, cy1)
// and (cx2, cy2) ending at (x, y).
func (p *Path) CubeTo(cx1, cy1, cx2, cy2, x, y float32) *Path {
	*p = append(*p, Segment{Cmd: CubeTo, Pts: [3]math32.Vector2{math32.Vec2(cx1, cy1), math32.Vec2(cx2, cy2), math32.Vec2(x, y)}})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	*p = append(*p, Segment{Cmd: Close})
	return p
}

// Scale returns a copy of the path with every coordinate multiplied by s.
func (p Path) Scale(s float32) Path {
	sp := make(Path, len(p))
	for i, sg := range p {
		for j := range sg.Pts {
			sg.Pts[j] = sg.Pts[j].MulScalar(s)
		}
		sp[i] = sg
	}
	return sp
}

// Points returns the control and end points of all segments, in order.
func (p Path) Points() []math32.Vector2 {
	var pts []math32.Vector2
	for _, sg := range p {
		switch sg.Cmd {
		case MoveTo, LineTo:
			pts = append(pts, sg.Pts[0])
		case QuadTo:
			pts = append(pts, sg.Pts[:2]...)
		case CubeTo:
			pts = append(pts, sg.Pts[:3]...)
		}
	}
	return pts
}

// Bounds returns the bounding box of all points of the path,
// including control points.
func (p Path) Bounds() math32.Box2 {
	pts := p.Points()
	if len(pts) == 0 {
		return math32.Box2{}
	}
	var bb math32.Box2
	bb.SetFromPoints(pts)
	return bb
}
