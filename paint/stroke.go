// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "github.com/srwiley/rasterx"

// Caps are the ways an open stroke is terminated.
type Caps int32

const (
	CapButt Caps = iota
	CapRound
	CapSquare
)

func (c Caps) capFunc() rasterx.CapFunc {
	switch c {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

// Joins are the ways two stroke segments are joined.
type Joins int32

const (
	JoinMiter Joins = iota
	JoinRound
	JoinBevel
)

func (j Joins) joinMode() rasterx.JoinMode {
	switch j {
	case JoinRound:
		return rasterx.Round
	case JoinBevel:
		return rasterx.Bevel
	}
	return rasterx.Miter
}

// StrokeStyle describes how a path outline is drawn.
type StrokeStyle struct {
	// Width is the stroke width in pixels.
	Width float32

	// Cap terminates open subpaths.
	Cap Caps

	// Join connects consecutive segments.
	Join Joins
}
