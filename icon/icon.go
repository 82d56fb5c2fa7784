// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icon renders the shield-and-lock application icon
// at any pixel size.
package icon

import (
	"image"

	"github.com/cyberwatch/shieldicon/paint"
)

// Render renders the [Classic] icon as a new size×size image.
func Render(size int) *image.RGBA {
	return RenderStyle(size, Classic)
}

// RenderStyle renders the icon in the given style as a new size×size
// image on an opaque black background. A non-positive size returns an
// empty image.
func RenderStyle(size int, st Styles) *image.RGBA {
	if size <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	pc := paint.NewContext(size)
	pc.Clear(black)
	for _, sh := range Shapes(st, Scale(size)) {
		if sh.Fill != nil {
			pc.Fill(sh.Path, sh.Fill)
		}
		if sh.Stroke != nil {
			pc.Stroke(sh.Path, sh.Stroke, sh.Style)
		}
	}
	return pc.Image
}
