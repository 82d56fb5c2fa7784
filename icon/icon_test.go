// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertColor(t *testing.T, want color.RGBA, img *image.RGBA, x, y int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	assert.True(t, imagex.CompareColors(want, got, 2), "pixel (%d, %d): want %v, got %v", x, y, want, got)
}

func TestRenderSize(t *testing.T) {
	for _, st := range StylesValues() {
		for _, sz := range []int{1, 7, 16, 32, 37, 48, 64, 128, 180, 192, 256, 512} {
			img := RenderStyle(sz, st)
			assert.Equal(t, image.Rect(0, 0, sz, sz), img.Bounds(), "%v at %d", st, sz)
		}
	}
}

func TestRenderNonPositive(t *testing.T) {
	for _, sz := range []int{0, -1, -64} {
		assert.True(t, Render(sz).Bounds().Empty(), "size %d", sz)
	}
}

func TestRender64(t *testing.T) {
	for _, st := range StylesValues() {
		t.Run(st.String(), func(t *testing.T) {
			img := RenderStyle(64, st)
			// the keyhole is painted over the lock body
			assertColor(t, black, img, 32, 32)
			assertColor(t, white, img, 29, 34)
			assertColor(t, white, img, 34, 34)
			// left edge of the shield
			assertColor(t, white, img, 20, 23)
			// background
			assertColor(t, black, img, 0, 0)
			assertColor(t, black, img, 63, 63)
			assertColor(t, black, img, 32, 2)
			imagex.Assert(t, img, st.String()+"-64")
		})
	}
}

func TestClassicBodyExtent(t *testing.T) {
	img := Render(64)
	// 8x8 at the reference size, the far edge at 36 is not painted
	assertColor(t, white, img, 28, 35)
	assertColor(t, white, img, 35, 35)
	assertColor(t, black, img, 36, 35)
	assertColor(t, black, img, 35, 36)
	assertColor(t, black, img, 27, 35)
}

func TestRenderDeterministic(t *testing.T) {
	for _, st := range StylesValues() {
		a := RenderStyle(48, st)
		b := RenderStyle(48, st)
		assert.Equal(t, a.Pix, b.Pix, st.String())
	}
}

func TestShapesScale(t *testing.T) {
	for _, st := range StylesValues() {
		ref := Shapes(st, 1)
		for _, sc := range []float32{0.25, 2, 8} {
			scaled := Shapes(st, sc)
			require.Len(t, scaled, len(ref))
			for i := range ref {
				assert.Equal(t, ref[i].Name, scaled[i].Name)
				rp := ref[i].Path.Points()
				sp := scaled[i].Path.Points()
				require.Len(t, sp, len(rp))
				for j := range rp {
					assert.InDelta(t, rp[j].X*sc, sp[j].X, 1e-4, "%v %s point %d", st, ref[i].Name, j)
					assert.InDelta(t, rp[j].Y*sc, sp[j].Y, 1e-4, "%v %s point %d", st, ref[i].Name, j)
				}
			}
		}
	}
}

func TestShapeOrder(t *testing.T) {
	var names []string
	for _, sh := range Shapes(Classic, 1) {
		names = append(names, sh.Name)
	}
	assert.Equal(t, []string{"shield", "body", "shackle", "keyhole"}, names)

	names = nil
	for _, sh := range Shapes(Detailed, 1) {
		names = append(names, sh.Name)
	}
	assert.Equal(t, []string{"shield", "inner", "body", "shackle", "keyhole"}, names)
}

func TestClassicStrokeWidths(t *testing.T) {
	tests := []struct {
		size            int
		shield, shackle float32
	}{
		{16, 1, 1},
		{32, 1, 1},
		{48, 2, 2},
		{64, 3, 2},
		{256, 10, 8},
		{512, 20, 16},
	}
	for _, tt := range tests {
		shapes := classicShapes(Scale(tt.size))
		assert.Equal(t, tt.shield, shapes[0].Style.Width, "shield at %d", tt.size)
		assert.Equal(t, tt.shackle, shapes[2].Style.Width, "shackle at %d", tt.size)
	}
}

func TestClassicGeometry(t *testing.T) {
	shapes := classicShapes(1)
	assert.Equal(t, ShieldPoints, shapes[0].Path.Points())

	bb := shapes[1].Path.Bounds()
	assert.Equal(t, float32(28), bb.Min.X)
	assert.Equal(t, float32(36), bb.Max.Y)

	// the shackle is the lower half of the circle inscribed in (29,22)-(35,28)
	sb := shapes[2].Path.Bounds()
	assert.InDelta(t, 29, sb.Min.X, 1e-4)
	assert.InDelta(t, 35, sb.Max.X, 1e-4)
	assert.InDelta(t, 25, sb.Min.Y, 1e-4)
	assert.InDelta(t, 28, sb.Max.Y, 1e-4)

	kb := shapes[3].Path.Bounds()
	assert.InDelta(t, 30.5, kb.Min.X, 1e-4)
	assert.InDelta(t, 33.5, kb.Max.Y, 1e-4)
}

// meanDiff returns the mean absolute difference of the red channel.
func meanDiff(a, b *image.RGBA) float64 {
	sum := 0
	for i := 0; i < len(a.Pix); i += 4 {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum) / float64(len(a.Pix)/4)
}

func TestProportional(t *testing.T) {
	for _, st := range StylesValues() {
		small := transform.Resize(RenderStyle(512, st), Reference, Reference, transform.Box)

		ref := RenderStyle(Reference, st)
		d := meanDiff(small, ref)
		assert.Less(t, d, 12.0, fmt.Sprintf("%v: mean difference %.2f", st, d))
	}
}

func TestStyles(t *testing.T) {
	var st Styles
	require.NoError(t, st.SetString("detailed"))
	assert.Equal(t, Detailed, st)
	assert.Error(t, st.SetString("neon"))
	assert.Equal(t, Detailed, st)

	require.NoError(t, st.UnmarshalText([]byte("classic")))
	assert.Equal(t, Classic, st)

	// unknown names are logged and leave the value unchanged
	assert.NoError(t, st.UnmarshalText([]byte("neon")))
	assert.Equal(t, Classic, st)

	b, err := Detailed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "detailed", string(b))
	assert.Equal(t, "9", Styles(9).String())
	assert.Equal(t, []Styles{Classic, Detailed}, StylesValues())
	assert.Len(t, Classic.Values(), int(StylesN))
}
