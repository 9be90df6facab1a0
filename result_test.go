// seehuhn.de/go/stddraw - a 2D drawing canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stddraw

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"seehuhn.de/go/stddraw/surface"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// inkColumns returns the range of columns containing non-white pixels,
// and the number of such pixels.
func inkColumns(img *image.RGBA) (lo, hi, n int) {
	b := img.Bounds()
	lo, hi = b.Max.X, b.Min.X-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == white {
				continue
			}
			n++
			lo = min(lo, x)
			hi = max(hi, x)
		}
	}
	return lo, hi, n
}

// isWhite reports whether all pixels in the square of the given radius
// around (x, y) are white.
func isWhite(img *image.RGBA, x, y, r int) bool {
	for j := y - r; j <= y+r; j++ {
		for i := x - r; i <= x+r; i++ {
			if img.RGBAAt(i, j) != white {
				return false
			}
		}
	}
	return true
}

func newImageCanvas(t *testing.T, width, height int, opts ...Option) *Canvas {
	t.Helper()
	c, err := New(width, height, opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestResultUniform(t *testing.T) {
	cases := []struct {
		name string
		col  color.Color
		want color.RGBA
	}{
		{"opaque", Red, color.RGBA{R: 255, A: 255}},
		{"translucent", color.NRGBA{R: 255, A: 128}, color.RGBA{R: 128, A: 128}},
		{"transparent", color.NRGBA{G: 255}, color.RGBA{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newImageCanvas(t, 10, 8)
			c.SetPenColor(BookBlue)
			c.Circle(0.5, 0.5, 0.3, true)
			c.Clear(tc.col)
			img, err := c.Result()
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds() != image.Rect(0, 0, 20, 16) {
				t.Fatalf("bounds %v", img.Bounds())
			}
			for y := 0; y < 16; y++ {
				for x := 0; x < 20; x++ {
					if got := img.RGBAAt(x, y); got != tc.want {
						t.Fatalf("pixel (%d, %d) is %v, want %v", x, y, got, tc.want)
					}
				}
			}
		})
	}
}

func TestResultIsCopy(t *testing.T) {
	c := newImageCanvas(t, 10, 10)
	c.Clear(White)
	first, err := c.Result()
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(Black)
	if got := first.RGBAAt(3, 3); got != white {
		t.Errorf("earlier result changed to %v", got)
	}
}

func TestResultDownsampled(t *testing.T) {
	c := newImageCanvas(t, 12, 7, WithDeviceScale(4))
	c.Clear(BookBlue)
	img, err := c.ResultDownsampled()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 12, 7) {
		t.Fatalf("bounds %v, want 12x7", img.Bounds())
	}
	want := BookBlue.(color.RGBA)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			got := img.RGBAAt(x, y)
			if diff(got.R, want.R) > 1 || diff(got.G, want.G) > 1 ||
				diff(got.B, want.B) > 1 || diff(got.A, want.A) > 1 {
				t.Fatalf("pixel (%d, %d) is %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResultDownsampledUnitScale(t *testing.T) {
	c := newImageCanvas(t, 5, 5, WithDeviceScale(1))
	img, err := c.ResultDownsampled()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Errorf("bounds %v", img.Bounds())
	}
}

func TestResultAfterClose(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	c.Close()
	_, err = c.Result()
	if !errors.Is(err, surface.ErrReleased) {
		t.Errorf("got %v, want ErrReleased", err)
	}
}

func TestRenderCircles(t *testing.T) {
	c := newImageCanvas(t, 512, 512)
	c.Clear(White)
	c.SetPenColor(Black)

	// collapses to the pixel covering device x 512..514, y 512..514
	c.Circle(0.5, 0.5, 0.0001, false)
	img, err := c.Result()
	if err != nil {
		t.Fatal(err)
	}
	black := color.RGBA{A: 255}
	for _, p := range []image.Point{{512, 510}, {513, 510}, {512, 511}, {513, 511}} {
		if got := img.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("pixel %v is %v, want black", p, got)
		}
	}
	for _, p := range []image.Point{{511, 510}, {514, 511}, {512, 509}, {513, 512}} {
		if got := img.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("pixel %v is %v, want white", p, got)
		}
	}

	// slightly larger circles are drawn as rings
	c.Clear(White)
	c.Circle(0.5, 0.5, 0.001, false)
	img, err = c.Result()
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for y := 508; y < 516; y++ {
		for x := 508; x < 516; x++ {
			if img.RGBAAt(x, y) != white {
				n++
			}
		}
	}
	if n <= 4 {
		t.Errorf("ring covers %d pixels, want more than 4", n)
	}
	if _, _, total := inkColumns(img); total != n {
		t.Errorf("%d pixels drawn outside the ring area", total-n)
	}
}

func TestRenderArc(t *testing.T) {
	c := newImageCanvas(t, 100, 100)
	c.Clear(White)
	c.SetPenRadius(0.005)
	c.Arc(0.5, 0.5, 0.25, 0, 90)
	img, err := c.Result()
	if err != nil {
		t.Fatal(err)
	}

	// device center (100, 100), radius 50; image rows grow downwards
	if isWhite(img, 135, 64, 1) {
		t.Error("no ink at 45°")
	}
	if isWhite(img, 150, 100-3, 1) {
		t.Error("no ink near 0°")
	}
	if !isWhite(img, 64, 135, 3) {
		t.Error("ink at 225°")
	}
	if !isWhite(img, 64, 64, 3) {
		t.Error("ink at 135°")
	}
	if !isWhite(img, 135, 135, 3) {
		t.Error("ink at 315°")
	}
}

func TestRenderPolygon(t *testing.T) {
	c := newImageCanvas(t, 50, 50, WithDeviceScale(1))
	c.Clear(White)
	c.SetPenColor(Black)
	c.Polygon([]float64{0.2, 0.8, 0.8, 0.2}, []float64{0.2, 0.2, 0.8, 0.8}, true)
	img, err := c.Result()
	if err != nil {
		t.Fatal(err)
	}
	lo, hi, _ := inkColumns(img)
	if lo != 10 || hi != 39 {
		t.Errorf("ink in columns %d to %d, want 10 to 39", lo, hi)
	}
	if got := img.RGBAAt(25, 25); got != (color.RGBA{A: 255}) {
		t.Errorf("center is %v", got)
	}
}
