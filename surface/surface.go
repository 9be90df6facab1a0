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

// Package surface implements an in-memory raster drawing surface.
//
// Coordinates passed to an Image are device pixels with the origin in the
// lower left corner and the y-axis pointing up. The surface flips them to
// image rows internally, so that row 0 of a snapshot is the top edge.
package surface

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stddraw/internal/raster"
)

// MaxPixels is the largest number of pixels New will allocate.
const MaxPixels = 1 << 26

var (
	// ErrTooLarge is returned by New for buffers above MaxPixels.
	ErrTooLarge = errors.New("surface too large")

	// ErrReleased is returned when a released surface is read.
	ErrReleased = errors.New("surface released")
)

// Image is a drawing surface backed by a premultiplied RGBA buffer.
//
// An Image is not safe for concurrent use.
type Image struct {
	width, height int

	img   *image.RGBA
	r     *raster.Rasterizer
	state graphicsState
	stack []graphicsState
}

// graphicsState is the part of the surface state that Save and Restore
// manage.
type graphicsState struct {
	ctm       matrix.Matrix
	clip      *image.Alpha // nil means no clipping
	lineWidth float64
	lineCap   graphics.LineCapStyle
	lineJoin  graphics.LineJoinStyle
}

// New allocates a transparent surface of w×h pixels.
func New(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid surface size %dx%d", w, h)
	}
	if int64(w)*int64(h) > MaxPixels {
		return nil, errors.Wrapf(ErrTooLarge, "%dx%d pixels", w, h)
	}

	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	s := &Image{
		width:  w,
		height: h,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		r:      raster.NewRasterizer(clip),
		state: graphicsState{
			ctm:       matrix.Matrix{1, 0, 0, -1, 0, float64(h)},
			lineWidth: 1,
			lineCap:   graphics.LineCapButt,
			lineJoin:  graphics.LineJoinMiter,
		},
	}
	return s, nil
}

// Size returns the dimensions of the surface in pixels.
func (s *Image) Size() (w, h int) {
	return s.width, s.height
}

// Release frees the pixel buffer. Afterwards painting operations are
// ignored and Snapshot fails.
func (s *Image) Release() {
	s.img = nil
	s.stack = nil
	s.state.clip = nil
}

// Snapshot returns a copy of the current surface contents.
func (s *Image) Snapshot() (*image.RGBA, error) {
	if s.img == nil {
		return nil, ErrReleased
	}
	res := image.NewRGBA(s.img.Rect)
	copy(res.Pix, s.img.Pix)
	return res, nil
}

// SetLineWidth sets the stroke width in device pixels.
func (s *Image) SetLineWidth(w float64) {
	s.state.lineWidth = w
}

// SetLineCap sets the style of stroke end points.
func (s *Image) SetLineCap(c graphics.LineCapStyle) {
	s.state.lineCap = c
}

// SetLineJoin sets the style of stroke corners.
func (s *Image) SetLineJoin(j graphics.LineJoinStyle) {
	s.state.lineJoin = j
}

// Save pushes a copy of the graphics state onto the stack.
func (s *Image) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops the graphics state saved by the matching Save.
// Restore without a matching Save does nothing.
func (s *Image) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.state = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// Transform applies m to user space, before the current transformation.
func (s *Image) Transform(m matrix.Matrix) {
	s.state.ctm = concat(m, s.state.ctm)
}

// ClipPath intersects the clip region with the nonzero interior of p.
func (s *Image) ClipPath(p *path.Data) {
	if s.img == nil {
		return
	}
	mask := image.NewAlpha(s.img.Rect)
	old := s.state.clip
	s.setup()
	s.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := mask.Pix[y*mask.Stride+xMin:]
		for i, c := range coverage {
			a := c
			if old != nil {
				a *= float32(old.Pix[y*old.Stride+xMin+i]) / 255
			}
			row[i] = uint8(a*255 + 0.5)
		}
	})
	// Masks are never modified after creation, so saved states may share
	// them.
	s.state.clip = mask
}

// Clear replaces every pixel of the surface by col. The transformation
// and the clip region are ignored.
func (s *Image) Clear(col color.Color) {
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect fills the axis-aligned rectangle r.
func (s *Image) FillRect(r rect.Rect, col color.Color) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
	s.FillPath(p, col)
}

// StrokeLine strokes the straight segment from p0 to p1.
func (s *Image) StrokeLine(p0, p1 vec.Vec2, col color.Color) {
	s.StrokePath((&path.Data{}).MoveTo(p0).LineTo(p1), col)
}

// StrokeEllipse strokes the ellipse inscribed in r.
func (s *Image) StrokeEllipse(r rect.Rect, col color.Color) {
	s.StrokePath(ellipse(r), col)
}

// FillEllipse fills the ellipse inscribed in r.
func (s *Image) FillEllipse(r rect.Rect, col color.Color) {
	s.FillPath(ellipse(r), col)
}

// FillPath fills p using the nonzero winding rule.
func (s *Image) FillPath(p *path.Data, col color.Color) {
	if s.img == nil {
		return
	}
	s.setup()
	s.r.FillNonZero(p, s.painter(col))
}

// FillPathEvenOdd fills p using the even-odd rule.
func (s *Image) FillPathEvenOdd(p *path.Data, col color.Color) {
	if s.img == nil {
		return
	}
	s.setup()
	s.r.FillEvenOdd(p, s.painter(col))
}

// StrokePath strokes p with the current line width, cap and join.
func (s *Image) StrokePath(p *path.Data, col color.Color) {
	if s.img == nil {
		return
	}
	s.setup()
	s.r.Stroke(p, s.painter(col))
}

// setup copies the graphics state into the rasterizer.
func (s *Image) setup() {
	s.r.CTM = s.state.ctm
	s.r.Width = s.state.lineWidth
	s.r.Cap = s.state.lineCap
	s.r.Join = s.state.lineJoin
}

// ellipse returns a closed path approximating the ellipse inscribed in r,
// built from four cubic Bézier arcs.
func ellipse(r rect.Rect) *path.Data {
	cx := (r.LLx + r.URx) / 2
	cy := (r.LLy + r.URy) / 2
	rx := (r.URx - r.LLx) / 2
	ry := (r.URy - r.LLy) / 2
	kx := rx * kappa
	ky := ry * kappa

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// concat returns the transformation which first applies a, then b.
func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		b[0]*a[0] + b[2]*a[1],
		b[1]*a[0] + b[3]*a[1],
		b[0]*a[2] + b[2]*a[3],
		b[1]*a[2] + b[3]*a[3],
		b[0]*a[4] + b[2]*a[5] + b[4],
		b[1]*a[4] + b[3]*a[5] + b[5],
	}
}

// kappa is the control point distance for a quarter circle Bézier arc.
const kappa = 0.5522847498
