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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Surface is the drawing backend of a Canvas.
//
// All coordinates are device pixels, with the origin in the lower left
// corner and the y-axis pointing up. The default implementation is
// [seehuhn.de/go/stddraw/surface.Image].
type Surface interface {
	// Clear sets every pixel to col, replacing the previous contents.
	// The transformation and the clip region do not apply.
	Clear(col color.Color)

	FillRect(r rect.Rect, col color.Color)
	StrokeLine(p0, p1 vec.Vec2, col color.Color)

	// StrokeEllipse and FillEllipse draw the ellipse inscribed in r.
	StrokeEllipse(r rect.Rect, col color.Color)
	FillEllipse(r rect.Rect, col color.Color)

	StrokePath(p *path.Data, col color.Color)
	FillPath(p *path.Data, col color.Color)

	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)

	// Save and Restore push and pop the transformation, the clip region
	// and the line style.
	Save()
	Restore()

	// Transform applies m to all following coordinates, before the
	// current transformation.
	Transform(m matrix.Matrix)

	// ClipPath intersects the clip region with the interior of p.
	ClipPath(p *path.Data)

	// Snapshot returns a copy of the pixels drawn so far.
	Snapshot() (*image.RGBA, error)
}

// Shaper lays out text.
type Shaper interface {
	Shape(text, fontName string, size float64) (TextLine, error)
}

// TextLine is a shaped line of text.
type TextLine interface {
	// Width returns the advance width of the line.
	Width() float64

	// Outline returns the glyph outlines with the start of the baseline
	// at (x, y).
	Outline(x, y float64) *path.Data
}
