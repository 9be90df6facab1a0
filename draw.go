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
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Clear fills the whole canvas with col, discarding everything drawn so
// far. Translucent colors are stored as they are and are not blended with
// the previous contents.
func (c *Canvas) Clear(col color.Color) {
	c.surface.Clear(col)
}

// Point draws a dot of the current pen radius at (x, y).
func (c *Canvas) Point(x, y float64) {
	rp := c.penRadius * penReference
	if rp <= 1 {
		c.pixel(x, y)
		return
	}
	xs, ys := c.ToDeviceX(x), c.ToDeviceY(y)
	c.surface.FillEllipse(rect.Rect{
		LLx: xs - rp, LLy: ys - rp,
		URx: xs + rp, URy: ys + rp,
	}, c.penColor)
}

// Line draws the segment from (x0, y0) to (x1, y1).
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	p0 := vec.Vec2{X: c.ToDeviceX(x0), Y: c.ToDeviceY(y0)}
	p1 := vec.Vec2{X: c.ToDeviceX(x1), Y: c.ToDeviceY(y1)}
	c.surface.StrokeLine(p0, p1, c.penColor)
}

// Circle draws the circle of radius r around (x, y).
func (c *Canvas) Circle(x, y, r float64, filled bool) {
	c.Ellipse(x, y, r, r, filled)
}

// Ellipse draws the axis-aligned ellipse around (x, y) with horizontal
// semi-axis a and vertical semi-axis b.
func (c *Canvas) Ellipse(x, y, a, b float64, filled bool) {
	box, ok := c.shapeBox(x, y, a, b)
	if !ok {
		return
	}
	if filled {
		c.surface.FillEllipse(box, c.penColor)
	} else {
		c.surface.StrokeEllipse(box, c.penColor)
	}
}

// Arc draws the part of the circle of radius r around (x, y) between
// the angles startDeg and endDeg, counter-clockwise. If endDeg is smaller
// than startDeg, multiples of 360 are added to it. Nothing is drawn if
// an angle is not finite.
func (c *Canvas) Arc(x, y, r, startDeg, endDeg float64) {
	sweep := endDeg - startDeg
	if math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		Logger().Debug("arc dropped", "start", startDeg, "end", endDeg)
		return
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, 360)
		if sweep < 0 {
			sweep += 360
		}
	}

	box, ok := c.shapeBox(x, y, r, r)
	if !ok {
		return
	}
	center := vec.Vec2{X: (box.LLx + box.URx) / 2, Y: (box.LLy + box.URy) / 2}
	reach := 2 * (math.Hypot(float64(c.width*c.scale), float64(c.height*c.scale)) +
		max(box.URx-box.LLx, box.URy-box.LLy))

	c.surface.Save()
	defer c.surface.Restore()
	c.surface.ClipPath(wedge(center, reach, math.Mod(startDeg, 360), sweep))
	c.surface.StrokeEllipse(box, c.penColor)
}

// Square draws the axis-aligned square with half side length half around
// (x, y).
func (c *Canvas) Square(x, y, half float64, filled bool) {
	c.Rectangle(x, y, half, half, filled)
}

// Rectangle draws the axis-aligned rectangle around (x, y) with half
// width halfW and half height halfH.
func (c *Canvas) Rectangle(x, y, halfW, halfH float64, filled bool) {
	box, ok := c.shapeBox(x, y, halfW, halfH)
	if !ok {
		return
	}
	if filled {
		c.surface.FillRect(box, c.penColor)
	} else {
		c.surface.StrokePath(rectangle(box), c.penColor)
	}
}

// Polygon draws the closed polygon with vertices (xs[i], ys[i]).
// Nothing is drawn if the slices are empty or differ in length.
func (c *Canvas) Polygon(xs, ys []float64, filled bool) {
	if len(xs) != len(ys) || len(xs) == 0 {
		Logger().Debug("polygon dropped", "len(xs)", len(xs), "len(ys)", len(ys))
		return
	}

	p := (&path.Data{}).MoveTo(vec.Vec2{X: c.ToDeviceX(xs[0]), Y: c.ToDeviceY(ys[0])})
	for i := 1; i < len(xs); i++ {
		p = p.LineTo(vec.Vec2{X: c.ToDeviceX(xs[i]), Y: c.ToDeviceY(ys[i])})
	}
	p = p.Close()

	if filled {
		c.surface.FillPath(p, c.penColor)
	} else {
		c.surface.StrokePath(p, c.penColor)
	}
}

// shapeBox returns the device bounding box of a shape with the given
// logical half extents around (x, y). If the box is at most one device
// pixel wide and high, a single pixel is drawn instead and ok is false.
func (c *Canvas) shapeBox(x, y, halfW, halfH float64) (box rect.Rect, ok bool) {
	ws := c.ToDeviceLength(2*halfW, AxisX)
	hs := c.ToDeviceLength(2*halfH, AxisY)
	if ws <= 1 && hs <= 1 {
		c.pixel(x, y)
		return rect.Rect{}, false
	}

	xs, ys := c.ToDeviceX(x), c.ToDeviceY(y)
	box = rect.Rect{
		LLx: xs - ws/2, LLy: ys - hs/2,
		URx: xs + ws/2, URy: ys + hs/2,
	}
	return box, true
}

// pixel fills one logical pixel at (x, y) with the pen color. Only the
// x-coordinate is rounded to the device grid.
func (c *Canvas) pixel(x, y float64) {
	xs := math.Round(c.ToDeviceX(x))
	ys := c.ToDeviceY(y)
	s := float64(c.scale)
	c.surface.FillRect(rect.Rect{LLx: xs, LLy: ys, URx: xs + s, URy: ys + s}, c.penColor)
}
