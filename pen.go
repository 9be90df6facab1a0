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

	"seehuhn.de/go/pdf/graphics"
)

// SetPenColor sets the color for all following drawing operations.
func (c *Canvas) SetPenColor(col color.Color) {
	c.penColor = col
}

// SetPenColorRGB sets an opaque pen color from 8-bit components.
// Components outside 0..255 are clamped.
func (c *Canvas) SetPenColorRGB(r, g, b int) {
	channel := func(v int) uint8 {
		return uint8(min(max(v, 0), 255))
	}
	c.penColor = color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// PenColor returns the current pen color.
func (c *Canvas) PenColor() color.Color {
	return c.penColor
}

// SetPenRadius sets the pen radius. The radius is relative to a canvas
// of 512 device pixels and does not depend on the scale ranges. Lines are
// drawn with round caps and joins.
func (c *Canvas) SetPenRadius(r float64) {
	c.penRadius = r
	c.surface.SetLineWidth(r * penReference)
	c.surface.SetLineCap(graphics.LineCapRound)
	c.surface.SetLineJoin(graphics.LineJoinRound)
}

// PenRadius returns the current pen radius.
func (c *Canvas) PenRadius() float64 {
	return c.penRadius
}

// SetFont sets the font for [Canvas.Text]. The size is given in logical
// pixels.
func (c *Canvas) SetFont(name string, size float64) {
	c.fontName = name
	c.fontSize = size
}

// Font returns the current font name and size.
func (c *Canvas) Font() (name string, size float64) {
	return c.fontName, c.fontSize
}
