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

// Package stddraw provides a simple immediate-mode drawing canvas.
//
// Shapes are given in a logical coordinate system, chosen with
// [Canvas.SetXScale] and [Canvas.SetYScale], which defaults to the unit
// square with the origin in the lower left corner. Every drawing call
// renders at once into a pixel buffer, which can be retrieved with
// [Canvas.Result].
//
// The pixel buffer has [Canvas.DeviceScale] device pixels per logical
// pixel along each axis. Shapes which would cover at most one device pixel
// in both directions are drawn as a single logical pixel, so that they
// remain visible.
//
// Example:
//
//	c, err := stddraw.New(512, 512)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Clear(stddraw.White)
//	c.SetPenColor(stddraw.BookBlue)
//	c.Circle(0.5, 0.5, 0.25, true)
//	img, err := c.Result()
package stddraw

import "seehuhn.de/go/stddraw/shaper"

// Default values for new canvases.
const (
	DefaultDeviceScale = 2
	DefaultPenRadius   = 0.002
	DefaultFont        = shaper.DefaultFont
	DefaultFontSize    = 16.0
)

// penReference is the canvas size in device pixels for which the pen
// radius is given. Pen sizes do not depend on the scale ranges.
const penReference = 512
