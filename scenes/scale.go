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


package scenes

import (
	"seehuhn.de/go/stddraw"
)

var scaleScenes = []Scene{
	{
		Name:   "function",
		Width:  384,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetXScale(-3, 3)
			c.SetYScale(-10, 30)
			c.SetPenColor(stddraw.Gray)
			c.Line(-3, 0, 3, 0)
			c.Line(0, -10, 0, 30)

			c.SetPenColor(stddraw.BookRed)
			c.SetPenRadius(0.006)
			for x := -3.0; x <= 3; x += 0.125 {
				c.Point(x, x*x*x-2*x)
			}
		},
	},
	{
		Name:   "mirrored",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			// the y-range is reversed, so the triangle points down
			c.SetYScale(1, 0)
			c.SetPenColor(stddraw.BookBlue)
			c.Polygon([]float64{0.2, 0.8, 0.5}, []float64{0.2, 0.2, 0.8}, true)
		},
	},
}

var tinyScenes = []Scene{
	{
		Name:   "collapse",
		Width:  128,
		Height: 128,
		Draw: func(c *stddraw.Canvas) {
			// shapes smaller than a device pixel become single pixels
			c.SetPenColor(stddraw.Red)
			for i := range 8 {
				x := 0.1 + 0.1*float64(i)
				c.Circle(x, 0.8, 0.0005, false)
				c.Square(x, 0.6, 0.0005, true)
				c.Arc(x, 0.4, 0.0005, 0, 180)
				c.Ellipse(x, 0.2, 0.002, 0.0005, false)
			}
		},
	},
}
