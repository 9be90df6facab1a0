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
	"math"

	"seehuhn.de/go/stddraw"
)

var primitiveScenes = []Scene{
	{
		Name:   "points",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			for i, r := range []float64{0.001, 0.002, 0.005, 0.01, 0.02} {
				c.SetPenRadius(r)
				c.Point(0.1+0.2*float64(i), 0.5)
			}
		},
	},
	{
		Name:   "lines",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetPenColor(stddraw.BookBlue)
			for i := range 12 {
				sin, cos := math.Sincos(float64(i) * math.Pi / 12)
				c.Line(0.5-0.4*cos, 0.5-0.4*sin, 0.5+0.4*cos, 0.5+0.4*sin)
			}
		},
	},
	{
		Name:   "shapes",
		Width:  512,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetXScale(0, 4)
			c.SetYScale(0, 2)
			c.SetPenRadius(0.004)

			c.SetPenColor(stddraw.BookRed)
			c.Circle(0.5, 1.5, 0.35, false)
			c.Circle(0.5, 0.5, 0.35, true)

			c.SetPenColor(stddraw.BookBlue)
			c.Ellipse(1.5, 1.5, 0.4, 0.2, false)
			c.Ellipse(1.5, 0.5, 0.2, 0.4, true)

			c.SetPenColor(stddraw.PrincetonOrange)
			c.Square(2.5, 1.5, 0.3, false)
			c.Square(2.5, 0.5, 0.3, true)

			c.SetPenColor(stddraw.DarkGray)
			c.Rectangle(3.5, 1.5, 0.4, 0.2, false)
			c.Rectangle(3.5, 0.5, 0.2, 0.4, true)
		},
	},
	{
		Name:   "polygons",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetPenColor(stddraw.BookLightBlue)
			xs, ys := star(0.5, 0.5, 0.4, 5)
			c.Polygon(xs, ys, true)
			c.SetPenColor(stddraw.Black)
			c.Polygon(xs, ys, false)
		},
	},
	{
		Name:   "colors",
		Width:  256,
		Height: 64,
		Draw: func(c *stddraw.Canvas) {
			c.SetXScale(0, 8)
			for i := range 8 {
				v := i * 255 / 7
				c.SetPenColorRGB(v, 255-v, 128)
				c.Rectangle(float64(i)+0.5, 0.5, 0.5, 0.5, true)
			}
		},
	},
}

// star returns the vertices of a star polygon with n points, visiting
// every second vertex of the regular 2n-gon.
func star(cx, cy, r float64, n int) (xs, ys []float64) {
	for i := range 2 * n {
		rad := r
		if i%2 == 1 {
			rad = r * 0.4
		}
		sin, cos := math.Sincos(math.Pi/2 + float64(i)*math.Pi/float64(n))
		xs = append(xs, cx+rad*cos)
		ys = append(ys, cy+rad*sin)
	}
	return xs, ys
}
