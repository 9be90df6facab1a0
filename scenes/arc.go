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
	"image/color"

	"seehuhn.de/go/stddraw"
)

var arcScenes = []Scene{
	{
		Name:   "quadrants",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetPenRadius(0.005)
			colors := []color.Color{stddraw.Red, stddraw.Green, stddraw.Blue, stddraw.Magenta}
			for i, col := range colors {
				c.SetPenColor(col)
				start := float64(90 * i)
				c.Arc(0.5, 0.5, 0.2+0.05*float64(i), start, start+90)
			}
		},
	},
	{
		Name:   "wrap",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetPenRadius(0.008)
			c.SetPenColor(stddraw.BookRed)
			// the end angle is below the start and is moved up by 360
			c.Arc(0.5, 0.5, 0.3, 300, 60)
			c.SetPenColor(stddraw.BookBlue)
			c.Arc(0.5, 0.5, 0.2, 90, -90)
		},
	},
	{
		Name:   "full",
		Width:  128,
		Height: 128,
		Draw: func(c *stddraw.Canvas) {
			c.Arc(0.5, 0.5, 0.4, 0, 360)
			c.Arc(0.5, 0.5, 0.3, 45, 45+720)
		},
	},
}
