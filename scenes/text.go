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

var textScenes = []Scene{
	{
		Name:   "anchors",
		Width:  256,
		Height: 128,
		Draw: func(c *stddraw.Canvas) {
			c.SetPenColor(stddraw.LightGray)
			c.Line(0.5, 0, 0.5, 1)

			c.SetPenColor(stddraw.Black)
			c.Text(0.5, 0.75, "left", stddraw.AnchorLeft, 0)
			c.Text(0.5, 0.5, "center", stddraw.AnchorCenter, 0)
			c.Text(0.5, 0.25, "right", stddraw.AnchorRight, 0)
		},
	},
	{
		Name:   "rotated",
		Width:  256,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			c.SetFont("Go-Medium", 14)
			for deg := 0.0; deg < 360; deg += 45 {
				c.Text(0.5, 0.5, "    rotate", stddraw.AnchorLeft, deg)
			}
		},
	},
	{
		Name:   "fonts",
		Width:  320,
		Height: 256,
		Draw: func(c *stddraw.Canvas) {
			names := []string{
				"Go-Regular", "Go-Bold", "Go-Italic", "Go-Bold-Italic",
				"Go-Medium", "Go-Mono", "Go-Mono-Bold", "Go-Smallcaps",
			}
			c.SetScale(0, float64(len(names)))
			for i, name := range names {
				c.SetFont(name, 18)
				c.Text(0.2, float64(len(names)-i)-0.7, name, stddraw.AnchorLeft, 0)
			}
		},
	},
}
