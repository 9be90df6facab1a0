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

import "image/color"

// Named pen colors.
var (
	Black     color.Color = color.Gray{Y: 0}
	Blue      color.Color = color.RGBA{B: 255, A: 255}
	Cyan      color.Color = color.RGBA{G: 255, B: 255, A: 255}
	DarkGray  color.Color = color.Gray{Y: 85}
	Gray      color.Color = color.Gray{Y: 128}
	Green     color.Color = color.RGBA{G: 255, A: 255}
	LightGray color.Color = color.Gray{Y: 170}
	Magenta   color.Color = color.RGBA{R: 255, B: 255, A: 255}
	Orange    color.Color = color.RGBA{R: 255, G: 128, A: 255}
	Pink      color.Color = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	Red       color.Color = color.RGBA{R: 255, A: 255}
	White     color.Color = color.Gray{Y: 255}
	Yellow    color.Color = color.RGBA{R: 255, G: 255, A: 255}

	// Colors from "Introduction to Programming in Java" by Sedgewick and
	// Wayne.
	BookBlue        color.Color = color.RGBA{R: 9, G: 90, B: 166, A: 255}
	BookLightBlue   color.Color = color.RGBA{R: 103, G: 198, B: 243, A: 255}
	BookRed         color.Color = color.RGBA{R: 150, G: 35, B: 31, A: 255}
	PrincetonOrange color.Color = color.RGBA{R: 245, G: 128, B: 37, A: 255}
)
