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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// rectangle returns the outline of r as a closed path.
func rectangle(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// wedge returns the circular sector of radius reach around center, from
// startDeg counter-clockwise through sweepDeg degrees. Sweeps of a full
// turn or more give the whole disc.
//
// The arc is approximated by chords of at most 45°, so the sector
// contains the disc of radius reach·cos(22.5°) within its angular range.
func wedge(center vec.Vec2, reach, startDeg, sweepDeg float64) *path.Data {
	sweep := max(min(sweepDeg, 360), 0)
	n := int(math.Ceil(sweep / maxChordDeg))

	p := (&path.Data{}).MoveTo(center)
	for i := 0; i <= n; i++ {
		a := startDeg
		if n > 0 {
			a += sweep * float64(i) / float64(n)
		}
		sin, cos := math.Sincos(a * math.Pi / 180)
		p = p.LineTo(vec.Vec2{X: center.X + reach*cos, Y: center.Y + reach*sin})
	}
	return p.Close()
}

const maxChordDeg = 45

// rotateAbout returns the counter-clockwise rotation by deg degrees around
// (px, py), that is translate(-p), rotate, translate(p).
func rotateAbout(px, py, deg float64) matrix.Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		px - (cos*px - sin*py), py - (sin*px + cos*py),
	}
}
