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

import "math"

// Axis selects a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// SetXScale sets the logical x-coordinates of the left and right canvas
// edges. The range is not validated: lo == hi leads to infinite device
// coordinates, lo > hi mirrors the canvas.
func (c *Canvas) SetXScale(lo, hi float64) {
	c.xMin, c.xMax = lo, hi
}

// SetYScale sets the logical y-coordinates of the bottom and top canvas
// edges. The range is not validated.
func (c *Canvas) SetYScale(lo, hi float64) {
	c.yMin, c.yMax = lo, hi
}

// SetScale sets the same logical range for both axes.
func (c *Canvas) SetScale(lo, hi float64) {
	c.SetXScale(lo, hi)
	c.SetYScale(lo, hi)
}

// XScale returns the logical x-range of the canvas.
func (c *Canvas) XScale() (lo, hi float64) {
	return c.xMin, c.xMax
}

// YScale returns the logical y-range of the canvas.
func (c *Canvas) YScale() (lo, hi float64) {
	return c.yMin, c.yMax
}

// ToDeviceX maps a logical x-coordinate to device pixels.
func (c *Canvas) ToDeviceX(x float64) float64 {
	return float64(c.width*c.scale) * (x - c.xMin) / (c.xMax - c.xMin)
}

// ToDeviceY maps a logical y-coordinate to device pixels, measured upwards
// from the bottom edge.
func (c *Canvas) ToDeviceY(y float64) float64 {
	return float64(c.height*c.scale) * (y - c.yMin) / (c.yMax - c.yMin)
}

// ToDeviceLength maps a logical length along the given axis to device
// pixels. Unlike the point mappings there is no offset, and the result
// does not change sign for mirrored ranges.
func (c *Canvas) ToDeviceLength(l float64, axis Axis) float64 {
	if axis == AxisY {
		return l * float64(c.height*c.scale) / math.Abs(c.yMax-c.yMin)
	}
	return l * float64(c.width*c.scale) / math.Abs(c.xMax-c.xMin)
}
