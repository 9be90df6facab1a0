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

	"github.com/pkg/errors"

	"seehuhn.de/go/stddraw/shaper"
)

// Canvas is a drawing area with a logical coordinate system.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	scale         int

	surface Surface
	shaper  Shaper

	xMin, xMax float64
	yMin, yMax float64

	penColor  color.Color
	penRadius float64
	fontName  string
	fontSize  float64
}

// New allocates a canvas of width×height logical pixels.
//
// If the drawing surface cannot be created, the returned error wraps
// [ErrAllocation].
func New(width, height int, opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 || o.deviceScale < 1 {
		return nil, errors.Wrapf(ErrAllocation, "invalid size %dx%d at scale %d",
			width, height, o.deviceScale)
	}
	w := width * o.deviceScale
	h := height * o.deviceScale
	s, err := o.newSurface(w, h)
	if err != nil {
		return nil, errors.Wrapf(ErrAllocation, "%dx%d device pixels: %v", w, h, err)
	} else if s == nil {
		return nil, errors.Wrapf(ErrAllocation, "%dx%d device pixels", w, h)
	}

	sh := o.shaper
	if sh == nil {
		sh = builtinShaper{shaper.New()}
	}

	c := &Canvas{
		width:    width,
		height:   height,
		scale:    o.deviceScale,
		surface:  s,
		shaper:   sh,
		xMin:     0,
		xMax:     1,
		yMin:     0,
		yMax:     1,
		penColor: Black,
		fontName: DefaultFont,
		fontSize: DefaultFontSize,
	}
	c.SetPenRadius(DefaultPenRadius)

	Logger().Debug("canvas created",
		"width", width, "height", height, "scale", o.deviceScale)
	return c, nil
}

// Width returns the width of the canvas in logical pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in logical pixels.
func (c *Canvas) Height() int { return c.height }

// DeviceScale returns the number of device pixels per logical pixel.
func (c *Canvas) DeviceScale() int { return c.scale }

// Close frees the pixel buffer, if the surface supports this.
// The canvas must not be used for drawing afterwards.
func (c *Canvas) Close() {
	if r, ok := c.surface.(interface{ Release() }); ok {
		r.Release()
	}
}
