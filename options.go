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
	"seehuhn.de/go/stddraw/shaper"
	"seehuhn.de/go/stddraw/surface"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := stddraw.New(512, 512, stddraw.WithDeviceScale(4))
type Option func(*options)

type options struct {
	deviceScale int
	newSurface  func(w, h int) (Surface, error)
	shaper      Shaper
}

func defaultOptions() options {
	return options{
		deviceScale: DefaultDeviceScale,
		newSurface:  newImageSurface,
	}
}

// WithDeviceScale sets the number of device pixels per logical pixel along
// each axis. The default is 2.
func WithDeviceScale(n int) Option {
	return func(o *options) {
		o.deviceScale = n
	}
}

// WithSurface replaces the default raster surface. The function is called
// once, with the device dimensions of the canvas.
func WithSurface(newSurface func(w, h int) (Surface, error)) Option {
	return func(o *options) {
		o.newSurface = newSurface
	}
}

// WithShaper replaces the default text shaper.
func WithShaper(s Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

func newImageSurface(w, h int) (Surface, error) {
	img, err := surface.New(w, h)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// builtinShaper adapts [shaper.Shaper] to the Shaper interface.
type builtinShaper struct {
	s *shaper.Shaper
}

func (b builtinShaper) Shape(text, fontName string, size float64) (TextLine, error) {
	l, err := b.s.Shape(text, fontName, size)
	if err != nil {
		return nil, err
	}
	return l, nil
}
