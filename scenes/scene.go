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


// Package scenes contains drawing programs for the canvas.
//
// The scenes are used by the stddraw command and as end-to-end tests of
// the drawing primitives.
package scenes

import (
	"seehuhn.de/go/stddraw"
)

// Scene is a named drawing program.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in logical pixels
	Height int    // canvas height in logical pixels
	Draw   func(c *stddraw.Canvas)
}

// Render draws the scene on a new canvas.
// The caller must close the returned canvas.
func (s Scene) Render(opts ...stddraw.Option) (*stddraw.Canvas, error) {
	c, err := stddraw.New(s.Width, s.Height, opts...)
	if err != nil {
		return nil, err
	}
	c.Clear(stddraw.White)
	s.Draw(c)
	return c, nil
}
