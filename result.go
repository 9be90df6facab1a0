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
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Result returns a copy of the canvas contents at device resolution.
// Later drawing does not affect the returned image.
func (c *Canvas) Result() (*image.RGBA, error) {
	img, err := c.surface.Snapshot()
	if err != nil {
		Logger().Error("snapshot failed", "error", err)
		return nil, errors.Wrap(err, "canvas snapshot")
	}
	return img, nil
}

// ResultDownsampled returns the canvas contents resampled to the logical
// size of the canvas, using a Catmull-Rom filter.
func (c *Canvas) ResultDownsampled() (*image.RGBA, error) {
	img, err := c.Result()
	if err != nil || c.scale == 1 {
		return img, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
