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
	"fmt"

	"github.com/pkg/errors"

	"seehuhn.de/go/stddraw/shaper"
)

// TextAnchor selects which part of a text line is placed at the given
// x-coordinate.
type TextAnchor int

const (
	AnchorCenter TextAnchor = iota
	AnchorLeft
	AnchorRight
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	default:
		return fmt.Sprintf("TextAnchor(%d)", int(a))
	}
}

// offset returns the distance from the start of a line of the given width
// to its anchor point.
func (a TextAnchor) offset(width float64) float64 {
	switch a {
	case AnchorLeft:
		return 0
	case AnchorRight:
		return width
	default:
		return width / 2
	}
}

// Text draws s in the current font and pen color, with the baseline at y.
// The anchor determines the horizontal placement relative to x. A non-zero
// rotation turns the text counter-clockwise around the anchor point.
//
// Text which cannot be shaped is not drawn. Unknown font names fall back
// to [DefaultFont].
func (c *Canvas) Text(x, y float64, s string, anchor TextAnchor, degrees float64) {
	size := c.fontSize * float64(c.scale)
	line, err := c.shaper.Shape(s, c.fontName, size)
	if errors.Is(err, shaper.ErrUnknownFont) && c.fontName != DefaultFont {
		Logger().Warn("unknown font, using default",
			"font", c.fontName, "default", DefaultFont)
		line, err = c.shaper.Shape(s, DefaultFont, size)
	}
	if err != nil {
		Logger().Warn("text dropped", "text", s, "font", c.fontName, "error", err)
		return
	}

	xs, ys := c.ToDeviceX(x), c.ToDeviceY(y)
	off := anchor.offset(line.Width())

	c.surface.Save()
	defer c.surface.Restore()
	if degrees != 0 {
		c.surface.Transform(rotateAbout(xs, ys, degrees))
	}
	c.surface.FillPath(line.Outline(xs-off, ys), c.penColor)
}
