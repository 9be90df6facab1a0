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

package shaper

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Line is a shaped line of text.
type Line struct {
	width   float64
	outline *path.Data // glyph outlines, origin on the baseline
}

// Width returns the advance width of the line.
func (l *Line) Width() float64 {
	return l.width
}

// Outline returns the glyph outlines with the start of the baseline at
// (x, y). The y-axis points up.
func (l *Line) Outline(x, y float64) *path.Data {
	res := &path.Data{
		Cmds:   append([]path.Command(nil), l.outline.Cmds...),
		Coords: make([]vec.Vec2, len(l.outline.Coords)),
	}
	for i, p := range l.outline.Coords {
		res.Coords[i] = vec.Vec2{X: p.X + x, Y: p.Y + y}
	}
	return res
}

// IsEmpty reports whether the line has no visible glyphs.
func (l *Line) IsEmpty() bool {
	return len(l.outline.Cmds) == 0
}

// addGlyph appends the contours of one glyph to the outline. Segment
// coordinates are in font units; they are scaled by scale and moved to
// the glyph origin (ox, oy).
func (l *Line) addGlyph(segs []font.Segment, ox, oy, scale float64) {
	pt := func(p ot.SegmentPoint) vec.Vec2 {
		return vec.Vec2{
			X: ox + float64(p.X)*scale,
			Y: oy + float64(p.Y)*scale,
		}
	}

	p := l.outline
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			p = p.MoveTo(pt(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			p = p.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			p = p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			p = p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p = p.Close()
	}
	l.outline = p
}
