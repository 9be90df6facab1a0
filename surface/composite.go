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

package surface

import (
	"image/color"

	"seehuhn.de/go/stddraw/internal/raster"
)

// painter returns an emit function which composites col over the
// destination, weighted by coverage and the clip mask.
func (s *Image) painter(col color.Color) raster.EmitFunc {
	// 16-bit premultiplied source
	sr, sg, sb, sa := col.RGBA()
	dst := s.img
	clip := s.state.clip

	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+4*xMin:]
		var mask []uint8
		if clip != nil {
			mask = clip.Pix[y*clip.Stride+xMin:]
		}
		for i, c := range coverage {
			if mask != nil {
				c *= float32(mask[i]) / 255
			}
			m := uint32(c*0xffff + 0.5)
			if m == 0 {
				continue
			}
			// source-over, as in image/draw with a uniform source and a mask
			a := 0xffff - sa*m/0xffff
			px := row[4*i : 4*i+4 : 4*i+4]
			px[0] = uint8((uint32(px[0])*0x101*a + sr*m) / 0xffff >> 8)
			px[1] = uint8((uint32(px[1])*0x101*a + sg*m) / 0xffff >> 8)
			px[2] = uint8((uint32(px[2])*0x101*a + sb*m) / 0xffff >> 8)
			px[3] = uint8((uint32(px[3])*0x101*a + sa*m) / 0xffff >> 8)
		}
	}
}
