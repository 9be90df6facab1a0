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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is assembled from convex pieces: one quadrilateral per
// segment plus the cap and join geometry. All pieces are oriented
// counter-clockwise and filled together under the nonzero rule, so that
// overlaps are painted exactly once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenSubpaths(p)

	r.polys = r.polys[:0]
	r.polyStarts = r.polyStarts[:0]
	d := r.halfWidth()
	if d <= 0 {
		return
	}
	for i := range r.flatStarts {
		pts, closed := r.subpath(i)
		r.strokeSubpath(pts, closed, d)
	}

	r.resetEdges()
	for i := range r.polyStarts {
		poly := r.poly(i)
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(fillNonZero, emit)
}

// halfWidth returns half the stroke width in user space.
func (r *Rasterizer) halfWidth() float64 {
	if r.Width > 0 {
		return r.Width / 2
	}
	// hairline: half a device pixel
	m := &r.CTM
	det := math.Abs(m[0]*m[3] - m[1]*m[2])
	if det == 0 {
		return 0
	}
	return 0.5 / math.Sqrt(det)
}

// flattenSubpaths turns p into polylines. A subpath is recorded as soon
// as it has a segment, even a zero-length one, so that zero-length lines
// can still receive caps. Consecutive duplicate vertices are dropped.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.flat = r.flat[:0]
	r.flatStarts = r.flatStarts[:0]
	r.flatClosed = r.flatClosed[:0]
	r.subpathOpen = false

	inSubpath := false
	line := func(a, b vec.Vec2) {
		if !inSubpath {
			r.flatStarts = append(r.flatStarts, len(r.flat))
			r.flatClosed = append(r.flatClosed, false)
			r.flat = append(r.flat, a)
			inSubpath = true
		}
		if b.Sub(r.flat[len(r.flat)-1]).Length() >= zeroLengthThreshold {
			r.flat = append(r.flat, b)
		}
	}
	closeSub := func(closed bool) {
		if !inSubpath {
			return
		}
		if closed {
			last := len(r.flatClosed) - 1
			r.flatClosed[last] = true
			start := r.flatStarts[last]
			if len(r.flat)-start > 1 && r.flat[len(r.flat)-1].Sub(r.flat[start]).Length() < zeroLengthThreshold {
				r.flat = r.flat[:len(r.flat)-1]
			}
		}
		inSubpath = false
	}
	r.walk(p, line, closeSub)
	closeSub(false)
}

// subpath returns the vertices of flattened subpath i.
func (r *Rasterizer) subpath(i int) ([]vec.Vec2, bool) {
	end := len(r.flat)
	if i+1 < len(r.flatStarts) {
		end = r.flatStarts[i+1]
	}
	return r.flat[r.flatStarts[i]:end], r.flatClosed[i]
}

// poly returns outline polygon i.
func (r *Rasterizer) poly(i int) []vec.Vec2 {
	end := len(r.polys)
	if i+1 < len(r.polyStarts) {
		end = r.polyStarts[i+1]
	}
	return r.polys[r.polyStarts[i]:end]
}

// strokeSubpath emits the outline pieces of one polyline.
// d is half the stroke width.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if n == 1 {
		// zero-length subpath: only the caps are visible
		switch r.Cap {
		case graphics.LineCapRound:
			r.addCircle(pts[0], d)
		case graphics.LineCapSquare:
			c := pts[0]
			r.addPoly(
				vec.Vec2{X: c.X - d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y + d},
				vec.Vec2{X: c.X - d, Y: c.Y + d},
			)
		}
		return
	}

	numSegs := n - 1
	if closed {
		numSegs = n
	}
	tangent := func(i int) vec.Vec2 {
		return unit(pts[(i+1)%n].Sub(pts[i]))
	}

	for i := range numSegs {
		a, b := pts[i], pts[(i+1)%n]
		off := normal(tangent(i)).Mul(d)
		r.addPoly(a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	}

	if closed {
		for i := range n {
			prev := (i - 1 + n) % n
			r.addJoin(pts[i], tangent(prev), tangent(i), d)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i], tangent(i-1), tangent(i), d)
	}
	r.addCap(pts[0], tangent(0).Mul(-1), d)
	r.addCap(pts[n-1], tangent(n-2), d)
}

// addCap adds the cap at end point p. t points away from the line.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		nd := normal(t).Mul(d)
		ext := p.Add(t.Mul(d))
		r.addPoly(p.Add(nd), ext.Add(nd), ext.Sub(nd), p.Sub(nd))
	}
}

// addJoin adds the corner geometry at p, where the tangent changes from
// t1 to t2. Join pieces sit on the outer side of the turn; the inner side
// is already covered by the overlapping segment bodies.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// A left turn has its outer side on the right, at -N.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	o1 := normal(t1).Mul(side * d)
	o2 := normal(t2).Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		cosHalf := math.Sqrt((1 + dot) / 2)
		const eps = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			bisector := unit(o1.Add(o2))
			tip := p.Add(bisector.Mul(d / cosHalf))
			r.addPoly(p, p.Add(o1), tip, p.Add(o2))
			return
		}
	}
	r.addPoly(p, p.Add(o1), p.Add(o2))
}

// addCircle adds a polygon approximating the circle of radius rad around c.
// The vertex count keeps the chord error within Flatness in device space.
func (r *Rasterizer) addCircle(c vec.Vec2, rad float64) {
	devR := max(r.deviceLength(vec.Vec2{X: rad}), r.deviceLength(vec.Vec2{Y: rad}))
	n := minCircleVertices
	if devR > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devR)
		if step > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}
	n = min(n, maxCircleVertices)

	start := len(r.polys)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, vec.Vec2{
			X: c.X + rad*math.Cos(phi),
			Y: c.Y + rad*math.Sin(phi),
		})
	}
	r.polyStarts = append(r.polyStarts, start)
}

// addPoly adds a convex polygon, reversed if necessary so that it runs
// counter-clockwise. Polygons without area are dropped.
func (r *Rasterizer) addPoly(pts ...vec.Vec2) {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(a) < zeroLengthThreshold {
		return
	}

	start := len(r.polys)
	if a > 0 {
		r.polys = append(r.polys, pts...)
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			r.polys = append(r.polys, pts[i])
		}
	}
	r.polyStarts = append(r.polyStarts, start)
}

// unit returns v scaled to length 1. The zero vector is returned as is.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90° counter-clockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

const (
	minCircleVertices = 8
	maxCircleVertices = 1 << 10
)
