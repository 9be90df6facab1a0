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

// Package raster converts paths into anti-aliased pixel coverage.
//
// Coverage is the fraction of a pixel's area covered by the painted
// region, from 0 (outside) to 1 (inside). It is delivered one scanline at a
// time through an emit callback, so that the caller decides how to composite.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of scanline y, starting at column xMin.
// The coverage slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer turns paths into coverage values. Internal buffers are kept
// between calls, so a single instance should be reused.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space. A non-positive width
	// selects the thinnest line the device can show.
	Width float64

	// Cap is the style of stroke end points.
	Cap graphics.LineCapStyle

	// Join is the style of stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins. Must be at least 1.
	MiterLimit float64

	cover  []float32 // cover change per pixel, reused as output
	area   []float32 // area within pixel
	edges  []edge
	active []int // indices into edges

	// device-space bounding box of edges
	bbFirst        bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64

	// path walking state, in user space
	subpathStart vec.Vec2
	current      vec.Vec2
	subpathOpen  bool

	// stroke buffers, in user space
	flat       []vec.Vec2 // flattened subpath vertices, contiguous
	flatStarts []int
	flatClosed []bool
	polys      []vec.Vec2 // outline polygons, contiguous
	polyStarts []int
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// PDF default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// FillNonZero paints the interior of p under the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.collectPathEdges(p)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd paints the interior of p under the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.collectPathEdges(p)
	r.scan(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bbFirst = true
}

// collectPathEdges flattens p and stores its edges in device space.
func (r *Rasterizer) collectPathEdges(p *path.Data) {
	r.resetEdges()
	r.subpathOpen = false
	r.walk(p, r.addEdge, r.closeFill)
	if r.subpathOpen {
		r.closeFill(false)
	}
}

// closeFill adds the closing edge of the current subpath. Fills close
// every subpath, explicitly closed or not.
func (r *Rasterizer) closeFill(bool) {
	if r.current != r.subpathStart {
		r.addEdge(r.current, r.subpathStart)
	}
}

// walk visits the segments of p in user space. Curves are flattened.
// closeSub is called when a subpath ends, with closed=true for an explicit
// close and closed=false when a new subpath starts.
func (r *Rasterizer) walk(p *path.Data, line func(a, b vec.Vec2), closeSub func(closed bool)) {
	if p == nil {
		return
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if r.subpathOpen {
				closeSub(false)
			}
			r.current = p.Coords[k]
			r.subpathStart = r.current
			r.subpathOpen = true
			k++
		case path.CmdLineTo:
			r.reopen()
			line(r.current, p.Coords[k])
			r.current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.reopen()
			r.flattenQuadratic(r.current, p.Coords[k], p.Coords[k+1], line)
			r.current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.reopen()
			r.flattenCubic(r.current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			r.current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if r.subpathOpen {
				closeSub(true)
				r.subpathOpen = false
			}
			r.current = r.subpathStart
		}
	}
}

// reopen starts a new subpath at the current point if a segment follows
// a close without an intervening move.
func (r *Rasterizer) reopen() {
	if !r.subpathOpen {
		r.subpathStart = r.current
		r.subpathOpen = true
	}
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength is the length of v after the linear part of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := &r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// addEdge stores the user-space segment a→b as a device-space edge.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p0 := r.toDevice(a)
	p1 := r.toDevice(b)

	if !finite(p0) || !finite(p1) {
		return
	}
	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	dxdy := (p1.X - p0.X) / dy

	// Rows outside the clip rectangle are never scanned. Cutting the edge
	// to them keeps the x-coordinates of far away vertices out of the
	// per-row arithmetic.
	yLo, yHi := r.Clip.LLy-1, r.Clip.URy+1
	if max(p0.Y, p1.Y) <= yLo || min(p0.Y, p1.Y) >= yHi {
		return
	}
	q0 := cutY(p0, p1, dxdy, yLo, yHi)
	q1 := cutY(p1, p0, dxdy, yLo, yHi)
	p0, p1 = q0, q1

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: dxdy,
	})

	if r.bbFirst {
		r.bbXMin, r.bbXMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.bbYMin, r.bbYMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.bbFirst = false
		return
	}
	r.bbXMin = min(r.bbXMin, p0.X, p1.X)
	r.bbXMax = max(r.bbXMax, p0.X, p1.X)
	r.bbYMin = min(r.bbYMin, p0.Y, p1.Y)
	r.bbYMax = max(r.bbYMax, p0.Y, p1.Y)
}

// cutY moves the endpoint a of the edge a-b into the band yLo..yHi.
// The crossing is computed from whichever endpoint is closer to the band
// boundary.
func cutY(a, b vec.Vec2, dxdy, yLo, yHi float64) vec.Vec2 {
	var y float64
	switch {
	case a.Y < yLo:
		y = yLo
	case a.Y > yHi:
		y = yHi
	default:
		return a
	}
	near := a
	if math.Abs(b.Y-y) < math.Abs(a.Y-y) {
		near = b
	}
	return vec.Vec2{X: near.X + (y-near.Y)*dxdy, Y: y}
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(min(math.Ceil(math.Sqrt(dev/r.Flatness)), maxCurveSegments))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(min(math.Ceil(f), maxCurveSegments))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// bounds returns the integer pixel box of the collected edges, clamped to
// the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	// Clamp in float64 first: device coordinates far outside the clip
	// rectangle do not fit into an int.
	c := r.Clip
	xMin = max(int(math.Floor(max(r.bbXMin, c.LLx-1))), int(c.LLx))
	xMax = min(int(math.Floor(min(r.bbXMax, c.URx+1)))+1, int(c.URx))
	yMin = max(int(math.Floor(max(r.bbYMin, c.LLy-1))), int(c.LLy))
	yMax = min(int(math.Floor(min(r.bbYMax, c.URy+1)))+1, int(c.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Each edge deposits two quantities per pixel it crosses:
//
//	cover = ±dy           (signed vertical extent inside the pixel)
//	area  = cover·(1-fx)  (fx: mean horizontal position within the pixel)
//
// Integrating along a scanline, pixel i has signed coverage
// sum(cover[0:i]) + area[i]. Taking the absolute value clamped to 1 gives
// the nonzero rule; folding modulo 2 gives the even-odd rule.

// scan runs the active edge list over the bounding box and emits coverage.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if cov, off := trimZeros(r.cover); cov != nil {
			emit(y, xMin+off, cov)
		}
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers. It reports whether anything was added.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	// columns outside [xMin-1, xMax] all behave alike
	lo, hi := float64(xMin-1), float64(xMax)
	colA := int(math.Floor(min(max(min(xTop, xBot), lo), hi)))
	colB := int(math.Floor(min(max(max(xTop, xBot), lo), hi)))

	if colA == colB {
		xMid := (xTop + xBot) / 2
		r.deposit(colA, sign*float32(bot-top), xMid-float64(colA), xMin, xMax)
		return true
	}

	// The edge crosses several columns: split it at the column borders.
	// Everything left of the box collapses into one pseudo-column.
	colA = max(colA, xMin-1)
	colB = min(colB, xMax-1)
	for col := colA; col <= colB; col++ {
		left := float64(col)
		if col < xMin {
			left = math.Inf(-1)
		}
		ya := e.y0 + (left-e.x0)/e.dxdy
		yb := e.y0 + (float64(col+1)-e.x0)/e.dxdy
		s0 := max(min(ya, yb), top)
		s1 := min(max(ya, yb), bot)
		if s1 <= s0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((s0+s1)/2-e.y0)
		r.deposit(col, sign*float32(s1-s0), xMid-float64(col), xMin, xMax)
	}
	return true
}

// deposit records a crossing of column col. Crossings left of the box
// count as full coverage of its first pixel; crossings right of the box
// cannot influence any pixel inside it.
func (r *Rasterizer) deposit(col int, c float32, fx float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		i := col - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-fx)
	}
}

// integrateNonZero turns accumulated cover/area into coverage under the
// nonzero rule. The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area into coverage under the
// even-odd rule. The result overwrites cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// that contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment kept.
	zeroLengthThreshold = 1e-10

	// maxCurveSegments bounds the flattening of a single curve.
	maxCurveSegments = 1 << 12

	// collinearityThreshold is the smallest |sin θ| between two stroke
	// segments that still gets a join.
	collinearityThreshold = 1e-6
)
