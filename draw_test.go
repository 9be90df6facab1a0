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
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestCollapseToPixel(t *testing.T) {
	cases := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"circle", func(c *Canvas) { c.Circle(0.5, 0.5, 0.0001, false) }},
		{"filled circle", func(c *Canvas) { c.Circle(0.5, 0.5, 0.0001, true) }},
		{"ellipse", func(c *Canvas) { c.Ellipse(0.5, 0.5, 0.0004, 0.0001, false) }},
		{"arc", func(c *Canvas) { c.Arc(0.5, 0.5, 0.0001, 0, 90) }},
		{"square", func(c *Canvas) { c.Square(0.5, 0.5, 0.0002, false) }},
		{"filled square", func(c *Canvas) { c.Square(0.5, 0.5, 0.0002, true) }},
		{"rectangle", func(c *Canvas) { c.Rectangle(0.5, 0.5, 0.0004, 0.0003, true) }},
		{"zero size", func(c *Canvas) { c.Circle(0.5, 0.5, 0, false) }},
	}
	want := rect.Rect{LLx: 512, LLy: 512, URx: 514, URy: 514}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newRecording(t, 512, 512)
			c.SetPenColor(Red)
			tc.draw(c)

			if len(rec.calls) != 1 || rec.calls[0].op != "FillRect" {
				t.Fatalf("got %s, want one FillRect", rec.ops())
			}
			got := rec.calls[0]
			if got.rect != want {
				t.Errorf("pixel %v, want %v", got.rect, want)
			}
			if got.col != Red {
				t.Errorf("pixel color %v, want red", got.col)
			}
		})
	}
}

// A shape collapses only if it is small in both directions.
func TestCollapseNeedsBothAxes(t *testing.T) {
	c, rec := newRecording(t, 512, 512)
	c.Ellipse(0.5, 0.5, 0.01, 0.0001, false)
	if rec.ops() != "StrokeEllipse" {
		t.Fatalf("got %s, want StrokeEllipse", rec.ops())
	}
	box := rec.calls[0].rect
	if w := box.URx - box.LLx; !nearly(w, 20.48) {
		t.Errorf("width %g, want 20.48", w)
	}
	if h := box.URy - box.LLy; !nearly(h, 0.2048) {
		t.Errorf("height %g, want 0.2048", h)
	}
}

func TestSmallCircleIsDrawn(t *testing.T) {
	c, rec := newRecording(t, 512, 512)
	c.Circle(0.5, 0.5, 0.001, false)
	if rec.ops() != "StrokeEllipse" {
		t.Fatalf("got %s, want StrokeEllipse", rec.ops())
	}
	box := rec.calls[0].rect
	if !nearly(box.LLx, 512-1.024) || !nearly(box.URx, 512+1.024) ||
		!nearly(box.LLy, 512-1.024) || !nearly(box.URy, 512+1.024) {
		t.Errorf("ellipse box %v", box)
	}
}

func TestPixelPosition(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	c.Circle(0.1234, 0.1234, 0, true)

	// only the x-coordinate is snapped to the device grid
	got := rec.calls[0].rect
	want := rect.Rect{LLx: 25, LLy: 24.68, URx: 27, URy: 26.68}
	if !nearly(got.LLx, want.LLx) || !nearly(got.LLy, want.LLy) ||
		!nearly(got.URx, want.URx) || !nearly(got.URy, want.URy) {
		t.Errorf("pixel %v, want %v", got, want)
	}
}

func TestFilledAndOutlined(t *testing.T) {
	cases := []struct {
		name string
		draw func(c *Canvas)
		want string
	}{
		{"circle", func(c *Canvas) { c.Circle(0.5, 0.5, 0.25, false) }, "StrokeEllipse"},
		{"filled circle", func(c *Canvas) { c.Circle(0.5, 0.5, 0.25, true) }, "FillEllipse"},
		{"ellipse", func(c *Canvas) { c.Ellipse(0.5, 0.5, 0.25, 0.1, false) }, "StrokeEllipse"},
		{"filled ellipse", func(c *Canvas) { c.Ellipse(0.5, 0.5, 0.25, 0.1, true) }, "FillEllipse"},
		{"square", func(c *Canvas) { c.Square(0.5, 0.5, 0.25, false) }, "StrokePath"},
		{"filled square", func(c *Canvas) { c.Square(0.5, 0.5, 0.25, true) }, "FillRect"},
		{"rectangle", func(c *Canvas) { c.Rectangle(0.5, 0.5, 0.25, 0.1, false) }, "StrokePath"},
		{"filled rectangle", func(c *Canvas) { c.Rectangle(0.5, 0.5, 0.25, 0.1, true) }, "FillRect"},
		{"line", func(c *Canvas) { c.Line(0, 0, 1, 1) }, "StrokeLine"},
		{"zero length line", func(c *Canvas) { c.Line(0.5, 0.5, 0.5, 0.5) }, "StrokeLine"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newRecording(t, 100, 100)
			tc.draw(c)
			if got := rec.ops(); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRectangleGeometry(t *testing.T) {
	c, rec := newRecording(t, 100, 50)
	c.Rectangle(0.5, 0.5, 0.25, 0.1, true)
	want := rect.Rect{LLx: 50, LLy: 40, URx: 150, URy: 60}
	got := rec.calls[0].rect
	if !nearly(got.LLx, want.LLx) || !nearly(got.LLy, want.LLy) ||
		!nearly(got.URx, want.URx) || !nearly(got.URy, want.URy) {
		t.Errorf("got %v, want %v", got, want)
	}

	rec.calls = nil
	c.Rectangle(0.5, 0.5, 0.25, 0.1, false)
	p := rec.calls[0].path
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(p.Cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(wantCmds))
	}
	for i, cmd := range wantCmds {
		if p.Cmds[i] != cmd {
			t.Errorf("command %d: got %v, want %v", i, p.Cmds[i], cmd)
		}
	}
	ll, ur := p.Coords[0], p.Coords[2]
	if !nearly(ll.X, 50) || !nearly(ll.Y, 40) || !nearly(ur.X, 150) || !nearly(ur.Y, 60) {
		t.Errorf("corners %v", p.Coords)
	}
}

func TestPoint(t *testing.T) {
	c, rec := newRecording(t, 512, 512)

	// default radius 0.002 is 1.024 device pixels
	c.Point(0.5, 0.5)
	if rec.ops() != "FillEllipse" {
		t.Fatalf("got %s, want FillEllipse", rec.ops())
	}
	box := rec.calls[0].rect
	if !nearly(box.URx-box.LLx, 2.048) || !nearly(box.LLx, 512-1.024) {
		t.Errorf("dot %v", box)
	}

	rec.calls = nil
	c.SetPenRadius(0.001)
	c.Point(0.5, 0.5)
	if rec.ops() != "FillRect" {
		t.Fatalf("got %s, want FillRect", rec.ops())
	}
	if got := rec.calls[0].rect; got != (rect.Rect{LLx: 512, LLy: 512, URx: 514, URy: 514}) {
		t.Errorf("pixel %v", got)
	}

	// the pen radius does not depend on the scale
	rec.calls = nil
	c.SetPenRadius(0.01)
	c.SetScale(0, 1000)
	c.Point(500, 500)
	box = rec.calls[0].rect
	if !nearly(box.URx-box.LLx, 10.24) {
		t.Errorf("dot width %g, want 10.24", box.URx-box.LLx)
	}
}

func TestLine(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	c.SetPenColor(Blue)
	c.Line(0, 0.25, 1, 0.75)
	got := rec.calls[0]
	if got.p0 != (vec.Vec2{X: 0, Y: 50}) || got.p1 != (vec.Vec2{X: 200, Y: 150}) {
		t.Errorf("line from %v to %v", got.p0, got.p1)
	}
	if got.col != Blue {
		t.Errorf("color %v, want blue", got.col)
	}
}

func TestPolygon(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	xs := []float64{0, 1, 0.5}
	ys := []float64{0, 0, 1}

	c.Polygon(xs, ys, true)
	c.Polygon(xs, ys, false)
	if rec.ops() != "FillPath,StrokePath" {
		t.Fatalf("got %s", rec.ops())
	}
	p := rec.calls[0].path
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(p.Cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(wantCmds))
	}
	wantPts := []vec.Vec2{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 100, Y: 200}}
	for i, pt := range wantPts {
		if p.Coords[i] != pt {
			t.Errorf("vertex %d: %v, want %v", i, p.Coords[i], pt)
		}
	}
}

func TestMalformedPolygon(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	col, radius := c.PenColor(), c.PenRadius()

	c.Polygon(nil, nil, true)
	c.Polygon([]float64{}, []float64{}, false)
	c.Polygon([]float64{0, 1, 2}, []float64{0, 1}, true)
	c.Polygon([]float64{0}, []float64{0, 1}, false)

	if len(rec.calls) != 0 {
		t.Errorf("malformed polygons drew %s", rec.ops())
	}
	if c.PenColor() != col || c.PenRadius() != radius {
		t.Error("malformed polygon changed the pen")
	}
}

func TestArc(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	c.Arc(0.5, 0.5, 0.25, 0, 90)

	if rec.ops() != "Save,ClipPath,StrokeEllipse,Restore" {
		t.Fatalf("got %s", rec.ops())
	}
	if rec.depth != 0 {
		t.Errorf("state depth %d after Arc", rec.depth)
	}

	clip := rec.calls[1].path
	center := vec.Vec2{X: 100, Y: 100}
	if clip.Coords[0] != center {
		t.Errorf("wedge starts at %v, want %v", clip.Coords[0], center)
	}
	// the wedge covers the first quadrant only
	first := clip.Coords[1].Sub(center)
	last := clip.Coords[len(clip.Coords)-1].Sub(center)
	if math.Abs(first.Y) > 1e-6 || first.X <= 0 {
		t.Errorf("wedge starts in direction %v", first)
	}
	if math.Abs(last.X) > 1e-6 || last.Y <= 0 {
		t.Errorf("wedge ends in direction %v", last)
	}

	box := rec.calls[2].rect
	if box != (rect.Rect{LLx: 50, LLy: 50, URx: 150, URy: 150}) {
		t.Errorf("ellipse %v", box)
	}
}

func TestArcNormalization(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	c.Arc(0.5, 0.5, 0.25, 90, -90)

	// -90 becomes 270, so the wedge covers the left half
	clip := rec.calls[1].path
	center := vec.Vec2{X: 100, Y: 100}
	last := clip.Coords[len(clip.Coords)-1].Sub(center)
	if math.Abs(last.X) > 1e-6 || last.Y >= 0 {
		t.Errorf("wedge ends in direction %v, want straight down", last)
	}
	for _, p := range clip.Coords[1:] {
		if p.X > center.X+1e-6 {
			t.Errorf("wedge point %v right of the center", p)
		}
	}
}

func TestArcExtremeAngles(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       string
	}{
		{"huge start", 1e20, 0, "Save,ClipPath,StrokeEllipse,Restore"},
		{"huge end", 0, -1e300, "Save,ClipPath,StrokeEllipse,Restore"},
		{"infinite start", math.Inf(1), 0, ""},
		{"infinite end", 0, math.Inf(-1), ""},
		{"NaN", math.NaN(), 90, ""},
		{"overflow", 1.5e308, -1.5e308, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newRecording(t, 100, 100)
			c.Arc(0.5, 0.5, 0.25, tc.start, tc.end)
			if got := rec.ops(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if rec.depth != 0 {
				t.Errorf("state depth %d", rec.depth)
			}
			if tc.want == "" {
				return
			}
			for _, p := range rec.calls[1].path.Coords {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) {
					t.Fatalf("wedge point %v", p)
				}
			}
		})
	}
}

// Ending a multiple of 360 degrees below the start gives an empty arc.
func TestArcWrapsToZeroSweep(t *testing.T) {
	c, rec := newRecording(t, 100, 100)
	c.Arc(0.5, 0.5, 0.25, 30, 30-720)
	clip := rec.calls[1].path
	if len(clip.Coords) != 2 {
		t.Errorf("wedge has %d points, want 2", len(clip.Coords))
	}
}

func TestWedge(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 20}

	// zero sweep gives an empty wedge
	p := wedge(center, 100, 30, 0)
	if len(p.Coords) != 2 {
		t.Errorf("zero sweep: %d points, want 2", len(p.Coords))
	}

	// sweeps beyond a full turn are clamped
	p = wedge(center, 100, 0, 720)
	if n := len(p.Coords) - 1; n != 360/maxChordDeg+1 {
		t.Errorf("full turn: %d arc points, want %d", n, 360/maxChordDeg+1)
	}
	for _, q := range p.Coords[1:] {
		if d := q.Sub(center).Length(); !nearly(d, 100) {
			t.Errorf("arc point at distance %g", d)
		}
	}
}

// panicRecorder panics while stroking an ellipse.
type panicRecorder struct {
	recorder
}

func (p *panicRecorder) StrokeEllipse(rect.Rect, color.Color) {
	panic("stroke failed")
}

func TestArcRestoresStateOnPanic(t *testing.T) {
	rec := &panicRecorder{}
	c, err := New(100, 100, WithSurface(func(w, h int) (Surface, error) {
		return rec, nil
	}))
	if err != nil {
		t.Fatal(err)
	}

	func() {
		defer func() { _ = recover() }()
		c.Arc(0.5, 0.5, 0.25, 0, 90)
	}()
	if rec.depth != 0 {
		t.Errorf("state depth %d after panic", rec.depth)
	}
	if rec.ops() != "Save,ClipPath,Restore" {
		t.Errorf("got %s", rec.ops())
	}
}

func TestClear(t *testing.T) {
	c, rec := newRecording(t, 300, 200, WithDeviceScale(3))
	c.SetScale(-5, 5)
	c.Clear(White)

	if rec.ops() != "Clear" {
		t.Fatalf("got %s", rec.ops())
	}
	if got := rec.calls[0].col; got != White {
		t.Errorf("color %v, want white", got)
	}
}
