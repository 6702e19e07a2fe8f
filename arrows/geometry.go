// seehuhn.de/go/dxf - a library for reading and writing DXF files
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

package arrows

import (
	"math"
	"strconv"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/geom/vec"
)

// Layout receives the geometry of rendered arrowheads.
type Layout interface {
	AddLine(start, end dxf.Vec3)
	AddSolid(corners [4]dxf.Vec3)
	AddCircle(center dxf.Vec3, radius float64)
	AddArc(center dxf.Vec3, radius, startAngle, endAngle float64)
}

// Render draws an arrowhead into l.  The size is the length of the
// arrowhead in drawing units, rotation is the pointing direction in
// degrees.  The tip of the arrowhead is at insert.
func Render(l Layout, name string, insert dxf.Vec3, size, rotation float64) error {
	f, ok := renderers[Name(name)]
	if !ok {
		return dxf.Error("unknown arrowhead " + strconv.Quote(name))
	}
	f(l, placer{insert: insert, size: size, rotation: rotation})
	return nil
}

// ConnectionPoint returns the point where the dimension line attaches
// to an arrowhead of the given size placed at insert, with rotation
// being the pointing direction in degrees.  Arrowheads which do not
// cover the end of the line return insert unchanged.
func ConnectionPoint(name string, insert dxf.Vec3, size, rotation float64) dxf.Vec3 {
	switch Name(name) {
	case ClosedFilled, Closed, ClosedBlank, Open, Open30, Open90, BoxBlank, BoxFilled:
		a := rotation / 180 * math.Pi
		return insert.Sub(dxf.Vec3{X: math.Cos(a), Y: math.Sin(a)}.Mul(size))
	}
	return insert
}

// placer maps unit arrowhead coordinates to drawing coordinates.  Unit
// arrowheads point along the positive x-axis with the tip at the
// origin.
type placer struct {
	insert   dxf.Vec3
	size     float64
	rotation float64
}

func (p placer) pt(x, y float64) dxf.Vec3 {
	a := p.rotation / 180 * math.Pi
	sin, cos := math.Sin(a), math.Cos(a)
	x, y = x*p.size, y*p.size
	return p.insert.Add(dxf.Vec3{
		X: x*cos - y*sin,
		Y: x*sin + y*cos,
	})
}

var renderers = map[string]func(Layout, placer){
	ClosedFilled: func(l Layout, p placer) {
		// a triangle, expressed as a solid with the last corner doubled
		b := p.pt(-1, -1.0/6)
		l.AddSolid([4]dxf.Vec3{p.pt(0, 0), p.pt(-1, 1.0/6), b, b})
	},
	Closed: func(l Layout, p placer) {
		tip, a, b := p.pt(0, 0), p.pt(-1, 1.0/6), p.pt(-1, -1.0/6)
		l.AddLine(tip, a)
		l.AddLine(tip, b)
		l.AddLine(a, b)
		l.AddLine(p.pt(-1, 0), tip)
	},
	ClosedBlank: func(l Layout, p placer) {
		tip, a, b := p.pt(0, 0), p.pt(-1, 1.0/6), p.pt(-1, -1.0/6)
		l.AddLine(tip, a)
		l.AddLine(tip, b)
		l.AddLine(a, b)
	},
	Dot: func(l Layout, p placer) {
		l.AddCircle(p.pt(0, 0), 0.25*p.size)
	},
	DotSmall: func(l Layout, p placer) {
		l.AddCircle(p.pt(0, 0), 0.125*p.size)
	},
	DotBlank: func(l Layout, p placer) {
		l.AddCircle(p.pt(0, 0), 0.25*p.size)
	},
	Origin: func(l Layout, p placer) {
		l.AddCircle(p.pt(0, 0), 0.5*p.size)
	},
	Open: func(l Layout, p placer) {
		tip := p.pt(0, 0)
		l.AddLine(p.pt(-1, 1.0/3), tip)
		l.AddLine(p.pt(-1, -1.0/3), tip)
	},
	Open30: func(l Layout, p placer) {
		tip := p.pt(0, 0)
		y := math.Tan(15.0 / 180 * math.Pi)
		l.AddLine(p.pt(-1, y), tip)
		l.AddLine(p.pt(-1, -y), tip)
	},
	Open90: func(l Layout, p placer) {
		tip := p.pt(0, 0)
		l.AddLine(p.pt(-1, 1), tip)
		l.AddLine(p.pt(-1, -1), tip)
	},
	Oblique: func(l Layout, p placer) {
		l.AddLine(p.pt(-0.5, -0.5), p.pt(0.5, 0.5))
	},
	ArchTick: func(l Layout, p placer) {
		// a short thick stroke, drawn as a solid strip
		a, b := vec.Vec2{X: -0.5, Y: -0.5}, vec.Vec2{X: 0.5, Y: 0.5}
		n := b.Sub(a).Rot90().Normalize().Mul(0.07)
		l.AddSolid([4]dxf.Vec3{
			p.pt(a.X+n.X, a.Y+n.Y),
			p.pt(a.X-n.X, a.Y-n.Y),
			p.pt(b.X+n.X, b.Y+n.Y),
			p.pt(b.X-n.X, b.Y-n.Y),
		})
	},
	BoxBlank: func(l Layout, p placer) {
		a, b, c, d := p.pt(-0.25, -0.25), p.pt(0.25, -0.25), p.pt(0.25, 0.25), p.pt(-0.25, 0.25)
		l.AddLine(a, b)
		l.AddLine(b, c)
		l.AddLine(c, d)
		l.AddLine(d, a)
	},
	BoxFilled: func(l Layout, p placer) {
		l.AddSolid([4]dxf.Vec3{
			p.pt(-0.25, -0.25),
			p.pt(0.25, -0.25),
			p.pt(-0.25, 0.25),
			p.pt(0.25, 0.25),
		})
	},
	Integral: func(l Layout, p placer) {
		r := 0.3535 * p.size
		l.AddArc(p.pt(0.25, 0.25), r, 180+p.rotation, 270+p.rotation)
		l.AddArc(p.pt(-0.25, -0.25), r, p.rotation, 90+p.rotation)
	},
	None: func(l Layout, p placer) {},
}
