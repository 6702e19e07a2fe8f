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

package render

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/arrows"
	"seehuhn.de/go/dxf/document"
)

// geometry adds rendered entities to a dimension's geometry block.
// Construction happens in the two-dimensional coordinate system given
// by the UCS; on output, points are converted to world coordinates,
// and the insertion points of text and block references to object
// coordinates.
type geometry struct {
	block     *document.Block
	ucs       *dxf.UCS
	layer     string
	extrusion *dxf.Vec3 // non-nil when the UCS z-axis is tilted
}

func newGeometry(block *document.Block, ucs *dxf.UCS, layer string) *geometry {
	g := &geometry{block: block, ucs: ucs, layer: layer}
	if ucs.UZ != dxf.WorldZ {
		uz := ucs.UZ
		g.extrusion = &uz
	}
	return g
}

func (g *geometry) toWCS(p vec.Vec2) dxf.Vec3 {
	return g.ucs.ToWCS(dxf.FromXY(p))
}

func (g *geometry) toOCS(p vec.Vec2) dxf.Vec3 {
	return g.ucs.ToOCS(dxf.FromXY(p))
}

func (g *geometry) addLine(a, b vec.Vec2, color int, linetype string) {
	l := g.block.AddLine(g.toWCS(a), g.toWCS(b))
	l.Layer = g.layer
	l.Color = color
	l.Linetype = linetype
}

// extLine draws one extension line, from its origin near a measured
// point towards the dimension line endpoint at target.
func (g *geometry) extLine(origin, target vec.Vec2, offset, extension float64, color int, linetype string) {
	dir := target.Sub(origin).Normalize()
	a := origin.Add(dir.Mul(offset))
	b := target.Add(dir.Mul(extension))
	g.addLine(a, b, color, linetype)
}

// addDefpoint adds a reference point for object snap.
func (g *geometry) addDefpoint(p vec.Vec2) {
	pt := g.block.AddPoint(g.toWCS(p))
	pt.Layer = "DEFPOINTS"
}

// addArrow places an arrowhead with the tip at the given point and
// returns the point where the dimension line attaches to it.
func (g *geometry) addArrow(name string, tip vec.Vec2, size, rotation float64, color int) (vec.Vec2, error) {
	ref, _, err := g.block.AddArrowBlockref(name, g.toOCS(tip), size, g.ucs.ToOCSAngle(rotation))
	if err != nil {
		return vec.Vec2{}, err
	}
	ref.Color = color
	ref.Extrusion = g.extrusion

	p := arrows.ConnectionPoint(name, dxf.FromXY(tip), size, rotation)
	return p.XY(), nil
}

// addTick draws an oblique stroke across the dimension line.
func (g *geometry) addTick(tip vec.Vec2, size, rotation float64, color int) error {
	l := tickLayout{g: g, color: color}
	return arrows.Render(l, arrows.Oblique, dxf.FromXY(tip), size, rotation)
}

func (g *geometry) addText(value string, mid vec.Vec2, height, rotation float64, style string, color int) error {
	t := g.block.AddText(value)
	t.Layer = g.layer
	t.Height = height
	t.Style = style
	t.Color = color
	t.Rotation = g.ucs.ToOCSAngle(rotation)
	t.Extrusion = g.extrusion
	return t.SetPos(g.toOCS(mid), "MIDDLE_CENTER")
}

// tickLayout receives tick geometry in construction coordinates and
// adds it to the block in world coordinates.
type tickLayout struct {
	g     *geometry
	color int
}

func (t tickLayout) AddLine(start, end dxf.Vec3) {
	l := t.g.block.AddLine(t.g.ucs.ToWCS(start), t.g.ucs.ToWCS(end))
	l.Color = t.color
}

func (t tickLayout) AddSolid(corners [4]dxf.Vec3) {
	for i, p := range corners {
		corners[i] = t.g.ucs.ToWCS(p)
	}
	s := t.g.block.AddSolid(corners)
	s.Color = t.color
}

func (t tickLayout) AddCircle(center dxf.Vec3, radius float64) {
	c := t.g.block.AddCircle(t.g.ucs.ToWCS(center), radius)
	c.Color = t.color
}

func (t tickLayout) AddArc(center dxf.Vec3, radius, startAngle, endAngle float64) {
	a := t.g.block.AddArc(t.g.ucs.ToWCS(center), radius, startAngle, endAngle)
	a.Color = t.color
}
