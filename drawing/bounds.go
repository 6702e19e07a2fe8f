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

package drawing

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dxf"
)

// Bounds is a backend which draws nothing but accumulates the
// bounding box of everything drawn on it, in world coordinates.
// Running a [Frontend] over a Bounds backend first is the usual way
// to choose the view window for a second, visible pass.
type Bounds struct {
	rect rect.Rect
	set  bool
}

var _ Backend = (*Bounds)(nil)

// BBox returns the accumulated bounding box.  The second return
// value is false if nothing has been drawn yet.
func (b *Bounds) BBox() (rect.Rect, bool) {
	return b.rect, b.set
}

func (b *Bounds) add(p dxf.Vec3) {
	r := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	if !b.set {
		b.rect = r
		b.set = true
	} else {
		b.rect.Extend(r)
	}
}

// DrawLine implements the [Backend] interface.
func (b *Bounds) DrawLine(start, end dxf.Vec3, p *Properties) error {
	b.add(start)
	b.add(end)
	return nil
}

// DrawPoint implements the [Backend] interface.
func (b *Bounds) DrawPoint(pt dxf.Vec3, p *Properties) error {
	b.add(pt)
	return nil
}

// DrawFilledPolygon implements the [Backend] interface.
func (b *Bounds) DrawFilledPolygon(points []dxf.Vec3, p *Properties) error {
	for _, q := range points {
		b.add(q)
	}
	return nil
}

// DrawText implements the [Backend] interface.  The text box size is
// estimated from the number of characters.
func (b *Bounds) DrawText(text string, mid dxf.Vec3, height, rotation float64, p *Properties) error {
	w := 0.6 * height * float64(len([]rune(text)))
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	ux, uy := cos*w/2, sin*w/2
	vx, vy := -sin*height/2, cos*height/2
	b.add(dxf.Vec3{X: mid.X - ux - vx, Y: mid.Y - uy - vy, Z: mid.Z})
	b.add(dxf.Vec3{X: mid.X + ux - vx, Y: mid.Y + uy - vy, Z: mid.Z})
	b.add(dxf.Vec3{X: mid.X + ux + vx, Y: mid.Y + uy + vy, Z: mid.Z})
	b.add(dxf.Vec3{X: mid.X - ux + vx, Y: mid.Y - uy + vy, Z: mid.Z})
	return nil
}
