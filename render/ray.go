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
	"math"

	"seehuhn.de/go/geom/vec"
)

// ray is an infinite construction line through a point.
type ray struct {
	at  vec.Vec2
	dir vec.Vec2 // unit length
}

// newRay creates the ray through p in the direction given by angle,
// in degrees.
func newRay(p vec.Vec2, angle float64) ray {
	a := angle / 180 * math.Pi
	return ray{
		at:  p,
		dir: vec.Vec2{X: math.Cos(a), Y: math.Sin(a)},
	}
}

// intersect returns the intersection point of r and s.  The second
// return value is false if the rays are parallel.
func (r ray) intersect(s ray) (vec.Vec2, bool) {
	d := crossZ(r.dir, s.dir)
	if math.Abs(d) < 1e-12 {
		return vec.Vec2{}, false
	}
	t := crossZ(s.at.Sub(r.at), s.dir) / d
	return r.at.Add(r.dir.Mul(t)), true
}

// crossZ returns the z-component of the cross product of a and b.
func crossZ(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
