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

package dxf

import "math"

// WorldZ is the z-axis of the world coordinate system.
var WorldZ = Vec3{Z: 1}

// A UCS is a user coordinate system: the placement of construction
// coordinates within the world coordinate system.  The zero value is
// not valid; use [NewUCS] or [WorldUCS].
type UCS struct {
	Origin Vec3
	UX     Vec3
	UY     Vec3
	UZ     Vec3
}

// WorldUCS returns the identity coordinate system.
func WorldUCS() *UCS {
	return &UCS{
		UX: Vec3{X: 1},
		UY: Vec3{Y: 1},
		UZ: Vec3{Z: 1},
	}
}

// NewUCS creates a coordinate system from an origin and the directions
// of the x- and y-axis.  The axes are normalized, and the z-axis is
// chosen to form a right-handed system.
func NewUCS(origin, ux, uy Vec3) *UCS {
	x := ux.Normalize()
	z := ux.Cross(uy).Normalize()
	y := z.Cross(x)
	return &UCS{Origin: origin, UX: x, UY: y, UZ: z}
}

// ToWCS converts p from UCS coordinates to world coordinates.
func (u *UCS) ToWCS(p Vec3) Vec3 {
	return u.Origin.
		Add(u.UX.Mul(p.X)).
		Add(u.UY.Mul(p.Y)).
		Add(u.UZ.Mul(p.Z))
}

// ToOCS converts p from UCS coordinates into the object coordinate
// system of entities extruded along the UCS z-axis.
func (u *UCS) ToOCS(p Vec3) Vec3 {
	w := u.ToWCS(p)
	if u.UZ == WorldZ {
		return w
	}
	return NewOCS(u.UZ).FromWCS(w)
}

// ToOCSAngle converts a rotation angle in the xy-plane of the UCS
// into the corresponding angle in the object coordinate system of
// entities extruded along the UCS z-axis.  Angles are in degrees.
func (u *UCS) ToOCSAngle(deg float64) float64 {
	a := deg / 180 * math.Pi
	dir := u.UX.Mul(math.Cos(a)).Add(u.UY.Mul(math.Sin(a)))
	o := NewOCS(u.UZ).FromWCS(dir)
	return math.Atan2(o.Y, o.X) / math.Pi * 180
}

// An OCS is the object coordinate system defined by an extrusion
// direction.  The axes follow the arbitrary axis algorithm from the DXF
// reference.
type OCS struct {
	ax, ay, az Vec3
}

// NewOCS creates the object coordinate system for an extrusion
// direction.
func NewOCS(extrusion Vec3) *OCS {
	az := extrusion.Normalize()
	var ax Vec3
	if math.Abs(az.X) < 1.0/64 && math.Abs(az.Y) < 1.0/64 {
		ax = Vec3{Y: 1}.Cross(az).Normalize()
	} else {
		ax = Vec3{Z: 1}.Cross(az).Normalize()
	}
	ay := az.Cross(ax)
	return &OCS{ax: ax, ay: ay, az: az}
}

// FromWCS converts p from world coordinates into the object coordinate
// system.
func (o *OCS) FromWCS(p Vec3) Vec3 {
	return Vec3{X: p.Dot(o.ax), Y: p.Dot(o.ay), Z: p.Dot(o.az)}
}

// ToWCS converts p from the object coordinate system back to world
// coordinates.
func (o *OCS) ToWCS(p Vec3) Vec3 {
	return o.ax.Mul(p.X).Add(o.ay.Mul(p.Y)).Add(o.az.Mul(p.Z))
}
