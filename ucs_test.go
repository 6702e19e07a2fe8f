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

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestWorldUCS(t *testing.T) {
	u := WorldUCS()
	p := Vec3{X: 3, Y: -2, Z: 5}
	if got := u.ToWCS(p); got != p {
		t.Errorf("ToWCS(%v) = %v", p, got)
	}
	if got := u.ToOCS(p); got != p {
		t.Errorf("ToOCS(%v) = %v", p, got)
	}
}

func TestUCSTranslation(t *testing.T) {
	u := NewUCS(Vec3{X: 10, Y: 20}, Vec3{X: 1}, Vec3{Y: 1})
	got := u.ToWCS(Vec3{X: 1, Y: 2})
	want := Vec3{X: 11, Y: 22}
	if !vecNear(got, want) {
		t.Errorf("ToWCS = %v, want %v", got, want)
	}
	if u.UZ != WorldZ {
		t.Errorf("wrong z-axis %v", u.UZ)
	}
}

func TestUCSRotated(t *testing.T) {
	// x-axis rotated 90 degrees into the world y-axis
	u := NewUCS(Vec3{}, Vec3{Y: 1}, Vec3{X: -1})
	got := u.ToWCS(Vec3{X: 1})
	if !vecNear(got, Vec3{Y: 1}) {
		t.Errorf("ToWCS = %v", got)
	}
	if !vecNear(u.UZ, WorldZ) {
		t.Errorf("wrong z-axis %v", u.UZ)
	}
}

func TestUCSTilted(t *testing.T) {
	// drawing plane is the world xz-plane, extrusion along -y
	u := NewUCS(Vec3{}, Vec3{X: 1}, Vec3{Z: 1})
	if vecNear(u.UZ, WorldZ) {
		t.Fatal("expected tilted z-axis")
	}

	p := Vec3{X: 2, Y: 3}
	w := u.ToWCS(p)
	if !vecNear(w, Vec3{X: 2, Z: 3}) {
		t.Errorf("ToWCS = %v", w)
	}

	// OCS round trip preserves the world position
	o := NewOCS(u.UZ)
	q := u.ToOCS(p)
	if !vecNear(o.ToWCS(q), w) {
		t.Errorf("OCS round trip: %v != %v", o.ToWCS(q), w)
	}
}

func TestToOCSAngle(t *testing.T) {
	u := WorldUCS()
	if got := u.ToOCSAngle(30); math.Abs(got-30) > 1e-9 {
		t.Errorf("ToOCSAngle(30) = %g, want 30", got)
	}

	// an in-plane rotation shifts all angles
	u = NewUCS(Vec3{}, Vec3{Y: 1}, Vec3{X: -1})
	if got := u.ToOCSAngle(0); math.Abs(got-90) > 1e-9 {
		t.Errorf("ToOCSAngle(0) = %g, want 90", got)
	}

	// a vertical plane, extruded along the world y-axis
	u = NewUCS(Vec3{}, Vec3{Z: 1}, Vec3{X: 1})
	if got := u.ToOCSAngle(0); math.Abs(got-90) > 1e-9 {
		t.Errorf("ToOCSAngle(0) = %g, want 90", got)
	}
	if got := u.ToOCSAngle(90); math.Abs(got-180) > 1e-9 {
		t.Errorf("ToOCSAngle(90) = %g, want 180", got)
	}
}

func TestOCSAxes(t *testing.T) {
	for _, ext := range []Vec3{
		{Z: 1},
		{Z: -1},
		{X: 1},
		{X: 0.01, Y: 0.005, Z: 1},
		{X: 1, Y: 2, Z: 3},
	} {
		o := NewOCS(ext)
		// axes are orthonormal
		for _, x := range []float64{
			o.ax.Length(), o.ay.Length(), o.az.Length(),
		} {
			if math.Abs(x-1) > 1e-9 {
				t.Errorf("extrusion %v: axis length %g", ext, x)
			}
		}
		for _, x := range []float64{
			o.ax.Dot(o.ay), o.ay.Dot(o.az), o.az.Dot(o.ax),
		} {
			if math.Abs(x) > 1e-9 {
				t.Errorf("extrusion %v: axes not orthogonal", ext)
			}
		}

		p := Vec3{X: 1, Y: -2, Z: 0.5}
		if got := o.ToWCS(o.FromWCS(p)); !vecNear(got, p) {
			t.Errorf("extrusion %v: round trip %v != %v", ext, got, p)
		}
	}
}
