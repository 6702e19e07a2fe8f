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

package entity

import (
	"seehuhn.de/go/dxf"
)

// Arc is a circular arc.  The arc runs counter-clockwise from
// StartAngle to EndAngle.
type Arc struct {
	Common

	// Center is the center of the arc (group codes 10, 20, 30).
	Center dxf.Vec3

	// Radius is the radius of the arc (group code 40).
	Radius float64

	// StartAngle is the start angle in degrees (group code 50).
	StartAngle float64

	// EndAngle is the end angle in degrees (group code 51).
	EndAngle float64
}

// EntityType returns "ARC".
// This implements the [Entity] interface.
func (a *Arc) EntityType() string {
	return "ARC"
}

func (a *Arc) Encode(w *dxf.Writer) error {
	a.Common.encode(w, "ARC", "AcDbCircle")
	w.WritePoint(10, a.Center)
	w.WriteFloat(40, a.Radius)
	if w.Version >= dxf.R2000 {
		w.WriteStr(100, "AcDbArc")
	}
	w.WriteFloat(50, a.StartAngle)
	w.WriteFloat(51, a.EndAngle)
	return w.Err
}
