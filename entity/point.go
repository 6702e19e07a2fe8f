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

// Point is a single point in world coordinates.  Dimension renderers
// use points on the "DEFPOINTS" layer to record definition points.
type Point struct {
	Common

	// Location is the position of the point (group codes 10, 20, 30).
	Location dxf.Vec3
}

// EntityType returns "POINT".
// This implements the [Entity] interface.
func (p *Point) EntityType() string {
	return "POINT"
}

func (p *Point) Encode(w *dxf.Writer) error {
	p.Common.encode(w, "POINT", "AcDbPoint")
	w.WritePoint(10, p.Location)
	return w.Err
}
