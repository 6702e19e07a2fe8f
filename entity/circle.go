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

// Circle is a full circle, given by center and radius.
type Circle struct {
	Common

	// Center is the center of the circle (group codes 10, 20, 30).
	Center dxf.Vec3

	// Radius is the radius of the circle (group code 40).
	Radius float64
}

// EntityType returns "CIRCLE".
// This implements the [Entity] interface.
func (c *Circle) EntityType() string {
	return "CIRCLE"
}

func (c *Circle) Encode(w *dxf.Writer) error {
	c.Common.encode(w, "CIRCLE", "AcDbCircle")
	w.WritePoint(10, c.Center)
	w.WriteFloat(40, c.Radius)
	return w.Err
}
