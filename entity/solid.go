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

// Solid is a filled quadrilateral.
//
// The corners are stored in the DXF triangle-strip order: the filled
// outline runs through corners 0, 1, 3, 2.  A triangle is represented
// by repeating the last corner.
type Solid struct {
	Common

	// Corners holds the four corner points (group codes 10, 11, 12,
	// 13 with their y and z counterparts).
	Corners [4]dxf.Vec3
}

// EntityType returns "SOLID".
// This implements the [Entity] interface.
func (s *Solid) EntityType() string {
	return "SOLID"
}

func (s *Solid) Encode(w *dxf.Writer) error {
	s.Common.encode(w, "SOLID", "AcDbTrace")
	for i, p := range s.Corners {
		w.WritePoint(10+i, p)
	}
	return w.Err
}
