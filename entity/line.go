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

// Line is a straight line segment between two points in world
// coordinates.
type Line struct {
	Common

	// Start is the start point of the line (group codes 10, 20, 30).
	Start dxf.Vec3

	// End is the end point of the line (group codes 11, 21, 31).
	End dxf.Vec3
}

// EntityType returns "LINE".
// This implements the [Entity] interface.
func (l *Line) EntityType() string {
	return "LINE"
}

func (l *Line) Encode(w *dxf.Writer) error {
	l.Common.encode(w, "LINE", "AcDbLine")
	w.WritePoint(10, l.Start)
	w.WritePoint(11, l.End)
	return w.Err
}
