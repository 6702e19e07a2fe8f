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

// Insert is a block reference: a block's entities drawn at a given
// position, scale and rotation.
type Insert struct {
	Common

	// Block is the name of the referenced block (group code 2).
	Block string

	// Insert is the insertion point (group codes 10, 20, 30).
	Insert dxf.Vec3

	// XScale, YScale and ZScale are the scale factors along the block
	// axes (group codes 41, 42, 43).  Zero values stand for a scale
	// factor of one.
	XScale, YScale, ZScale float64

	// Rotation is the rotation angle in degrees (group code 50).
	Rotation float64

	// Extrusion is the extrusion direction (group codes 210, 220,
	// 230).  A nil value stands for the world z-axis.
	Extrusion *dxf.Vec3
}

// EntityType returns "INSERT".
// This implements the [Entity] interface.
func (i *Insert) EntityType() string {
	return "INSERT"
}

func (i *Insert) Encode(w *dxf.Writer) error {
	i.Common.encode(w, "INSERT", "AcDbBlockReference")
	w.WriteStr(2, i.Block)
	w.WritePoint(10, i.Insert)
	if i.XScale != 0 && i.XScale != 1 {
		w.WriteFloat(41, i.XScale)
	}
	if i.YScale != 0 && i.YScale != 1 {
		w.WriteFloat(42, i.YScale)
	}
	if i.ZScale != 0 && i.ZScale != 1 {
		w.WriteFloat(43, i.ZScale)
	}
	if i.Rotation != 0 {
		w.WriteFloat(50, i.Rotation)
	}
	if i.Extrusion != nil {
		w.WritePoint(210, *i.Extrusion)
	}
	return w.Err
}
