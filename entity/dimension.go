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

// The dimension types, stored in the low three bits of the Type field
// of a [Dimension].
const (
	TypeRotated   = 0
	TypeAligned   = 1
	TypeAngular   = 2
	TypeDiameter  = 3
	TypeRadius    = 4
	TypeAngular3P = 5
	TypeOrdinate  = 6
)

// Flags stored in the upper bits of the Type field of a [Dimension].
const (
	// TypeBlockUnique indicates that the geometry block is referenced
	// by this dimension only.
	TypeBlockUnique = 32

	// TypeOrdinateX marks an ordinate dimension as measuring along
	// the x-axis.
	TypeOrdinateX = 64

	// TypeUserTextPos indicates that the text has been placed
	// manually at TextMidpoint.
	TypeUserTextPos = 128
)

// Dimension is a dimension entity.  The visible geometry of a
// dimension is not part of the entity itself: it lives in a separate
// block, created by a dimension renderer, whose name is stored in the
// Geometry field.
type Dimension struct {
	Common

	// Geometry is the name of the block holding the rendered
	// dimension geometry (group code 2).
	Geometry string

	// Style is the name of the dimension style (group code 3).  The
	// empty string stands for "Standard".
	Style string

	// Defpoint is the definition point in world coordinates (group
	// codes 10, 20, 30).  For linear dimensions this is the point
	// where the dimension line meets the second extension line, and
	// rendering overwrites it with the computed value.
	Defpoint dxf.Vec3

	// TextMidpoint is the middle point of the dimension text in
	// object coordinates (group codes 11, 21, 31).  If nil, the
	// renderer computes the text position from the style and stores
	// it here.
	TextMidpoint *dxf.Vec3

	// Type is the dimension type in the low three bits, combined with
	// the Type... flags (group code 70).
	Type int

	// Text is the dimension text override (group code 1).  The empty
	// string and "<>" stand for the measurement text, a single space
	// suppresses the text.
	Text string

	// TextRotation is the rotation angle of the dimension text away
	// from its default orientation, in degrees (group code 53).
	TextRotation float64

	// Defpoint2 is the origin of the first extension line in world
	// coordinates (group codes 13, 23, 33).
	Defpoint2 dxf.Vec3

	// Defpoint3 is the origin of the second extension line in world
	// coordinates (group codes 14, 24, 34).
	Defpoint3 dxf.Vec3

	// Angle is the rotation angle of a linear dimension in degrees
	// (group code 50).
	Angle float64

	// Oblique is the oblique angle of the extension lines in degrees
	// (group code 52).
	Oblique float64

	// Extrusion is the extrusion direction (group codes 210, 220,
	// 230).  A nil value stands for the world z-axis.
	Extrusion *dxf.Vec3

	// Override holds the style overrides attached to this dimension,
	// keyed by DIMSTYLE field name.  In DXF files the overrides are
	// stored as extended data; use [seehuhn.de/go/dxf/table.EncodeOverride]
	// to obtain the corresponding tags.
	Override map[string]any
}

// DimType returns the dimension type with all flag bits masked off.
func (d *Dimension) DimType() int {
	return d.Type & 7
}

// EntityType returns "DIMENSION".
// This implements the [Entity] interface.
func (d *Dimension) EntityType() string {
	return "DIMENSION"
}

func (d *Dimension) Encode(w *dxf.Writer) error {
	d.Common.encode(w, "DIMENSION", "AcDbDimension")
	w.WriteStr(2, d.Geometry)
	w.WritePoint(10, d.Defpoint)
	if d.TextMidpoint != nil {
		w.WritePoint(11, *d.TextMidpoint)
	}
	w.WriteInt(70, d.Type)
	if d.Text != "" {
		w.WriteStr(1, d.Text)
	}
	if d.TextRotation != 0 {
		w.WriteFloat(53, d.TextRotation)
	}
	if d.Extrusion != nil {
		w.WritePoint(210, *d.Extrusion)
	}
	style := d.Style
	if style == "" {
		style = "Standard"
	}
	w.WriteStr(3, style)
	switch d.DimType() {
	case TypeRotated, TypeAligned:
		if w.Version >= dxf.R2000 {
			w.WriteStr(100, "AcDbAlignedDimension")
		}
		w.WritePoint(13, d.Defpoint2)
		w.WritePoint(14, d.Defpoint3)
		if d.Angle != 0 {
			w.WriteFloat(50, d.Angle)
		}
		if d.Oblique != 0 {
			w.WriteFloat(52, d.Oblique)
		}
		if d.DimType() == TypeRotated && w.Version >= dxf.R2000 {
			w.WriteStr(100, "AcDbRotatedDimension")
		}
	}
	return w.Err
}
