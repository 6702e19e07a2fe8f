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
	"strconv"

	"seehuhn.de/go/dxf"
)

// Text is a single line of text.
//
// For left-aligned text the position is given by the Insert point
// alone.  All other alignments position the text relative to the
// second alignment point, which is set together with the alignment
// flags by [Text.SetPos].
type Text struct {
	Common

	// Insert is the first alignment point (group codes 10, 20, 30).
	Insert dxf.Vec3

	// AlignPoint is the second alignment point (group codes 11, 21,
	// 31).  It is only used for alignments other than "LEFT".
	AlignPoint *dxf.Vec3

	// Height is the text height in drawing units (group code 40).
	Height float64

	// Value is the text itself (group code 1).
	Value string

	// Rotation is the text rotation in degrees (group code 50).
	Rotation float64

	// Style is the name of the text style (group code 7).  The empty
	// string stands for "Standard".
	Style string

	// HAlign is the horizontal alignment flag (group code 72).
	HAlign int

	// VAlign is the vertical alignment flag (group code 73).
	VAlign int

	// Extrusion is the extrusion direction (group codes 210, 220,
	// 230).  A nil value stands for the world z-axis.
	Extrusion *dxf.Vec3
}

// The valid text alignments, mapping alignment names to the DXF
// horizontal and vertical justification flags.
var textAlignments = map[string][2]int{
	"LEFT":          {0, 0},
	"CENTER":        {1, 0},
	"RIGHT":         {2, 0},
	"ALIGNED":       {3, 0},
	"MIDDLE":        {4, 0},
	"FIT":           {5, 0},
	"BOTTOM_LEFT":   {0, 1},
	"BOTTOM_CENTER": {1, 1},
	"BOTTOM_RIGHT":  {2, 1},
	"MIDDLE_LEFT":   {0, 2},
	"MIDDLE_CENTER": {1, 2},
	"MIDDLE_RIGHT":  {2, 2},
	"TOP_LEFT":      {0, 3},
	"TOP_CENTER":    {1, 3},
	"TOP_RIGHT":     {2, 3},
}

// SetPos places the text at p using a named alignment, one of "LEFT",
// "CENTER", "RIGHT", "ALIGNED", "MIDDLE", "FIT", or the combinations
// "BOTTOM_LEFT" ... "TOP_RIGHT".
func (t *Text) SetPos(p dxf.Vec3, align string) error {
	a, ok := textAlignments[align]
	if !ok {
		return dxf.Error("invalid text alignment " + strconv.Quote(align))
	}
	t.HAlign, t.VAlign = a[0], a[1]
	t.Insert = p
	if t.HAlign != 0 || t.VAlign != 0 {
		q := p
		t.AlignPoint = &q
	} else {
		t.AlignPoint = nil
	}
	return nil
}

// EntityType returns "TEXT".
// This implements the [Entity] interface.
func (t *Text) EntityType() string {
	return "TEXT"
}

func (t *Text) Encode(w *dxf.Writer) error {
	t.Common.encode(w, "TEXT", "AcDbText")
	w.WritePoint(10, t.Insert)
	w.WriteFloat(40, t.Height)
	w.WriteStr(1, t.Value)
	if t.Rotation != 0 {
		w.WriteFloat(50, t.Rotation)
	}
	if t.Style != "" {
		w.WriteStr(7, t.Style)
	}
	if t.HAlign != 0 {
		w.WriteInt(72, t.HAlign)
	}
	if t.AlignPoint != nil {
		w.WritePoint(11, *t.AlignPoint)
	}
	if t.Extrusion != nil {
		w.WritePoint(210, *t.Extrusion)
	}
	// The vertical justification flag belongs to a second AcDbText
	// subclass in the DXF reference.
	if w.Version >= dxf.R2000 {
		w.WriteStr(100, "AcDbText")
	}
	if t.VAlign != 0 {
		w.WriteInt(73, t.VAlign)
	}
	return w.Err
}
