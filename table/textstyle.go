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

package table

import (
	"seehuhn.de/go/dxf"
)

// TextStyle is a STYLE table record.
type TextStyle struct {
	// Handle is the record's handle (group code 5).
	Handle dxf.Handle

	// Owner is the handle of the owning table (group code 330).
	Owner dxf.Handle

	// Name is the text style name, e.g. "Standard".
	Name string

	// Font is the font file name, e.g. "txt" or "Arial.ttf".
	Font string

	// BigFont is the big font file name for asian scripts, usually
	// empty.
	BigFont string

	// Height is the fixed text height, or zero if the height is free.
	Height float64

	// WidthFactor stretches (>1) or compresses (<1) the glyphs.  The
	// zero value is treated as 1.
	WidthFactor float64

	// ObliqueAngle slants the glyphs, in degrees.
	ObliqueAngle float64
}

// Export writes the record to a tag stream.
func (s *TextStyle) Export(w *dxf.Writer) error {
	w.WriteStr(0, "STYLE")
	if w.Version > dxf.R12 {
		if s.Handle != 0 {
			w.WriteHandle(5, s.Handle)
		}
		if s.Owner != 0 {
			w.WriteHandle(330, s.Owner)
		}
		w.WriteStr(100, "AcDbSymbolTableRecord")
		w.WriteStr(100, "AcDbTextStyleTableRecord")
	}
	w.WriteStr(2, s.Name)
	w.WriteInt(70, 0)
	w.WriteFloat(40, s.Height)
	width := s.WidthFactor
	if width == 0 {
		width = 1
	}
	w.WriteFloat(41, width)
	w.WriteFloat(50, s.ObliqueAngle)
	w.WriteInt(71, 0)
	w.WriteFloat(42, 2.5) // last used height
	w.WriteStr(3, s.Font)
	w.WriteStr(4, s.BigFont)
	return w.Err
}
