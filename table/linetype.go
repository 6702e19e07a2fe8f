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
	"math"

	"seehuhn.de/go/dxf"
)

// Linetype is an LTYPE table record.
type Linetype struct {
	// Handle is the record's handle (group code 5).
	Handle dxf.Handle

	// Owner is the handle of the owning table (group code 330).
	Owner dxf.Handle

	// Name is the linetype name, e.g. "DASHED".
	Name string

	// Description is shown to users when they select a linetype.
	Description string

	// Pattern is the list of dash lengths.  Positive values are
	// strokes, negative values are gaps, and zero is a dot.  An empty
	// pattern gives a continuous line.
	Pattern []float64
}

// Export writes the record to a tag stream.
func (l *Linetype) Export(w *dxf.Writer) error {
	w.WriteStr(0, "LTYPE")
	if w.Version > dxf.R12 {
		if l.Handle != 0 {
			w.WriteHandle(5, l.Handle)
		}
		if l.Owner != 0 {
			w.WriteHandle(330, l.Owner)
		}
		w.WriteStr(100, "AcDbSymbolTableRecord")
		w.WriteStr(100, "AcDbLinetypeTableRecord")
	}
	w.WriteStr(2, l.Name)
	w.WriteInt(70, 0)
	w.WriteStr(3, l.Description)
	w.WriteInt(72, 65) // alignment code, always "A"
	w.WriteInt(73, len(l.Pattern))
	total := 0.0
	for _, dash := range l.Pattern {
		total += math.Abs(dash)
	}
	w.WriteFloat(40, total)
	for _, dash := range l.Pattern {
		w.WriteFloat(49, dash)
		if w.Version > dxf.R12 {
			w.WriteInt(74, 0)
		}
	}
	return w.Err
}
