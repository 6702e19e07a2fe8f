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

// Package entity provides the drawable DXF entity types.
//
// Entities are plain structs.  The zero value of each type is a valid
// entity with all attributes at their DXF defaults.  Entities are
// placed either directly in a document or inside block definitions;
// dimension geometry consists of entities inside an anonymous block.
package entity

import (
	"seehuhn.de/go/dxf"
)

// AutoCAD color index values with special meaning.
const (
	ColorByBlock = 0
	ColorByLayer = 256
)

// Entity is a drawable DXF entity.
type Entity interface {
	// EntityType returns the DXF record type, e.g. "LINE".
	EntityType() string

	// GetCommon returns the attributes shared by all entity types.
	GetCommon() *Common

	// Encode writes the entity to a tag stream.
	Encode(w *dxf.Writer) error
}

var (
	_ Entity = (*Line)(nil)
	_ Entity = (*Point)(nil)
	_ Entity = (*Circle)(nil)
	_ Entity = (*Arc)(nil)
	_ Entity = (*Text)(nil)
	_ Entity = (*Solid)(nil)
	_ Entity = (*Insert)(nil)
	_ Entity = (*Dimension)(nil)
)

// Common holds the attributes shared by all entity types.
type Common struct {
	// Handle identifies the entity within the document.  The zero
	// handle means that no handle has been assigned yet.
	Handle dxf.Handle

	// Owner is the handle of the owning block record, if any.
	Owner dxf.Handle

	// Layer is the name of the entity's layer.  The empty string
	// stands for layer "0".
	Layer string

	// Color is the AutoCAD color index.  [ColorByBlock] (the zero
	// value) defers to the containing block reference, [ColorByLayer]
	// to the layer.
	Color int

	// Linetype is the name of the entity's linetype.  The empty
	// string stands for "ByLayer".
	Linetype string

	// Lineweight is the display width in units of 1/100 mm.  Zero
	// means that no lineweight is set.
	Lineweight int
}

// GetCommon returns the attributes shared by all entity types.
func (c *Common) GetCommon() *Common {
	return c
}

// encode writes the leading tags shared by all entity types,
// including the subclass markers used from R2000 onwards.
func (c *Common) encode(w *dxf.Writer, entityType, subclass string) {
	w.WriteStr(0, entityType)
	if w.Version >= dxf.R2000 {
		if c.Handle != 0 {
			w.WriteHandle(5, c.Handle)
		}
		if c.Owner != 0 {
			w.WriteHandle(330, c.Owner)
		}
		w.WriteStr(100, "AcDbEntity")
	}
	layer := c.Layer
	if layer == "" {
		layer = "0"
	}
	w.WriteStr(8, layer)
	if c.Linetype != "" {
		w.WriteStr(6, c.Linetype)
	}
	if c.Color != ColorByLayer {
		w.WriteInt(62, c.Color)
	}
	if c.Lineweight != 0 && w.Version >= dxf.R2000 {
		w.WriteInt(370, c.Lineweight)
	}
	if subclass != "" && w.Version >= dxf.R2000 {
		w.WriteStr(100, subclass)
	}
}
