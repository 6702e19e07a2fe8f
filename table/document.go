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

// Document is the subset of document services needed by table
// records.  It translates between names and handles for the tables a
// DIMSTYLE record refers to.
type Document interface {
	// Version returns the DXF version of the document.
	Version() dxf.Version

	// BlockName returns the name of the block with the given handle.
	BlockName(h dxf.Handle) (string, bool)

	// BlockHandle returns the handle of the named block.
	BlockHandle(name string) (dxf.Handle, bool)

	// CreateArrowBlock makes sure the block for a built-in arrowhead
	// exists and returns its handle.  The name is an arrowhead name
	// as used by [seehuhn.de/go/dxf/arrows].
	CreateArrowBlock(name string) (dxf.Handle, error)

	// TextStyleName returns the name of the text style with the given
	// handle.
	TextStyleName(h dxf.Handle) (string, bool)

	// TextStyleHandle returns the handle of the named text style.
	TextStyleHandle(name string) (dxf.Handle, bool)

	// LinetypeName returns the name of the linetype with the given
	// handle.
	LinetypeName(h dxf.Handle) (string, bool)

	// LinetypeHandle returns the handle of the named linetype.
	LinetypeHandle(name string) (dxf.Handle, bool)
}

// Header gives write access to the header variables of a document.
type Header interface {
	// SetVar sets a header variable.  Variable names start with a
	// dollar sign, like "$DIMASZ".  Setting a variable unknown to the
	// document returns an error.
	SetVar(name string, value any) error
}
