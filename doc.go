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

// Package dxf provides support for reading and writing DXF files.
//
// This package treats DXF files as streams of tags (group code/value
// pairs).  A [Scanner] reads tags from a file, a [Writer] emits them;
// both translate legacy code page text.  On top of the tag layer, the
// sub-packages implement a document model:
//
//   - document holds the tables, blocks and entities of a drawing,
//   - table implements the symbol table records, most importantly the
//     dimension style table record,
//   - entity implements the graphical entities,
//   - render generates the geometry blocks of dimension entities,
//   - drawing rasterizes entities through pluggable backends.
//
// The focus of the library is the dimension subsystem: dimension
// styles, style overrides, and the generation of dimension geometry.
package dxf
