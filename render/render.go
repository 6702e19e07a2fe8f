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

// Package render turns DIMENSION entities into explicit geometry.
//
// DXF files store dimensions twice: as a DIMENSION entity holding the
// measured points, and as an anonymous block holding the lines,
// arrowheads and text which make up the visible drawing.  CAD
// applications regenerate the block from the entity; viewers only
// display it.  This package implements the regeneration step.
package render

import (
	"strconv"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/document"
	"seehuhn.de/go/dxf/entity"
)

var dimTypeNames = map[int]string{
	entity.TypeAngular:   "angular",
	entity.TypeDiameter:  "diameter",
	entity.TypeRadius:    "radius",
	entity.TypeAngular3P: "angular three point",
	entity.TypeOrdinate:  "ordinate",
}

// UnsupportedError is returned by [Render] for dimension types which
// the renderer cannot draw.
type UnsupportedError struct {
	Type int
}

func (e *UnsupportedError) Error() string {
	name, ok := dimTypeNames[e.Type]
	if !ok {
		name = "type " + strconv.Itoa(e.Type)
	}
	return "rendering of " + name + " dimensions is not implemented"
}

// Render creates the geometry block for a dimension entity.  The
// block is stored in doc under an anonymous name, and dim is updated
// to refer to it.
//
// The ucs argument gives the construction plane of the dimension.
// All defining points of dim are interpreted as coordinates in this
// system.  A nil ucs denotes world coordinates.
//
// Dimensions of unsupported types return an [UnsupportedError].
func Render(doc *document.Document, dim *entity.Dimension, ucs *dxf.UCS) error {
	if ucs == nil {
		ucs = dxf.WorldUCS()
	}
	styleName := dim.Style
	if styleName == "" {
		styleName = "Standard"
	}
	style, err := doc.DimStyle(styleName)
	if err != nil {
		return err
	}
	sty := NewStyleOverride(style, dim.Override)

	block := doc.NewAnonymousBlock()
	switch t := dim.DimType(); t {
	case entity.TypeRotated, entity.TypeAligned:
		err = renderLinear(dim, newGeometry(block, ucs, dim.Layer), sty)
	case entity.TypeAngular, entity.TypeDiameter, entity.TypeRadius,
		entity.TypeAngular3P, entity.TypeOrdinate:
		return &UnsupportedError{Type: t}
	default:
		return dxf.Error("invalid dimension type " + strconv.Itoa(t))
	}
	if err != nil {
		return err
	}

	dim.Geometry = block.Name
	dim.Type |= entity.TypeBlockUnique
	return sty.CommitTo(dim)
}
