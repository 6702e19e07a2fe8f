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

// Package debug provides ready-made documents for use in unit tests.
package debug

import (
	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/document"
	"seehuhn.de/go/dxf/entity"
	"seehuhn.de/go/dxf/render"
)

// NewDocument creates a document whose "Standard" dimension style is
// set up with small, round numbers, so that test expectations are
// easy to compute by hand.
func NewDocument(v dxf.Version) *document.Document {
	doc, err := document.New(v)
	if err != nil {
		panic(err)
	}
	sty, err := doc.DimStyle("Standard")
	if err != nil {
		panic(err)
	}
	settings := map[string]any{
		"dimtxt": 1.0,
		"dimgap": 0.25,
		"dimexo": 0.5,
		"dimexe": 0.25,
		"dimasz": 0.5,
	}
	for name, value := range settings {
		if err := sty.Set(name, value); err != nil {
			panic(err)
		}
	}
	return doc
}

// Dimension adds a horizontal linear dimension measuring the distance
// from (1,1) to (7,1), with the dimension line at height 5, and
// renders its geometry block.
func Dimension(doc *document.Document) *entity.Dimension {
	dim := doc.AddLinearDim(dxf.Vec3{Y: 5}, dxf.Vec3{X: 1, Y: 1}, dxf.Vec3{X: 7, Y: 1}, nil)
	if err := render.Render(doc, dim, nil); err != nil {
		panic(err)
	}
	return dim
}
