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

// Package drawing converts document entities into simple drawing
// primitives.
//
// A [Frontend] walks a list of entities, resolves colors and layers,
// expands block references and dimensions, and emits lines, points,
// filled polygons and text to a [Backend].  The package draws the view
// from the positive world z-axis: all coordinates passed to the
// backend are world coordinates, and backends are expected to project
// onto the xy-plane.
package drawing

import (
	"image/color"

	"seehuhn.de/go/dxf"
)

// Properties describes how an entity is to be drawn.  All indirection
// (color by layer or by block, layer inheritance for block contents)
// has already been resolved by the frontend.
type Properties struct {
	// Layer is the name of the layer the entity is drawn on.
	Layer string

	// Color is the resolved RGB color.
	Color color.RGBA

	// Linetype is the name of the resolved linetype.  The empty
	// string stands for a continuous line.
	Linetype string

	// Transparency ranges from 0 (opaque) to 1 (fully transparent).
	// Entities inside dimension geometry blocks are always drawn
	// opaque.
	Transparency float64
}

// Backend consumes the drawing primitives produced by a [Frontend].
//
// All coordinates are world coordinates.  Errors returned by a
// backend abort the current entity only; the frontend logs them and
// carries on with the next entity.
type Backend interface {
	// DrawLine draws a straight line from start to end.
	DrawLine(start, end dxf.Vec3, p *Properties) error

	// DrawPoint draws a point marker.
	DrawPoint(pt dxf.Vec3, p *Properties) error

	// DrawFilledPolygon draws a filled polygon.  The outline is
	// closed implicitly from the last point back to the first.
	DrawFilledPolygon(points []dxf.Vec3, p *Properties) error

	// DrawText draws a single line of text.  The point mid is the
	// center of the text box, height the text height in drawing
	// units, and rotation the text direction in degrees,
	// counter-clockwise from the x-axis.
	DrawText(text string, mid dxf.Vec3, height, rotation float64, p *Properties) error
}
