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

package document

import (
	"golang.org/x/exp/maps"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/entity"
)

// LinearDimOptions controls the creation of linear dimensions.
type LinearDimOptions struct {
	// Style is the name of the dimension style.  The empty string
	// stands for "Standard".
	Style string

	// Text is the dimension text.  The empty string and "<>" stand
	// for the measurement text, a single space suppresses the text.
	Text string

	// Angle is the angle of the dimension line in degrees.
	Angle float64

	// TextRotation rotates the dimension text away from its default
	// orientation, in degrees.
	TextRotation float64

	// Location places the dimension text manually.  The point is in
	// the same coordinate system as the definition points.
	Location *dxf.Vec3

	// Override holds dimension style overrides for this dimension,
	// keyed by DIMSTYLE field name.
	Override map[string]any
}

// AddLinearDim adds a linear dimension to the model space.  The
// dimension line passes through base, rotated by the angle given in
// the options; p1 and p2 are the measured points, where the extension
// lines start.
//
// The new dimension has no geometry yet.  Rendering the dimension
// computes the measurement and fills the geometry block.
func (d *Document) AddLinearDim(base, p1, p2 dxf.Vec3, opt *LinearDimOptions) *entity.Dimension {
	if opt == nil {
		opt = &LinearDimOptions{}
	}
	dim := &entity.Dimension{
		Style:        opt.Style,
		Defpoint:     base,
		Defpoint2:    p1,
		Defpoint3:    p2,
		Type:         entity.TypeRotated,
		Text:         opt.Text,
		Angle:        opt.Angle,
		TextRotation: opt.TextRotation,
	}
	if opt.Location != nil {
		q := *opt.Location
		dim.TextMidpoint = &q
		dim.Type |= entity.TypeUserTextPos
	}
	if len(opt.Override) > 0 {
		dim.Override = maps.Clone(opt.Override)
	}
	d.modelspace.add(dim)
	return dim
}

// VirtualEntities returns the drawable entities making up a rendered
// dimension, i.e. the contents of its geometry block.  The entities
// are the block's own; callers must not modify them.
//
// An error is returned if the dimension has not been rendered, or if
// the geometry block has gone missing.
func (d *Document) VirtualEntities(dim *entity.Dimension) ([]entity.Entity, error) {
	if dim.Geometry == "" {
		return nil, dxf.Error("dimension has no geometry block")
	}
	blk, ok := d.Block(dim.Geometry)
	if !ok {
		return nil, &dxf.NotFoundError{Table: "BLOCK", Name: dim.Geometry}
	}
	return blk.Entities, nil
}
