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

package render

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/arrows"
	"seehuhn.de/go/dxf/entity"
	"seehuhn.de/go/dxf/optional"
)

// renderLinear computes the geometry of a rotated or aligned linear
// dimension.  The dimension line runs through Defpoint; the points
// measured are Defpoint2 and Defpoint3, connected to the dimension
// line by the extension lines.
func renderLinear(dim *entity.Dimension, g *geometry, sty *StyleOverride) error {
	r := &styleReader{sty: sty}

	measureFactor := r.float("dimlfac", 1)

	textHeight := r.float("dimtxt", 2.5)
	textGap := r.float("dimgap", 0.625)
	textVAlign := r.int("dimtad", 1)
	textStyle := r.str("dimtxsty", "Standard")
	textColor := r.int("dimclrt", dim.Color)
	zin := r.int("dimzin", 8)
	textFmt := TextOptions{
		Round:            r.optFloat("dimrnd"),
		Decimals:         r.optInt("dimdec"),
		SuppressLeading:  zin&4 != 0,
		SuppressTrailing: zin&8 != 0,
		Separator:        rune(r.int("dimdsep", 0)),
		Template:         r.str("dimpost", ""),
	}

	tickSize := r.float("dimtsz", 0)
	arrowSize := r.float("dimasz", 2.5)
	arrow1 := r.str("dimblk", "")
	arrow2 := arrow1
	if r.int("dimsah", 0) != 0 {
		arrow1 = r.str("dimblk1", "")
		arrow2 = r.str("dimblk2", "")
	}

	extOffset := r.float("dimexo", 0.625)
	extExtension := r.float("dimexe", 1.25)
	suppress1 := r.int("dimse1", 0) != 0
	suppress2 := r.int("dimse2", 0) != 0
	extColor := r.int("dimclre", dim.Color)
	extLinetype1 := r.str("dimltex1", "")
	extLinetype2 := r.str("dimltex2", "")

	lineExtension := r.float("dimdle", 0)
	lineColor := r.int("dimclrd", dim.Color)
	lineLinetype := r.str("dimltype", "")

	if r.err != nil {
		return r.err
	}

	// The dimension line endpoints are the intersections of the ray
	// through Defpoint with the two extension line rays.
	angle := dim.Angle
	if dim.DimType() == entity.TypeAligned {
		d := dim.Defpoint3.XY().Sub(dim.Defpoint2.XY())
		angle = math.Atan2(d.Y, d.X) / math.Pi * 180
	}
	ext1Origin := dim.Defpoint2.XY()
	ext2Origin := dim.Defpoint3.XY()
	dimLine := newRay(dim.Defpoint.XY(), angle)
	start, ok1 := dimLine.intersect(newRay(ext1Origin, angle+90))
	end, ok2 := dimLine.intersect(newRay(ext2Origin, angle+90))
	if !ok1 || !ok2 {
		return dxf.Error("degenerate dimension geometry")
	}
	dir := end.Sub(start)
	if dir.Length() > 0 {
		dir = dir.Normalize()
	} else {
		dir = dimLine.dir
	}

	measurement := end.Sub(start).Length() * measureFactor
	measured, err := FormatText(measurement, textFmt)
	if err != nil {
		return err
	}
	var text string
	switch dim.Text {
	case " ": // a single space suppresses the text
	case "", "<>":
		text = measured
	default:
		text = dim.Text
	}

	// An existing text midpoint is kept, so that rendering a
	// dimension twice does not move the text.
	var mid vec.Vec2
	if dim.TextMidpoint != nil {
		mid = dim.TextMidpoint.XY()
	} else {
		var offset float64
		switch textVAlign {
		case 0: // centered on the dimension line
		case 4: // below
			offset = -(textGap + textHeight/2)
		default: // above
			offset = textGap + textHeight/2
		}
		mid = start.Add(end).Mul(0.5).Add(dir.Rot90().Mul(offset))
	}

	if text != "" {
		err := g.addText(text, mid, textHeight, angle+dim.TextRotation, textStyle, textColor)
		if err != nil {
			return err
		}
	}

	if !suppress1 {
		g.extLine(ext1Origin, start, extOffset, extExtension, extColor, extLinetype1)
	}
	if !suppress2 {
		g.extLine(ext2Origin, end, extOffset, extExtension, extColor, extLinetype2)
	}

	lineStart, lineEnd := start, end
	extendStart, extendEnd := true, true
	if tickSize > 0 {
		// oblique strokes instead of arrowheads, at double size
		for _, p := range []vec.Vec2{start, end} {
			err := g.addTick(p, 2*tickSize, angle, lineColor)
			if err != nil {
				return err
			}
		}
	} else {
		extendStart = arrows.HasExtensionLine(arrow1)
		extendEnd = arrows.HasExtensionLine(arrow2)
		lineStart, err = g.addArrow(arrow1, start, arrowSize, angle+180, lineColor)
		if err != nil {
			return err
		}
		lineEnd, err = g.addArrow(arrow2, end, arrowSize, angle, lineColor)
		if err != nil {
			return err
		}
	}

	// The dimension line sticks out past arrowheads which are drawn
	// as strokes across the line.
	if extendStart {
		lineStart = lineStart.Sub(dir.Mul(lineExtension))
	}
	if extendEnd {
		lineEnd = lineEnd.Add(dir.Mul(lineExtension))
	}
	g.addLine(lineStart, lineEnd, lineColor, lineLinetype)

	g.addDefpoint(start)
	g.addDefpoint(ext1Origin)
	g.addDefpoint(ext2Origin)

	dim.Defpoint = g.toWCS(start)
	dim.Defpoint2 = g.toWCS(ext1Origin)
	dim.Defpoint3 = g.toWCS(ext2Origin)
	m := g.toOCS(mid)
	dim.TextMidpoint = &m
	dim.Extrusion = g.extrusion

	return nil
}

// styleReader reads resolved style attributes, collecting the first
// error.
type styleReader struct {
	sty *StyleOverride
	err error
}

func (r *styleReader) float(attr string, def float64) float64 {
	if r.err != nil {
		return 0
	}
	x, err := r.sty.Float(attr, def)
	if err != nil {
		r.err = err
	}
	return x
}

func (r *styleReader) int(attr string, def int) int {
	if r.err != nil {
		return 0
	}
	x, err := r.sty.Int(attr, def)
	if err != nil {
		r.err = err
	}
	return x
}

func (r *styleReader) str(attr, def string) string {
	if r.err != nil {
		return ""
	}
	x, err := r.sty.Str(attr, def)
	if err != nil {
		r.err = err
	}
	return x
}

func (r *styleReader) optFloat(attr string) optional.Float {
	if r.err != nil {
		return optional.Float{}
	}
	x, err := r.sty.optionalFloat(attr)
	if err != nil {
		r.err = err
	}
	return x
}

func (r *styleReader) optInt(attr string) optional.Int {
	if r.err != nil {
		return optional.Int{}
	}
	x, err := r.sty.optionalInt(attr)
	if err != nil {
		r.err = err
	}
	return x
}
