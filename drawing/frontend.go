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

package drawing

import (
	"image/color"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/document"
	"seehuhn.de/go/dxf/entity"
)

// maximum nesting depth for block references
const maxBlockDepth = 32

// Frontend draws document entities on a [Backend].
type Frontend struct {
	// Doc is the document the entities belong to.  It is used to
	// look up the blocks referenced by inserts and dimensions.
	Doc *document.Document

	// Out receives the drawing primitives.
	Out Backend

	// Log receives warnings about entities which cannot be drawn.
	// If Log is nil, [slog.Default] is used instead.
	Log *slog.Logger

	// Foreground is the color drawn for color index 7.  The DXF
	// palette has white at this index, for the traditional black
	// canvas; backends with a light background want black instead.
	// The zero value stands for opaque black.
	Foreground color.RGBA

	// Palette maps the remaining color indices to RGB colors.  If
	// Palette is nil, [DefaultPalette] is used.
	Palette Palette
}

// DrawModelspace draws all modelspace entities of the document.
func (f *Frontend) DrawModelspace() {
	f.Draw(f.Doc.Modelspace().Entities)
}

// Draw draws a list of entities.  Entities which cannot be drawn are
// reported to the log and skipped, so that a single broken entity
// does not spoil the rest of the drawing.
func (f *Frontend) Draw(entities []entity.Entity) {
	st := &drawState{
		m:       matrix.Identity,
		scale:   1,
		byBlock: 7,
	}
	f.drawAll(entities, st)
}

func (f *Frontend) drawAll(entities []entity.Entity, st *drawState) {
	for _, e := range entities {
		err := f.drawEntity(e, st)
		if err != nil {
			f.log().Warn("cannot draw entity",
				"type", e.EntityType(), "error", err)
		}
	}
}

func (f *Frontend) drawEntity(e entity.Entity, st *drawState) error {
	switch e := e.(type) {
	case *entity.Line:
		return f.Out.DrawLine(st.xy(e.Start), st.xy(e.End),
			f.properties(e.GetCommon(), st))
	case *entity.Point:
		return f.Out.DrawPoint(st.xy(e.Location),
			f.properties(e.GetCommon(), st))
	case *entity.Solid:
		c := e.Corners
		outline := []dxf.Vec3{st.xy(c[0]), st.xy(c[1]), st.xy(c[3]), st.xy(c[2])}
		return f.Out.DrawFilledPolygon(outline, f.properties(e.GetCommon(), st))
	case *entity.Circle:
		return f.drawArc(e.Center, e.Radius, 0, 360, e.GetCommon(), st)
	case *entity.Arc:
		return f.drawArc(e.Center, e.Radius, e.StartAngle, e.EndAngle,
			e.GetCommon(), st)
	case *entity.Text:
		return f.drawText(e, st)
	case *entity.Insert:
		return f.drawInsert(e, st)
	case *entity.Dimension:
		return f.drawDimension(e, st)
	default:
		return dxf.Error("unsupported entity type " + e.EntityType())
	}
}

// drawArc approximates a circular arc by straight line segments.
// Flattening before the coordinate transform keeps non-uniformly
// scaled arcs (ellipses) correct.
func (f *Frontend) drawArc(center dxf.Vec3, radius, start, end float64, c *entity.Common, st *drawState) error {
	p := f.properties(c, st)
	sweep := end - start
	for sweep <= 0 {
		sweep += 360
	}
	n := int(math.Ceil(sweep / 5))
	if n < 2 {
		n = 2
	}
	var prev dxf.Vec3
	for i := 0; i <= n; i++ {
		phi := (start + sweep*float64(i)/float64(n)) * math.Pi / 180
		q := st.xy(dxf.Vec3{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
			Z: center.Z,
		})
		if i > 0 {
			if err := f.Out.DrawLine(prev, q, p); err != nil {
				return err
			}
		}
		prev = q
	}
	return nil
}

func (f *Frontend) drawText(t *entity.Text, st *drawState) error {
	if t.Value == "" {
		return nil
	}
	mid := textCenter(t)
	if t.Extrusion != nil {
		mid = dxf.NewOCS(*t.Extrusion).ToWCS(mid)
	}
	return f.Out.DrawText(t.Value, st.xy(mid), t.Height*st.scale,
		t.Rotation+st.rotation, f.properties(&t.Common, st))
}

// textCenter returns the center of the text box.  The text width is
// estimated from the number of characters; exact metrics would need
// the font.
func textCenter(t *entity.Text) dxf.Vec3 {
	anchor := t.Insert
	if t.AlignPoint != nil && (t.HAlign != 0 || t.VAlign != 0) {
		anchor = *t.AlignPoint
	}

	switch t.HAlign {
	case 3, 5: // the text runs from Insert to AlignPoint
		if t.AlignPoint != nil {
			return dxf.Vec3{
				X: (t.Insert.X + t.AlignPoint.X) / 2,
				Y: (t.Insert.Y + t.AlignPoint.Y) / 2,
				Z: (t.Insert.Z + t.AlignPoint.Z) / 2,
			}
		}
		return t.Insert
	case 4: // "middle" centers on the anchor in both directions
		return anchor
	}

	var dx, dy float64
	switch t.HAlign {
	case 0: // left
		dx = 0.6 * t.Height * float64(len([]rune(t.Value))) / 2
	case 2: // right
		dx = -0.6 * t.Height * float64(len([]rune(t.Value))) / 2
	}
	switch t.VAlign {
	case 0, 1: // baseline, bottom
		dy = t.Height / 2
	case 3: // top
		dy = -t.Height / 2
	}

	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)
	return dxf.Vec3{
		X: anchor.X + dx*cos - dy*sin,
		Y: anchor.Y + dx*sin + dy*cos,
		Z: anchor.Z,
	}
}

func (f *Frontend) drawInsert(ins *entity.Insert, st *drawState) error {
	if st.depth >= maxBlockDepth {
		return dxf.Error("block references nested too deeply")
	}
	blk, ok := f.Doc.Block(ins.Block)
	if !ok {
		return &dxf.NotFoundError{Table: "BLOCK", Name: ins.Block}
	}

	pos := ins.Insert
	if ins.Extrusion != nil {
		pos = dxf.NewOCS(*ins.Extrusion).ToWCS(pos)
	}
	sx, sy := ins.XScale, ins.YScale
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	local := matrix.Translate(-blk.Base.X, -blk.Base.Y).
		Mul(matrix.Scale(sx, sy)).
		Mul(matrix.RotateDeg(ins.Rotation)).
		Mul(matrix.Translate(pos.X, pos.Y))

	sub := *st
	sub.m = local.Mul(st.m)
	sub.rotation = st.rotation + ins.Rotation
	sub.scale = st.scale * math.Sqrt(math.Abs(sx*sy))
	sub.layer = st.resolveLayer(ins.Layer)
	sub.byBlock = resolveACI(ins.Color, st)
	sub.depth = st.depth + 1
	f.drawAll(blk.Entities, &sub)
	return nil
}

// drawDimension draws the computed geometry of a dimension.  The
// geometry block is always drawn opaque; ByBlock colors inside the
// block resolve to the dimension's own color.
func (f *Frontend) drawDimension(dim *entity.Dimension, st *drawState) error {
	children, err := f.Doc.VirtualEntities(dim)
	if err != nil {
		return err
	}
	sub := *st
	sub.transparency = 0
	sub.byBlock = resolveACI(dim.Color, st)
	sub.layer = st.resolveLayer(dim.Layer)
	f.drawAll(children, &sub)
	return nil
}

func (f *Frontend) properties(c *entity.Common, st *drawState) *Properties {
	aci := resolveACI(c.Color, st)
	var col color.RGBA
	if aci == 7 {
		col = f.Foreground
		if col == (color.RGBA{}) {
			col = color.RGBA{A: 255}
		}
	} else {
		pal := f.Palette
		if pal == nil {
			pal = DefaultPalette
		}
		col = pal(aci)
	}

	lt := c.Linetype
	if lt == "ByLayer" || lt == "ByBlock" {
		lt = ""
	}

	return &Properties{
		Layer:        st.resolveLayer(c.Layer),
		Color:        col,
		Linetype:     lt,
		Transparency: st.transparency,
	}
}

// resolveACI follows the ByBlock and ByLayer indirection of an
// entity's color index.  Documents carry no layer table, so layer
// colors fall back to the default color 7.
func resolveACI(aci int, st *drawState) int {
	switch aci {
	case entity.ColorByBlock:
		return st.byBlock
	case entity.ColorByLayer:
		return 7
	default:
		return aci
	}
}

func (f *Frontend) log() *slog.Logger {
	if f.Log != nil {
		return f.Log
	}
	return slog.Default()
}

// drawState is the context inherited while expanding nested block
// references.
type drawState struct {
	m            matrix.Matrix // block to world coordinates
	rotation     float64       // accumulated rotation in degrees
	scale        float64       // accumulated scale factor for text heights
	layer        string        // layer substituted for block contents on layer "0"
	byBlock      int           // color index inherited by ByBlock entities
	transparency float64
	depth        int
}

// xy transforms a point to world coordinates.  The z coordinate is
// carried through unchanged.
func (st *drawState) xy(p dxf.Vec3) dxf.Vec3 {
	x, y := st.m.Apply(p.X, p.Y)
	return dxf.Vec3{X: x, Y: y, Z: p.Z}
}

func (st *drawState) resolveLayer(name string) string {
	if name == "" {
		name = "0"
	}
	if name == "0" && st.layer != "" {
		return st.layer
	}
	return name
}
