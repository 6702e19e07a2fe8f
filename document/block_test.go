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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/entity"
)

func TestNewAnonymousBlock(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}

	b1 := doc.NewAnonymousBlock()
	b2 := doc.NewAnonymousBlock()
	if b1.Name != "*D1" || b2.Name != "*D2" {
		t.Errorf("got %q, %q, want *D1, *D2", b1.Name, b2.Name)
	}
	if b1.Flags&BlockAnonymous == 0 {
		t.Error("anonymous flag not set")
	}
	if got, ok := doc.Block("*D1"); !ok || got != b1 {
		t.Error("block not registered")
	}
}

func TestBlockEntities(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := doc.NewBlock("Test")
	if err != nil {
		t.Fatal(err)
	}

	l := b.AddLine(dxf.Vec3{}, dxf.Vec3{X: 1})
	p := b.AddPoint(dxf.Vec3{X: 2})
	txt := b.AddText("hello")

	if len(b.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(b.Entities))
	}
	for i, e := range b.Entities {
		c := e.GetCommon()
		if c.Handle == 0 {
			t.Errorf("entity %d: no handle assigned", i)
		}
		if c.Owner != b.Handle {
			t.Errorf("entity %d: wrong owner", i)
		}
		if r, ok := doc.Lookup(c.Handle); !ok || r != any(e) {
			t.Errorf("entity %d: not in handle database", i)
		}
	}

	if l.End.X != 1 || p.Location.X != 2 || txt.Value != "hello" {
		t.Error("entity attributes lost")
	}
}

func TestCreateArrowBlock(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}

	h1, err := doc.CreateArrowBlock("OPEN")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := doc.CreateArrowBlock("open")
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Error("arrow block created twice")
	}

	b, ok := doc.Block("_OPEN")
	if !ok {
		t.Fatal("block _OPEN missing")
	}
	if b.Handle != h1 {
		t.Error("wrong handle")
	}
	// the open arrowhead consists of two strokes
	if len(b.Entities) != 2 {
		t.Errorf("got %d entities, want 2", len(b.Entities))
	}
}

func TestAddArrowBlockref(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}
	b := doc.NewAnonymousBlock()

	insert := dxf.Vec3{X: 10, Y: 5}
	ref, p, err := b.AddArrowBlockref("CLOSED", insert, 2.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := dxf.Vec3{X: 8, Y: 5}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("connection point (-want +got):\n%s", diff)
	}

	if len(b.Entities) != 1 || b.Entities[0].(*entity.Insert) != ref {
		t.Fatal("block reference not added")
	}
	if ref.Block != "_CLOSED" {
		t.Errorf("block name: got %q, want _CLOSED", ref.Block)
	}
	if ref.XScale != 2 || ref.YScale != 2 || ref.ZScale != 2 {
		t.Error("wrong scale")
	}

	// arrowheads drawn as strokes attach at the insert point
	_, p, err = b.AddArrowBlockref("OBLIQUE", insert, 2.0, 90)
	if err != nil {
		t.Fatal(err)
	}
	if p != insert {
		t.Errorf("connection point: got %v, want %v", p, insert)
	}
}

func TestAddArrowBlockrefUserBlock(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.NewBlock("MyArrow"); err != nil {
		t.Fatal(err)
	}
	b := doc.NewAnonymousBlock()

	insert := dxf.Vec3{X: 1, Y: 2}
	_, p, err := b.AddArrowBlockref("MyArrow", insert, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p != insert {
		t.Errorf("connection point: got %v, want %v", p, insert)
	}

	_, _, err = b.AddArrowBlockref("NoSuchArrow", insert, 1.0, 0)
	if err == nil || err.Error() != `Block "NoSuchArrow" does not exist.` {
		t.Errorf("wrong error %q", err)
	}
}

func TestAddLinearDim(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}

	override := map[string]any{"dimasz": 5.0}
	loc := dxf.Vec3{X: 3, Y: 8}
	dim := doc.AddLinearDim(dxf.Vec3{Y: 5}, dxf.Vec3{}, dxf.Vec3{X: 7}, &LinearDimOptions{
		Style:    "Standard",
		Text:     "<>",
		Angle:    30,
		Location: &loc,
		Override: override,
	})

	ms := doc.Modelspace()
	if len(ms.Entities) != 1 || ms.Entities[0].(*entity.Dimension) != dim {
		t.Fatal("dimension not added to model space")
	}
	if dim.Handle == 0 {
		t.Error("no handle assigned")
	}
	if dim.DimType() != entity.TypeRotated {
		t.Errorf("type: got %d, want %d", dim.DimType(), entity.TypeRotated)
	}
	if dim.Type&entity.TypeUserTextPos == 0 {
		t.Error("user text position flag not set")
	}
	if dim.TextMidpoint == nil || *dim.TextMidpoint != loc {
		t.Error("wrong text midpoint")
	}
	if dim.Angle != 30 {
		t.Errorf("angle: got %g, want 30", dim.Angle)
	}

	// the override map must be copied
	override["dimasz"] = 1.0
	if dim.Override["dimasz"] != 5.0 {
		t.Error("override map not copied")
	}
}

func TestAddLinearDimDefaults(t *testing.T) {
	doc, err := New(dxf.R2000)
	if err != nil {
		t.Fatal(err)
	}

	dim := doc.AddLinearDim(dxf.Vec3{}, dxf.Vec3{}, dxf.Vec3{X: 1}, nil)
	if dim.Type != entity.TypeRotated {
		t.Errorf("type: got %d, want %d", dim.Type, entity.TypeRotated)
	}
	if dim.TextMidpoint != nil {
		t.Error("unexpected text midpoint")
	}
	if dim.Override != nil {
		t.Error("unexpected override")
	}
	if dim.Style != "" || dim.Text != "" {
		t.Error("unexpected style or text")
	}
}
