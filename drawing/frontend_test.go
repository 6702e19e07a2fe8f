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
	"errors"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/entity"
	"seehuhn.de/go/dxf/internal/debug"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// drawOp records one call to the fake backend.
type drawOp struct {
	Kind   string
	Points []dxf.Vec3
	Text   string
	Height float64
	Rot    float64
	Props  Properties
}

// fakeBackend records the draw calls it receives.  The first failNext
// calls return an error instead.
type fakeBackend struct {
	ops      []drawOp
	failNext int
}

var errBackend = errors.New("backend failed")

func (b *fakeBackend) record(op drawOp) error {
	if b.failNext > 0 {
		b.failNext--
		return errBackend
	}
	b.ops = append(b.ops, op)
	return nil
}

func (b *fakeBackend) DrawLine(start, end dxf.Vec3, p *Properties) error {
	return b.record(drawOp{Kind: "line", Points: []dxf.Vec3{start, end}, Props: *p})
}

func (b *fakeBackend) DrawPoint(pt dxf.Vec3, p *Properties) error {
	return b.record(drawOp{Kind: "point", Points: []dxf.Vec3{pt}, Props: *p})
}

func (b *fakeBackend) DrawFilledPolygon(points []dxf.Vec3, p *Properties) error {
	return b.record(drawOp{Kind: "polygon", Points: points, Props: *p})
}

func (b *fakeBackend) DrawText(text string, mid dxf.Vec3, height, rotation float64, p *Properties) error {
	return b.record(drawOp{
		Kind:   "text",
		Points: []dxf.Vec3{mid},
		Text:   text,
		Height: height,
		Rot:    rotation,
		Props:  *p,
	})
}

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDrawEntities(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b}

	f.Draw([]entity.Entity{
		&entity.Line{
			Common: entity.Common{Color: 1, Layer: "walls"},
			End:    dxf.Vec3{X: 1},
		},
		&entity.Point{
			Common:   entity.Common{Color: 5},
			Location: dxf.Vec3{X: 2, Y: 3},
		},
		&entity.Solid{
			Common:  entity.Common{Color: 2},
			Corners: [4]dxf.Vec3{{}, {X: 2}, {Y: 1}, {X: 2, Y: 1}},
		},
	})

	want := []drawOp{
		{
			Kind:   "line",
			Points: []dxf.Vec3{{}, {X: 1}},
			Props:  Properties{Layer: "walls", Color: color.RGBA{255, 0, 0, 255}},
		},
		{
			Kind:   "point",
			Points: []dxf.Vec3{{X: 2, Y: 3}},
			Props:  Properties{Layer: "0", Color: color.RGBA{0, 0, 255, 255}},
		},
		{
			Kind:   "polygon",
			Points: []dxf.Vec3{{}, {X: 2}, {X: 2, Y: 1}, {Y: 1}},
			Props:  Properties{Layer: "0", Color: color.RGBA{255, 255, 0, 255}},
		},
	}
	if d := cmp.Diff(want, b.ops); d != "" {
		t.Errorf("draw calls differ (-want +got):\n%s", d)
	}
}

func TestDrawCircle(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b}

	f.Draw([]entity.Entity{
		&entity.Circle{Center: dxf.Vec3{}, Radius: 1},
	})

	if len(b.ops) != 72 {
		t.Fatalf("got %d segments, want 72", len(b.ops))
	}
	for i, op := range b.ops {
		if op.Kind != "line" {
			t.Fatalf("op %d: got %q, want \"line\"", i, op.Kind)
		}
	}
	first := b.ops[0].Points[0]
	last := b.ops[71].Points[1]
	if d := cmp.Diff(first, last, approx); d != "" {
		t.Errorf("circle does not close (-start +end):\n%s", d)
	}
	if d := cmp.Diff(dxf.Vec3{X: 1}, first, approx); d != "" {
		t.Errorf("wrong start point (-want +got):\n%s", d)
	}
}

func TestDrawArc(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b}

	f.Draw([]entity.Entity{
		&entity.Arc{
			Center:     dxf.Vec3{X: 1, Y: 1},
			Radius:     2,
			StartAngle: 90,
			EndAngle:   180,
		},
	})

	if len(b.ops) != 18 {
		t.Fatalf("got %d segments, want 18", len(b.ops))
	}
	start := b.ops[0].Points[0]
	end := b.ops[17].Points[1]
	if d := cmp.Diff(dxf.Vec3{X: 1, Y: 3}, start, approx); d != "" {
		t.Errorf("wrong start point (-want +got):\n%s", d)
	}
	if d := cmp.Diff(dxf.Vec3{X: -1, Y: 1}, end, approx); d != "" {
		t.Errorf("wrong end point (-want +got):\n%s", d)
	}
}

func TestDrawText(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)

	type testCase struct {
		name  string
		text  *entity.Text
		mid   dxf.Vec3
		empty bool
	}
	var cases []testCase

	// left-aligned text hangs off the insertion point
	cases = append(cases, testCase{
		name: "left",
		text: &entity.Text{Insert: dxf.Vec3{X: 1, Y: 1}, Height: 2, Value: "AB"},
		mid:  dxf.Vec3{X: 2.2, Y: 2},
	})

	mc := &entity.Text{Height: 2, Value: "AB"}
	if err := mc.SetPos(dxf.Vec3{X: 5, Y: 5}, "MIDDLE_CENTER"); err != nil {
		t.Fatal(err)
	}
	cases = append(cases, testCase{name: "middle center", text: mc, mid: dxf.Vec3{X: 5, Y: 5}})

	tr := &entity.Text{Height: 2, Value: "AB"}
	if err := tr.SetPos(dxf.Vec3{X: 2, Y: 2}, "TOP_RIGHT"); err != nil {
		t.Fatal(err)
	}
	cases = append(cases, testCase{name: "top right", text: tr, mid: dxf.Vec3{X: 0.8, Y: 1}})

	cases = append(cases, testCase{
		name: "rotated",
		text: &entity.Text{Height: 2, Value: "AB", Rotation: 90},
		mid:  dxf.Vec3{X: -1, Y: 1.2},
	})

	cases = append(cases, testCase{
		name:  "empty",
		text:  &entity.Text{Height: 2},
		empty: true,
	})

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &fakeBackend{}
			f := &Frontend{Doc: doc, Out: b}
			f.Draw([]entity.Entity{c.text})

			if c.empty {
				if len(b.ops) != 0 {
					t.Fatalf("got %d draw calls, want none", len(b.ops))
				}
				return
			}
			if len(b.ops) != 1 {
				t.Fatalf("got %d draw calls, want 1", len(b.ops))
			}
			op := b.ops[0]
			if op.Kind != "text" || op.Text != c.text.Value {
				t.Errorf("got %s %q, want text %q", op.Kind, op.Text, c.text.Value)
			}
			if op.Height != c.text.Height {
				t.Errorf("got height %g, want %g", op.Height, c.text.Height)
			}
			if d := cmp.Diff(c.mid, op.Points[0], approx); d != "" {
				t.Errorf("wrong text center (-want +got):\n%s", d)
			}
		})
	}
}

func TestDrawInsert(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	blk, err := doc.NewBlock("Part")
	if err != nil {
		t.Fatal(err)
	}
	blk.AddLine(dxf.Vec3{}, dxf.Vec3{X: 1})

	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b}
	f.Draw([]entity.Entity{
		&entity.Insert{
			Common:   entity.Common{Color: 3, Layer: "parts"},
			Block:    "Part",
			Insert:   dxf.Vec3{X: 10},
			XScale:   2,
			YScale:   2,
			Rotation: 90,
		},
	})

	want := []drawOp{
		{
			Kind:   "line",
			Points: []dxf.Vec3{{X: 10}, {X: 10, Y: 2}},
			Props:  Properties{Layer: "parts", Color: color.RGBA{0, 255, 0, 255}},
		},
	}
	if d := cmp.Diff(want, b.ops, approx); d != "" {
		t.Errorf("draw calls differ (-want +got):\n%s", d)
	}
}

func TestDrawDimension(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	debug.Dimension(doc)

	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b}
	f.DrawModelspace()

	black := color.RGBA{A: 255}
	onZero := Properties{Layer: "0", Color: black}
	onDefpoints := Properties{Layer: "DEFPOINTS", Color: black}
	want := []drawOp{
		{
			Kind:   "text",
			Points: []dxf.Vec3{{X: 4, Y: 5.75}},
			Text:   "6",
			Height: 1,
			Props:  onZero,
		},
		{
			Kind:   "line",
			Points: []dxf.Vec3{{X: 1, Y: 1.5}, {X: 1, Y: 5.25}},
			Props:  onZero,
		},
		{
			Kind:   "line",
			Points: []dxf.Vec3{{X: 7, Y: 1.5}, {X: 7, Y: 5.25}},
			Props:  onZero,
		},
		{
			Kind: "polygon",
			Points: []dxf.Vec3{
				{X: 1, Y: 5},
				{X: 1.5, Y: 5 - 1.0/12},
				{X: 1.5, Y: 5 + 1.0/12},
				{X: 1.5, Y: 5 + 1.0/12},
			},
			Props: onZero,
		},
		{
			Kind: "polygon",
			Points: []dxf.Vec3{
				{X: 7, Y: 5},
				{X: 6.5, Y: 5 + 1.0/12},
				{X: 6.5, Y: 5 - 1.0/12},
				{X: 6.5, Y: 5 - 1.0/12},
			},
			Props: onZero,
		},
		{
			Kind:   "line",
			Points: []dxf.Vec3{{X: 1.5, Y: 5}, {X: 6.5, Y: 5}},
			Props:  onZero,
		},
		{Kind: "point", Points: []dxf.Vec3{{X: 1, Y: 5}}, Props: onDefpoints},
		{Kind: "point", Points: []dxf.Vec3{{X: 1, Y: 1}}, Props: onDefpoints},
		{Kind: "point", Points: []dxf.Vec3{{X: 7, Y: 1}}, Props: onDefpoints},
	}
	if d := cmp.Diff(want, b.ops, approx); d != "" {
		t.Errorf("draw calls differ (-want +got):\n%s", d)
	}
}

// A dimension without geometry must not stop the entities after it
// from being drawn.
func TestDrawDimensionSkipped(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b, Log: quietLog()}

	f.Draw([]entity.Entity{
		&entity.Dimension{Type: entity.TypeRotated},
		&entity.Dimension{Type: entity.TypeRotated, Geometry: "*D99"},
		&entity.Line{End: dxf.Vec3{X: 1}},
	})

	if len(b.ops) != 1 || b.ops[0].Kind != "line" {
		t.Errorf("got %d draw calls, want the plain line only", len(b.ops))
	}
}

func TestDrawBackendError(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	b := &fakeBackend{failNext: 1}
	f := &Frontend{Doc: doc, Out: b, Log: quietLog()}

	f.Draw([]entity.Entity{
		&entity.Line{End: dxf.Vec3{X: 1}},
		&entity.Line{End: dxf.Vec3{X: 2}},
	})

	if len(b.ops) != 1 {
		t.Fatalf("got %d draw calls, want 1", len(b.ops))
	}
	want := []dxf.Vec3{{}, {X: 2}}
	if d := cmp.Diff(want, b.ops[0].Points); d != "" {
		t.Errorf("wrong line survived (-want +got):\n%s", d)
	}
}

func TestDrawForeground(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	red := color.RGBA{255, 0, 0, 255}

	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b, Foreground: red}
	f.Draw([]entity.Entity{
		&entity.Line{Common: entity.Common{Color: 7}, End: dxf.Vec3{X: 1}},
		&entity.Line{Common: entity.Common{Color: entity.ColorByLayer}, End: dxf.Vec3{X: 2}},
	})

	for i, op := range b.ops {
		if op.Props.Color != red {
			t.Errorf("op %d: got color %v, want %v", i, op.Props.Color, red)
		}
	}
}

func TestDrawCustomPalette(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	ugly := color.RGBA{1, 2, 3, 255}

	b := &fakeBackend{}
	f := &Frontend{
		Doc:     doc,
		Out:     b,
		Palette: func(aci int) color.RGBA { return ugly },
	}
	f.Draw([]entity.Entity{
		&entity.Line{Common: entity.Common{Color: 40}, End: dxf.Vec3{X: 1}},
	})

	if len(b.ops) != 1 || b.ops[0].Props.Color != ugly {
		t.Errorf("custom palette not used: %v", b.ops)
	}
}

type bogusEntity struct {
	entity.Common
}

func (e *bogusEntity) EntityType() string         { return "BOGUS" }
func (e *bogusEntity) Encode(w *dxf.Writer) error { return nil }

func TestDrawUnsupported(t *testing.T) {
	doc := debug.NewDocument(dxf.R2000)
	b := &fakeBackend{}
	f := &Frontend{Doc: doc, Out: b, Log: quietLog()}

	f.Draw([]entity.Entity{
		&bogusEntity{},
		&entity.Line{End: dxf.Vec3{X: 1}},
	})

	if len(b.ops) != 1 || b.ops[0].Kind != "line" {
		t.Errorf("got %d draw calls, want the line only", len(b.ops))
	}
}
