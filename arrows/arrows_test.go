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

package arrows

import (
	"math"
	"testing"

	"seehuhn.de/go/dxf"
)

func TestNames(t *testing.T) {
	type testCase struct {
		in        string
		canonical string
		block     string
	}
	cases := map[string]testCase{
		"closed filled": {"", "", "_CLOSEDFILLED"},
		"alias":         {"CLOSEDFILLED", "", "_CLOSEDFILLED"},
		"underscore":    {"_CLOSEDFILLED", "", "_CLOSEDFILLED"},
		"lower case":    {"oblique", "OBLIQUE", "_OBLIQUE"},
		"mixed case":    {"ArchTick", "ARCHTICK", "_ARCHTICK"},
		"dot":           {"DOT", "DOT", "_DOT"},
		"user defined":  {"MyArrow", "MyArrow", "_MyArrow"},
	}
	for name, test := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Name(test.in); got != test.canonical {
				t.Errorf("Name(%q) == %q, expected %q",
					test.in, got, test.canonical)
			}
			if got := BlockName(test.in); got != test.block {
				t.Errorf("BlockName(%q) == %q, expected %q",
					test.in, got, test.block)
			}
		})
	}
}

func TestArrowName(t *testing.T) {
	cases := []struct {
		block string
		want  string
	}{
		{"_CLOSEDFILLED", ClosedFilled},
		{"_Oblique", Oblique},
		{"_DOTSMALL", DotSmall},
		{"_EXT", "_EXT"},
		{"MyArrow", "MyArrow"},
		{"", ""},
	}
	for _, test := range cases {
		if got := ArrowName(test.block); got != test.want {
			t.Errorf("ArrowName(%q) == %q, expected %q",
				test.block, got, test.want)
		}
	}
}

func TestBlockNameRoundTrip(t *testing.T) {
	for name := range builtin {
		if got := ArrowName(BlockName(name)); got != Name(name) {
			t.Errorf("round trip for %q gives %q", name, got)
		}
	}
	if got := ArrowName(BlockName(ClosedFilled)); got != ClosedFilled {
		t.Errorf("round trip for closed filled gives %q", got)
	}
}

func TestIsBuiltin(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"", true},
		{"CLOSEDFILLED", true},
		{"closed_filled", true},
		{Dot, true},
		{"open30", true},
		{"MyArrow", false},
		{"_OBLIQUE", false},
	}
	for _, test := range cases {
		if got := IsBuiltin(test.name); got != test.want {
			t.Errorf("IsBuiltin(%q) == %t, expected %t",
				test.name, got, test.want)
		}
	}
}

func TestHasExtensionLine(t *testing.T) {
	yes := []string{Oblique, ArchTick, Integral, None, "archtick"}
	for _, name := range yes {
		if !HasExtensionLine(name) {
			t.Errorf("HasExtensionLine(%q) == false", name)
		}
	}
	no := []string{ClosedFilled, Closed, Dot, Open, BoxFilled, "MyArrow"}
	for _, name := range no {
		if HasExtensionLine(name) {
			t.Errorf("HasExtensionLine(%q) == true", name)
		}
	}
}

// recorder implements Layout and counts the received geometry.
type recorder struct {
	lines   int
	solids  int
	circles int
	arcs    int
}

func (r *recorder) AddLine(start, end dxf.Vec3)  { r.lines++ }
func (r *recorder) AddSolid(corners [4]dxf.Vec3) { r.solids++ }
func (r *recorder) AddCircle(center dxf.Vec3, radius float64) {
	r.circles++
}
func (r *recorder) AddArc(center dxf.Vec3, radius, startAngle, endAngle float64) {
	r.arcs++
}

func (r *recorder) total() int {
	return r.lines + r.solids + r.circles + r.arcs
}

func TestRender(t *testing.T) {
	for name := range builtin {
		r := &recorder{}
		err := Render(r, name, dxf.Vec3{}, 2.5, 30)
		if err != nil {
			t.Errorf("Render(%q): %v", name, err)
			continue
		}
		if name == None {
			if r.total() != 0 {
				t.Errorf("Render(%q) emitted geometry", name)
			}
		} else if r.total() == 0 {
			t.Errorf("Render(%q) emitted no geometry", name)
		}
	}

	r := &recorder{}
	if err := Render(r, ClosedFilled, dxf.Vec3{}, 1, 0); err != nil {
		t.Fatal(err)
	}
	if r.solids != 1 || r.total() != 1 {
		t.Errorf("unexpected closed filled geometry: %+v", r)
	}

	err := Render(r, "MyArrow", dxf.Vec3{}, 1, 0)
	if err == nil {
		t.Error("missing error for unknown arrowhead")
	}
}

// fakeBlocks implements the Blocks interface using a map.
type fakeBlocks struct {
	blocks map[string]*recorder
	calls  int
}

func (b *fakeBlocks) Has(name string) bool {
	_, ok := b.blocks[name]
	return ok
}

func (b *fakeBlocks) New(name string) (Layout, error) {
	if b.blocks == nil {
		b.blocks = map[string]*recorder{}
	}
	r := &recorder{}
	b.blocks[name] = r
	b.calls++
	return r, nil
}

func TestCreateBlock(t *testing.T) {
	b := &fakeBlocks{}

	name, err := CreateBlock(b, Oblique)
	if err != nil {
		t.Fatal(err)
	}
	if name != "_OBLIQUE" {
		t.Errorf("block name %q, expected %q", name, "_OBLIQUE")
	}
	r, ok := b.blocks["_OBLIQUE"]
	if !ok || r.lines != 1 {
		t.Errorf("unexpected block contents: %+v", r)
	}

	// creating the same block again must not add a second copy
	_, err = CreateBlock(b, "oblique")
	if err != nil {
		t.Fatal(err)
	}
	if b.calls != 1 {
		t.Errorf("block created %d times", b.calls)
	}

	_, err = CreateBlock(b, "MyArrow")
	if err == nil {
		t.Error("missing error for user-defined arrowhead")
	}
}

func TestConnectionPoint(t *testing.T) {
	insert := dxf.Vec3{X: 10, Y: 5}

	// closed filled arrowheads cover the line end, so the line must
	// stop one arrow length short of the tip
	got := ConnectionPoint(ClosedFilled, insert, 2, 0)
	want := dxf.Vec3{X: 8, Y: 5}
	if d := got.Sub(want).Length(); d > 1e-10 {
		t.Errorf("connection point %v, expected %v", got, want)
	}

	got = ConnectionPoint(Open, insert, 2, 90)
	want = dxf.Vec3{X: 10, Y: 3}
	if d := got.Sub(want).Length(); d > 1e-10 {
		t.Errorf("connection point %v, expected %v", got, want)
	}

	// stroke-type arrowheads leave the line end uncovered
	for _, name := range []string{Oblique, ArchTick, Dot, Origin, None} {
		got := ConnectionPoint(name, insert, 2, 45)
		if got != insert {
			t.Errorf("ConnectionPoint(%q) moved to %v", name, got)
		}
	}
}

func TestPlacer(t *testing.T) {
	p := placer{insert: dxf.Vec3{X: 1, Y: 2}, size: 2, rotation: 90}
	got := p.pt(-1, 0.5)
	want := dxf.Vec3{X: 0, Y: 0}
	if math.Abs(got.X-want.X) > 1e-10 || math.Abs(got.Y-want.Y) > 1e-10 {
		t.Errorf("pt(-1, 0.5) == %v, expected %v", got, want)
	}
}
