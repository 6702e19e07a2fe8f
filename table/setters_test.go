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

package table

import (
	"testing"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/optional"
)

// mustGet returns the value of a style field, failing the test on
// error.
func mustGet(t *testing.T, s *DimStyle, field string) any {
	t.Helper()
	v, err := s.Get(field)
	if err != nil {
		t.Fatalf("%s: %v", field, err)
	}
	return v
}

func TestToleranceLimitsExclusive(t *testing.T) {
	type step func(s *DimStyle) error
	tolerance := func(s *DimStyle) error {
		return s.SetTolerance(Tolerance{Upper: 0.1})
	}
	limits := func(s *DimStyle) error {
		return s.SetLimits(Limits{Upper: 0.1, Lower: 0.1})
	}

	cases := []struct {
		name             string
		steps            []step
		wantTol, wantLim int
		wantMode         ToleranceMode
	}{
		{"tolerance", []step{tolerance}, 1, 0, ToleranceDeviation},
		{"limits", []step{limits}, 0, 1, ToleranceLimits},
		{"tolerance then limits", []step{tolerance, limits}, 0, 1, ToleranceLimits},
		{"limits then tolerance", []step{limits, tolerance}, 1, 0, ToleranceDeviation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewDimStyle("test", newFakeDoc(dxf.R2000))
			for _, step := range c.steps {
				if err := step(s); err != nil {
					t.Fatal(err)
				}
			}
			if v := mustGet(t, s, "dimtol"); v != c.wantTol {
				t.Errorf("dimtol: got %v, want %d", v, c.wantTol)
			}
			if v := mustGet(t, s, "dimlim"); v != c.wantLim {
				t.Errorf("dimlim: got %v, want %d", v, c.wantLim)
			}
			if m := s.ToleranceMode(); m != c.wantMode {
				t.Errorf("got mode %s, want %s", m, c.wantMode)
			}
		})
	}
}

func TestSetTolerance(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2000))
	err := s.SetTolerance(Tolerance{
		Upper:         0.5,
		Lower:         optional.NewFloat(0.2),
		Align:         optional.NewInt(ToleranceMiddle),
		Decimals:      optional.NewInt(3),
		TrailingZeros: optional.NewBool(false),
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		field string
		want  any
	}{
		{"dimtol", 1},
		{"dimlim", 0},
		{"dimtp", 0.5},
		{"dimtm", 0.2},
		{"dimtfac", 1.0},
		{"dimtolj", ToleranceMiddle},
		{"dimtdec", 3},
		{"dimtzin", SuppressTrailingZeros},
	}
	for _, c := range cases {
		if v := mustGet(t, s, c.field); v != c.want {
			t.Errorf("%s: got %v, want %v", c.field, v, c.want)
		}
	}
}

func TestSetToleranceR12(t *testing.T) {
	// fields which do not exist at R12 are skipped
	s := NewDimStyle("test", newFakeDoc(dxf.R12))
	err := s.SetTolerance(Tolerance{
		Upper:    0.5,
		Decimals: optional.NewInt(3),
	})
	if err != nil {
		t.Fatal(err)
	}

	if v := mustGet(t, s, "dimtp"); v != 0.5 {
		t.Errorf("dimtp: got %v, want 0.5", v)
	}
	if s.Has("dimtfac") || s.Has("dimtdec") || s.Has("dimtzin") {
		t.Error("R2000 fields should not be set at R12")
	}
}

func TestSetLimitsAlignment(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2000))
	if err := s.Set("dimtolj", ToleranceTop); err != nil {
		t.Fatal(err)
	}
	err := s.SetLimits(Limits{Upper: 0.1, Lower: 0.2})
	if err != nil {
		t.Fatal(err)
	}

	// limits always reset the alignment
	if v := mustGet(t, s, "dimtolj"); v != ToleranceBottom {
		t.Errorf("dimtolj: got %v, want %d", v, ToleranceBottom)
	}
	if v := mustGet(t, s, "dimtp"); v != 0.1 {
		t.Errorf("dimtp: got %v, want 0.1", v)
	}
	if v := mustGet(t, s, "dimtm"); v != 0.2 {
		t.Errorf("dimtm: got %v, want 0.2", v)
	}
}

func TestSetTextFormat(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2000))
	err := s.SetTextFormat(TextFormat{
		Prefix:        "~",
		Postfix:       " mm",
		Decimals:      optional.NewInt(2),
		Separator:     ',',
		LeadingZeros:  optional.NewBool(false),
		TrailingZeros: optional.NewBool(false),
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		field string
		want  any
	}{
		{"dimpost", "~<> mm"},
		{"dimdec", 2},
		{"dimdsep", 44},
		{"dimzin", SuppressLeadingZeros + SuppressTrailingZeros},
	}
	for _, c := range cases {
		if v := mustGet(t, s, c.field); v != c.want {
			t.Errorf("%s: got %v, want %v", c.field, v, c.want)
		}
	}

	// enabling suppression of nothing clears the bits
	err = s.SetTextFormat(TextFormat{
		LeadingZeros:  optional.NewBool(true),
		TrailingZeros: optional.NewBool(true),
	})
	if err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, s, "dimzin"); v != 0 {
		t.Errorf("dimzin: got %v, want 0", v)
	}
}

func TestSetArrows(t *testing.T) {
	doc := newFakeDoc(dxf.R2000)
	s := NewDimStyle("test", doc)
	if err := s.Set("dimtsz", 1.0); err != nil {
		t.Fatal(err)
	}

	if err := s.SetArrows("", "OBLIQUE", "ARCHTICK"); err != nil {
		t.Fatal(err)
	}

	if s.Has("dimblk") {
		t.Error("dimblk should be unset for closed filled")
	}
	if v := mustGet(t, s, "dimblk1"); v != "OBLIQUE" {
		t.Errorf("dimblk1: got %v, want OBLIQUE", v)
	}
	if v := mustGet(t, s, "dimblk2"); v != "ARCHTICK" {
		t.Errorf("dimblk2: got %v, want ARCHTICK", v)
	}
	if v := mustGet(t, s, "dimtsz"); v != 0.0 {
		t.Errorf("dimtsz: got %v, want 0", v)
	}

	err := s.SetArrows("NoSuchBlock", "", "")
	want := `Block "NoSuchBlock" does not exist.`
	if err == nil || err.Error() != want {
		t.Errorf("got error %v, want %q", err, want)
	}
}

func TestSetTick(t *testing.T) {
	s := NewDimStyle("test", nil)
	if err := s.SetTick(1.5); err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, s, "dimtsz"); v != 1.5 {
		t.Errorf("dimtsz: got %v, want 1.5", v)
	}
}

func TestSetTextAlign(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2000))

	err := s.SetTextAlign(TextAlign{Vertical: "above"})
	if err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, s, "dimtad"); v != 1 {
		t.Errorf("dimtad: got %v, want 1", v)
	}

	err = s.SetTextAlign(TextAlign{
		Vertical: "center",
		VShift:   optional.NewFloat(0.7),
	})
	if err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, s, "dimtad"); v != 0 {
		t.Errorf("dimtad: got %v, want 0", v)
	}
	if v := mustGet(t, s, "dimtvp"); v != 0.7 {
		t.Errorf("dimtvp: got %v, want 0.7", v)
	}

	err = s.SetTextAlign(TextAlign{Horizontal: "right"})
	if err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, s, "dimjust"); v != 2 {
		t.Errorf("dimjust: got %v, want 2", v)
	}

	if err := s.SetTextAlign(TextAlign{Vertical: "top"}); err == nil {
		t.Error("expected error for unknown placement name")
	}
}

func TestSetLinetypes(t *testing.T) {
	doc := newFakeDoc(dxf.R2007)
	s := NewDimStyle("test", doc)
	err := s.SetLinetypes("DASHED", "Continuous", "DASHED")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		field, want string
	}{
		{"dimltype", "DASHED"},
		{"dimltex1", "Continuous"},
		{"dimltex2", "DASHED"},
	}
	for _, c := range cases {
		if v := mustGet(t, s, c.field); v != c.want {
			t.Errorf("%s: got %v, want %q", c.field, v, c.want)
		}
	}

	// silently ignored for versions without linetype support
	s2 := NewDimStyle("test", newFakeDoc(dxf.R2000))
	if err := s2.SetLinetypes("DASHED", "", ""); err != nil {
		t.Fatal(err)
	}
	if s2.Has("dimltype") {
		t.Error("dimltype should not be set at R2000")
	}
}

func TestSetDimlineFormat(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2007))
	err := s.SetDimlineFormat(LineFormat{
		Color:      optional.NewInt(1),
		Linetype:   "DASHED",
		Lineweight: optional.NewInt(35),
		Extension:  optional.NewFloat(0.5),
		Disable1:   optional.NewBool(true),
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		field string
		want  any
	}{
		{"dimclrd", 1},
		{"dimltype", "DASHED"},
		{"dimlwd", 35},
		{"dimdle", 0.5},
		{"dimsd1", 1},
	}
	for _, c := range cases {
		if v := mustGet(t, s, c.field); v != c.want {
			t.Errorf("%s: got %v, want %v", c.field, v, c.want)
		}
	}
	if s.Has("dimsd2") {
		t.Error("dimsd2 should be untouched")
	}
}

func TestSetExtlineFormat(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2007))
	err := s.SetExtlineFormat(ExtlineFormat{
		Color:       optional.NewInt(3),
		Extension:   optional.NewFloat(2.0),
		Offset:      optional.NewFloat(0.8),
		FixedLength: optional.NewFloat(5.0),
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		field string
		want  any
	}{
		{"dimclre", 3},
		{"dimexe", 2.0},
		{"dimexo", 0.8},
		{"dimfxlon", 1},
		{"dimfxl", 5.0},
	}
	for _, c := range cases {
		if v := mustGet(t, s, c.field); v != c.want {
			t.Errorf("%s: got %v, want %v", c.field, v, c.want)
		}
	}
}

func TestSetExtline(t *testing.T) {
	s := NewDimStyle("test", newFakeDoc(dxf.R2007))
	if err := s.SetExtline1("DASHED", true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetExtline2("", false); err != nil {
		t.Fatal(err)
	}

	if v := mustGet(t, s, "dimse1"); v != 1 {
		t.Errorf("dimse1: got %v, want 1", v)
	}
	if v := mustGet(t, s, "dimltex1"); v != "DASHED" {
		t.Errorf("dimltex1: got %v, want DASHED", v)
	}
	if v := mustGet(t, s, "dimse2"); v != 0 {
		t.Errorf("dimse2: got %v, want 0", v)
	}
}
