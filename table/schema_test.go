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
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/dxf"
)

func TestSchemaFieldNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range DimStyleSchema.fields {
		if f.Name == "" {
			t.Error("field with empty name")
		}
		if seen[f.Name] {
			t.Errorf("duplicate field name %q", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestSchemaValidate(t *testing.T) {
	if err := DimStyleSchema.Validate("dimasz"); err != nil {
		t.Errorf("dimasz: %v", err)
	}
	err := DimStyleSchema.Validate("dimnonsense")
	var aErr *dxf.AttributeError
	if !errors.As(err, &aErr) {
		t.Fatalf("got %v, want AttributeError", err)
	}
}

func TestExportListsResolve(t *testing.T) {
	lists := map[string][]string{
		"R12":   dimExportR12,
		"R2000": dimExportR2000,
		"R2007": dimExportR2007,
	}
	for version, list := range lists {
		seen := make(map[string]int)
		for _, name := range list {
			f := DimStyleSchema.Lookup(name)
			if f == nil {
				t.Errorf("%s: unknown field %q", version, name)
				continue
			}
			seen[name]++
		}
		for name, n := range seen {
			if n > 1 {
				t.Errorf("%s: field %q listed %d times", version, name, n)
			}
		}
	}
}

func TestExportListShapes(t *testing.T) {
	// handle indirection does not exist in R12 files
	for _, name := range dimExportR12 {
		if strings.HasSuffix(name, "_handle") {
			t.Errorf("R12 list contains handle field %q", name)
		}
	}

	// newer lists store arrows as handles, never as names
	for _, list := range [][]string{dimExportR2000, dimExportR2007} {
		for _, name := range list {
			f := DimStyleSchema.Lookup(name)
			if f != nil && f.get != nil {
				t.Errorf("list contains virtual field %q", name)
			}
		}
	}

	// the obsolete fields are load-only
	for _, list := range [][]string{dimExportR12, dimExportR2000, dimExportR2007} {
		for _, name := range list {
			if name == "dimunit" || name == "dimfit" {
				t.Errorf("obsolete field %q in export list", name)
			}
		}
	}
}

func TestExportListSelection(t *testing.T) {
	cases := []struct {
		version dxf.Version
		wantLen int
	}{
		{dxf.R12, len(dimExportR12)},
		{dxf.R2000, len(dimExportR2000)},
		{dxf.R2004, len(dimExportR2000)},
		{dxf.R2007, len(dimExportR2007)},
		{dxf.R2018, len(dimExportR2007)},
	}
	for _, c := range cases {
		if got := exportList(c.version); len(got) != c.wantLen {
			t.Errorf("%s: got list of %d fields, want %d",
				c.version, len(got), c.wantLen)
		}
	}
}

func TestSchemaKinds(t *testing.T) {
	cases := []struct {
		field string
		want  dxf.Kind
	}{
		{"dimasz", dxf.KindFloat},
		{"dimtad", dxf.KindInt},
		{"dimpost", dxf.KindString},
		{"dimtxsty_handle", dxf.KindHandle},
		{"dimlwd", dxf.KindInt},
	}
	for _, c := range cases {
		f := DimStyleSchema.Lookup(c.field)
		if f == nil {
			t.Fatalf("field %q missing", c.field)
		}
		if got := f.Kind(); got != c.want {
			t.Errorf("%s: got kind %d, want %d", c.field, got, c.want)
		}
	}
}
