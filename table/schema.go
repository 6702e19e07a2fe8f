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
	"seehuhn.de/go/dxf"
)

// A Field describes one field of a table record schema.
type Field struct {
	// Name is the lower-case field name, e.g. "dimasz".
	Name string

	// Code is the DXF group code used to store the field.  Virtual
	// fields have no group code of their own and use zero.
	Code int

	// Default is the field's default value, or nil if the field has
	// no default.
	Default any

	// Since is the first DXF version in which the field is
	// available.  The zero value means the field has always existed.
	Since dxf.Version

	// get and set, if non-nil, make this a virtual field whose value
	// is derived from other fields.
	get func(s *DimStyle) (any, error)
	set func(s *DimStyle, v any) error
}

// Kind returns the value type class of the field, derived from its
// group code.  Virtual fields are string-valued.
func (f *Field) Kind() dxf.Kind {
	return dxf.GroupKind(f.Code)
}

// A Schema is an immutable catalog of the fields of a table record
// type.
type Schema struct {
	record string
	fields []*Field
	byName map[string]*Field
}

func newSchema(record string, fields []*Field) *Schema {
	byName := make(map[string]*Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return &Schema{
		record: record,
		fields: fields,
		byName: byName,
	}
}

// Lookup returns the field with the given name, or nil if the schema
// has no such field.
func (s *Schema) Lookup(name string) *Field {
	return s.byName[name]
}

// Validate checks that name is a known field name.
func (s *Schema) Validate(name string) error {
	if s.byName[name] == nil {
		return &dxf.AttributeError{Record: s.record, Attr: name}
	}
	return nil
}

// DimStyleSchema describes the fields of a DIMSTYLE table record.
//
// Field availability comes in three tiers: the original R12 set, the
// fields added in R2000, and the fields added in R2007.  The obsolete
// fields dimunit and dimfit can still be loaded from old files, but
// are not part of any export list.
var DimStyleSchema = newSchema("DIMSTYLE", []*Field{
	{Name: "name", Code: 2, Default: "Standard"},
	{Name: "flags", Code: 70, Default: 0},
	{Name: "dimpost", Code: 3, Default: ""},
	{Name: "dimapost", Code: 4, Default: ""},
	arrowField("dimblk", 5, 0),
	arrowField("dimblk1", 6, 0),
	arrowField("dimblk2", 7, 0),
	{Name: "dimscale", Code: 40, Default: 1.0},
	{Name: "dimasz", Code: 41, Default: 2.5},
	{Name: "dimexo", Code: 42, Default: 0.625},
	{Name: "dimdli", Code: 43, Default: 3.75},
	{Name: "dimexe", Code: 44, Default: 1.25},
	{Name: "dimrnd", Code: 45, Default: 0.0},
	{Name: "dimdle", Code: 46, Default: 0.0},
	{Name: "dimtp", Code: 47, Default: 0.0},
	{Name: "dimtm", Code: 48, Default: 0.0},
	{Name: "dimfxl", Code: 49, Default: 2.5, Since: dxf.R2007},
	{Name: "dimtxt", Code: 140, Default: 2.5},
	{Name: "dimcen", Code: 141, Default: 2.5},
	{Name: "dimtsz", Code: 142, Default: 0.0},
	{Name: "dimaltf", Code: 143, Default: 0.03937007874},
	{Name: "dimlfac", Code: 144, Default: 1.0},
	{Name: "dimtvp", Code: 145, Default: 0.0},
	{Name: "dimtfac", Code: 146, Default: 1.0, Since: dxf.R2000},
	{Name: "dimgap", Code: 147, Default: 0.625},
	{Name: "dimaltrnd", Code: 148, Default: 0.0, Since: dxf.R2000},
	{Name: "dimtfill", Code: 69, Default: 0, Since: dxf.R2007},
	{Name: "dimtfillclr", Code: 70, Default: 0, Since: dxf.R2007},
	{Name: "dimtol", Code: 71, Default: 0},
	{Name: "dimlim", Code: 72, Default: 0},
	{Name: "dimtih", Code: 73, Default: 0},
	{Name: "dimtoh", Code: 74, Default: 0},
	{Name: "dimse1", Code: 75, Default: 0},
	{Name: "dimse2", Code: 76, Default: 0},
	{Name: "dimtad", Code: 77, Default: 1},
	{Name: "dimzin", Code: 78, Default: 8},
	{Name: "dimazin", Code: 79, Default: 8, Since: dxf.R2000},
	{Name: "dimalt", Code: 170, Default: 0},
	{Name: "dimaltd", Code: 171, Default: 3},
	{Name: "dimtofl", Code: 172, Default: 1},
	{Name: "dimsah", Code: 173, Default: 0},
	{Name: "dimtix", Code: 174, Default: 0},
	{Name: "dimsoxd", Code: 175, Default: 0},
	{Name: "dimclrd", Code: 176, Default: 0},
	{Name: "dimclre", Code: 177, Default: 0},
	{Name: "dimclrt", Code: 178, Default: 0},
	{Name: "dimadec", Code: 179, Default: 0, Since: dxf.R2000},
	{Name: "dimunit", Code: 270}, // obsolete
	{Name: "dimdec", Code: 271, Default: 0, Since: dxf.R2000},
	{Name: "dimtdec", Code: 272, Default: 2, Since: dxf.R2000},
	{Name: "dimaltu", Code: 273, Default: 2, Since: dxf.R2000},
	{Name: "dimalttd", Code: 274, Default: 3, Since: dxf.R2000},
	{Name: "dimaunit", Code: 275, Default: 0, Since: dxf.R2000},
	{Name: "dimfrac", Code: 276, Default: 0, Since: dxf.R2000},
	{Name: "dimlunit", Code: 277, Default: 2, Since: dxf.R2000},
	{Name: "dimdsep", Code: 278, Default: 44, Since: dxf.R2000},
	{Name: "dimtmove", Code: 279, Default: 0, Since: dxf.R2000},
	{Name: "dimjust", Code: 280, Default: 0, Since: dxf.R2000},
	{Name: "dimsd1", Code: 281, Default: 0, Since: dxf.R2000},
	{Name: "dimsd2", Code: 282, Default: 0, Since: dxf.R2000},
	{Name: "dimtolj", Code: 283, Default: 0, Since: dxf.R2000},
	{Name: "dimtzin", Code: 284, Default: 8, Since: dxf.R2000},
	{Name: "dimaltz", Code: 285, Default: 0, Since: dxf.R2000},
	{Name: "dimalttz", Code: 286, Default: 0, Since: dxf.R2000},
	{Name: "dimfit", Code: 287}, // obsolete
	{Name: "dimupt", Code: 288, Default: 0, Since: dxf.R2000},
	{Name: "dimatfit", Code: 289, Default: 3, Since: dxf.R2000},
	{Name: "dimfxlon", Code: 290, Default: 0, Since: dxf.R2007},
	{Name: "dimtxsty_handle", Code: 340, Since: dxf.R2000},
	{
		Name: "dimtxsty",
		get:  func(s *DimStyle) (any, error) { return s.getTextStyle() },
		set:  func(s *DimStyle, v any) error { return s.setTextStyle(v) },
	},
	arrowField("dimldrblk", 0, 0),
	{Name: "dimldrblk_handle", Code: 341, Since: dxf.R2000},
	{Name: "dimblk_handle", Code: 342, Since: dxf.R2000},
	{Name: "dimblk1_handle", Code: 343, Since: dxf.R2000},
	{Name: "dimblk2_handle", Code: 344, Since: dxf.R2000},
	{Name: "dimltype_handle", Code: 345, Since: dxf.R2007},
	ltypeField("dimltype"),
	{Name: "dimltex1_handle", Code: 346, Since: dxf.R2007},
	ltypeField("dimltex1"),
	{Name: "dimltex2_handle", Code: 347, Since: dxf.R2007},
	ltypeField("dimltex2"),
	{Name: "dimlwd", Code: 371, Default: -2, Since: dxf.R2000},
	{Name: "dimlwe", Code: 372, Default: -2, Since: dxf.R2000},
})

// arrowField builds the schema entry for an arrowhead name field.
// The value is virtual: it is derived from the corresponding handle
// field, falling back to a directly stored block name as used by
// R12-era files.
func arrowField(name string, code int, since dxf.Version) *Field {
	handleName := name + "_handle"
	return &Field{
		Name:    name,
		Code:    code,
		Default: "",
		Since:   since,
		get: func(s *DimStyle) (any, error) {
			return s.getArrow(name, handleName)
		},
		set: func(s *DimStyle, v any) error {
			return s.setArrow(name, handleName, v)
		},
	}
}

// ltypeField builds the schema entry for a virtual linetype name
// field, derived from the corresponding handle field.
func ltypeField(name string) *Field {
	handleName := name + "_handle"
	return &Field{
		Name:    name,
		Default: "",
		Since:   dxf.R2007,
		get: func(s *DimStyle) (any, error) {
			return s.getLinetype(handleName)
		},
		set: func(s *DimStyle, v any) error {
			return s.setLinetype(handleName, v)
		},
	}
}

// The DIMSTYLE export field lists.  Each DXF version tier writes a
// fixed set of fields in a fixed order; fields not set on the record
// are skipped.
var (
	dimExportR12 = []string{
		"name", "flags", "dimpost", "dimapost", "dimblk", "dimblk1",
		"dimblk2", "dimscale", "dimasz", "dimexo", "dimdli", "dimexe",
		"dimrnd", "dimdle", "dimtp", "dimtm", "dimtxt", "dimcen",
		"dimtsz", "dimaltf", "dimlfac", "dimtvp", "dimtfac", "dimgap",
		"dimtol", "dimlim", "dimtih", "dimtoh", "dimse1", "dimse2",
		"dimtad", "dimzin", "dimalt", "dimaltd", "dimtofl", "dimsah",
		"dimtix", "dimsoxd", "dimclrd", "dimclre", "dimclrt",
	}
	dimExportR2000 = []string{
		"name", "flags", "dimpost", "dimapost", "dimscale", "dimasz",
		"dimexo", "dimdli", "dimexe", "dimrnd", "dimdle", "dimtp",
		"dimtm", "dimtxt", "dimcen", "dimtsz", "dimaltf", "dimlfac",
		"dimtvp", "dimtfac", "dimgap", "dimaltrnd", "dimtol", "dimlim",
		"dimtih", "dimtoh", "dimse1", "dimse2", "dimtad", "dimzin",
		"dimazin", "dimalt", "dimaltd", "dimtofl", "dimsah", "dimtix",
		"dimsoxd", "dimclrd", "dimclre", "dimclrt", "dimadec", "dimdec",
		"dimtdec", "dimaltu", "dimalttd", "dimaunit", "dimfrac",
		"dimlunit", "dimdsep", "dimtmove", "dimjust", "dimsd1", "dimsd2",
		"dimtolj", "dimtzin", "dimaltz", "dimalttz", "dimupt",
		"dimatfit", "dimtxsty_handle", "dimldrblk_handle",
		"dimblk_handle", "dimblk1_handle", "dimblk2_handle", "dimlwd",
		"dimlwe",
	}
	dimExportR2007 = []string{
		"name", "flags", "dimscale", "dimasz", "dimexo", "dimdli",
		"dimexe", "dimrnd", "dimdle", "dimtp", "dimtm", "dimfxl",
		"dimtxt", "dimcen", "dimtsz", "dimaltf", "dimlfac", "dimtvp",
		"dimtfac", "dimgap", "dimaltrnd", "dimtfill", "dimtfillclr",
		"dimtol", "dimlim", "dimtih", "dimtoh", "dimse1", "dimse2",
		"dimtad", "dimzin", "dimazin", "dimalt", "dimaltd", "dimtofl",
		"dimsah", "dimtix", "dimsoxd", "dimclrd", "dimclre", "dimclrt",
		"dimadec", "dimdec", "dimtdec", "dimaltu", "dimalttd",
		"dimaunit", "dimfrac", "dimlunit", "dimdsep", "dimtmove",
		"dimjust", "dimsd1", "dimsd2", "dimtolj", "dimtzin", "dimaltz",
		"dimalttz", "dimupt", "dimatfit", "dimfxlon",
		"dimtxsty_handle", "dimldrblk_handle", "dimblk_handle",
		"dimblk1_handle", "dimblk2_handle", "dimltype_handle",
		"dimltex1_handle", "dimltex2_handle", "dimlwd", "dimlwe",
	}
)

// exportList returns the DIMSTYLE export field list for a given
// target version.
func exportList(v dxf.Version) []string {
	switch {
	case v <= dxf.R12:
		return dimExportR12
	case v < dxf.R2007:
		return dimExportR2000
	default:
		return dimExportR2007
	}
}
