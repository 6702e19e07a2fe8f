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

// Package document implements the in-memory model of a DXF drawing.
//
// A Document holds the header variables, the symbol tables and the
// block definitions of a drawing, together with a database mapping
// handles back to records.  The dimension subsystem uses the document
// to resolve names and handles, and to store the anonymous blocks
// which hold rendered dimension geometry.
package document

import (
	"log/slog"
	"strconv"
	"strings"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/arrows"
	"seehuhn.de/go/dxf/table"
)

// Document is a DXF drawing.
type Document struct {
	// Codepage is the drawing's code page.
	Codepage string

	// Log receives warnings about inconsistencies in the document.
	// If Log is nil, [slog.Default] is used instead.
	Log *slog.Logger

	version dxf.Version

	header map[string]any

	dimStyles  map[string]*table.DimStyle
	textStyles map[string]*table.TextStyle
	linetypes  map[string]*table.Linetype
	blocks     map[string]*Block

	db map[dxf.Handle]any

	modelspace *Block

	nextHandle dxf.Handle
	numAnon    int
}

var (
	_ table.Document = (*Document)(nil)
	_ table.Header   = (*Document)(nil)
)

// New creates an empty document.  The document starts out with the
// linetypes "ByBlock", "ByLayer" and "Continuous", the text style
// "Standard", and the dimension style "Standard".
func New(v dxf.Version) (*Document, error) {
	if _, err := v.ToString(); err != nil {
		return nil, err
	}

	d := &Document{
		Codepage:   "ANSI_1252",
		version:    v,
		header:     make(map[string]any),
		dimStyles:  make(map[string]*table.DimStyle),
		textStyles: make(map[string]*table.TextStyle),
		linetypes:  make(map[string]*table.Linetype),
		blocks:     make(map[string]*Block),
		db:         make(map[dxf.Handle]any),
		nextHandle: 1,
	}
	d.AddLinetype("ByBlock", "", nil)
	d.AddLinetype("ByLayer", "", nil)
	d.AddLinetype("Continuous", "Solid line", nil)
	d.AddTextStyle("Standard", "txt")
	d.NewDimStyle("Standard")
	d.modelspace, _ = d.NewBlock("*Model_Space")

	return d, nil
}

// Version returns the DXF version of the document.
func (d *Document) Version() dxf.Version {
	return d.version
}

// NextHandle allocates a fresh handle.
func (d *Document) NextHandle() dxf.Handle {
	h := d.nextHandle
	d.nextHandle++
	return h
}

// register allocates a handle for r and enters r into the handle
// database.
func (d *Document) register(r any) dxf.Handle {
	h := d.NextHandle()
	d.db[h] = r
	return h
}

// Lookup resolves a handle to the record it identifies.  Records are
// table entries, block definitions, and entities.
func (d *Document) Lookup(h dxf.Handle) (any, bool) {
	r, ok := d.db[h]
	return r, ok
}

// Modelspace returns the block holding the entities of the drawing
// itself.
func (d *Document) Modelspace() *Block {
	return d.modelspace
}

// headerVars lists the supported header variables outside of the
// dimension style group.
var headerVars = map[string]bool{
	"$ACADVER":     true,
	"$DWGCODEPAGE": true,
	"$DIMSTYLE":    true,
	"$INSUNITS":    true,
	"$LTSCALE":     true,
	"$LUNITS":      true,
	"$LUPREC":      true,
	"$MEASUREMENT": true,
}

func isHeaderVar(name string) bool {
	if headerVars[name] {
		return true
	}
	// $DIMASZ etc., one variable per dimension style field
	if rest, ok := strings.CutPrefix(name, "$DIM"); ok {
		return table.DimStyleSchema.Lookup("dim"+strings.ToLower(rest)) != nil
	}
	return false
}

// SetVar sets a header variable.  Variable names start with a dollar
// sign, like "$DIMASZ".  Setting a variable unknown to the document
// returns an error.
func (d *Document) SetVar(name string, value any) error {
	if !isHeaderVar(name) {
		return dxf.Error("unknown header variable " + strconv.Quote(name))
	}
	d.header[name] = value
	return nil
}

// Var reads a header variable.  The second return value reports
// whether the variable is set.
func (d *Document) Var(name string) (any, bool) {
	v, ok := d.header[name]
	return v, ok
}

// AddLinetype adds a linetype to the LTYPE table.  The pattern gives
// the dash lengths, with negative values for gaps; an empty pattern
// describes a continuous line.
func (d *Document) AddLinetype(name, description string, pattern []float64) (*table.Linetype, error) {
	key := strings.ToUpper(name)
	if _, exists := d.linetypes[key]; exists {
		return nil, dxf.Error("linetype " + strconv.Quote(name) + " already exists")
	}
	lt := &table.Linetype{
		Name:        name,
		Description: description,
		Pattern:     pattern,
	}
	lt.Handle = d.register(lt)
	d.linetypes[key] = lt
	return lt, nil
}

// Linetype looks up a linetype by name.  Table names are
// case-insensitive.
func (d *Document) Linetype(name string) (*table.Linetype, error) {
	lt, ok := d.linetypes[strings.ToUpper(name)]
	if !ok {
		return nil, &dxf.NotFoundError{Table: "LTYPE", Name: name}
	}
	return lt, nil
}

// AddTextStyle adds a text style to the STYLE table.
func (d *Document) AddTextStyle(name, font string) (*table.TextStyle, error) {
	key := strings.ToUpper(name)
	if _, exists := d.textStyles[key]; exists {
		return nil, dxf.Error("text style " + strconv.Quote(name) + " already exists")
	}
	ts := &table.TextStyle{
		Name: name,
		Font: font,
	}
	ts.Handle = d.register(ts)
	d.textStyles[key] = ts
	return ts, nil
}

// TextStyle looks up a text style by name.  Table names are
// case-insensitive.
func (d *Document) TextStyle(name string) (*table.TextStyle, error) {
	ts, ok := d.textStyles[strings.ToUpper(name)]
	if !ok {
		return nil, &dxf.NotFoundError{Table: "STYLE", Name: name}
	}
	return ts, nil
}

// NewDimStyle creates a new dimension style and adds it to the
// DIMSTYLE table.
func (d *Document) NewDimStyle(name string) (*table.DimStyle, error) {
	key := strings.ToUpper(name)
	if _, exists := d.dimStyles[key]; exists {
		return nil, dxf.Error("dimension style " + strconv.Quote(name) + " already exists")
	}
	s := table.NewDimStyle(name, d)
	s.Log = d.Log
	s.Handle = d.register(s)
	d.dimStyles[key] = s
	return s, nil
}

// DimStyle looks up a dimension style by name.  Table names are
// case-insensitive.
func (d *Document) DimStyle(name string) (*table.DimStyle, error) {
	s, ok := d.dimStyles[strings.ToUpper(name)]
	if !ok {
		return nil, &dxf.NotFoundError{Table: "DIMSTYLE", Name: name}
	}
	return s, nil
}

// BlockName resolves a block handle to the block's name.
func (d *Document) BlockName(h dxf.Handle) (string, bool) {
	b, ok := d.db[h].(*Block)
	if !ok {
		return "", false
	}
	return b.Name, true
}

// BlockHandle returns the handle of the named block.
func (d *Document) BlockHandle(name string) (dxf.Handle, bool) {
	b, ok := d.blocks[strings.ToUpper(name)]
	if !ok {
		return 0, false
	}
	return b.Handle, true
}

// TextStyleName resolves a text style handle to the style's name.
func (d *Document) TextStyleName(h dxf.Handle) (string, bool) {
	ts, ok := d.db[h].(*table.TextStyle)
	if !ok {
		return "", false
	}
	return ts.Name, true
}

// TextStyleHandle returns the handle of the named text style.
func (d *Document) TextStyleHandle(name string) (dxf.Handle, bool) {
	ts, ok := d.textStyles[strings.ToUpper(name)]
	if !ok {
		return 0, false
	}
	return ts.Handle, true
}

// LinetypeName resolves a linetype handle to the linetype's name.
func (d *Document) LinetypeName(h dxf.Handle) (string, bool) {
	lt, ok := d.db[h].(*table.Linetype)
	if !ok {
		return "", false
	}
	return lt.Name, true
}

// LinetypeHandle returns the handle of the named linetype.
func (d *Document) LinetypeHandle(name string) (dxf.Handle, bool) {
	lt, ok := d.linetypes[strings.ToUpper(name)]
	if !ok {
		return 0, false
	}
	return lt.Handle, true
}

// CreateArrowBlock makes sure that the block definition for a
// built-in arrowhead exists, and returns its handle.
func (d *Document) CreateArrowBlock(name string) (dxf.Handle, error) {
	blockName, err := arrows.CreateBlock(blockTable{d}, name)
	if err != nil {
		return 0, err
	}
	h, _ := d.BlockHandle(blockName)
	return h, nil
}
