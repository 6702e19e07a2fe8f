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

// Package table implements DXF symbol table records.
//
// The most complex of these is the DIMSTYLE record, which bundles
// around eighty named dimension-appearance parameters.  Fields are
// addressed by their lower-case AutoCAD variable name ("dimasz",
// "dimtxt", ...).  Some fields are virtual: the stored value is a
// block, linetype or text style handle, while the value seen by
// [DimStyle.Get] and [DimStyle.Set] is the referenced record's name.
package table

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/arrows"
)

var errNoDocument = dxf.Error("dimension style is not attached to a document")

// DimStyle is a DIMSTYLE table record.
//
// Only fields which have been set are stored; [DimStyle.Get] falls
// back to the schema default for everything else.  A DimStyle is not
// safe for concurrent use.
type DimStyle struct {
	// Handle is the record's handle (group code 105).
	Handle dxf.Handle

	// Owner is the handle of the owning table (group code 330).
	Owner dxf.Handle

	// Log, if non-nil, replaces [slog.Default] for diagnostic
	// messages.
	Log *slog.Logger

	doc    Document
	values map[string]any
}

// NewDimStyle creates a new dimension style.  The document is used to
// resolve names to handles for the virtual fields; it may be nil for
// a free-standing record, in which case arrow names are stored
// directly and the linetype and text style fields cannot be set.
func NewDimStyle(name string, doc Document) *DimStyle {
	return &DimStyle{
		doc: doc,
		values: map[string]any{
			"name":  name,
			"flags": 0,
		},
	}
}

// Name returns the style's name.
func (s *DimStyle) Name() string {
	name, _ := s.values["name"].(string)
	return name
}

func (s *DimStyle) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// checkField looks up a field by name and applies the version gate of
// the record's document.
func (s *DimStyle) checkField(name string) (*Field, error) {
	f := DimStyleSchema.Lookup(name)
	if f == nil {
		return nil, &dxf.AttributeError{Record: "DIMSTYLE", Attr: name}
	}
	if f.Since != 0 && s.doc != nil {
		op := "DIMSTYLE attribute " + strconv.Quote(name)
		if err := dxf.CheckVersion(s.doc.Version(), op, f.Since); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Get returns the value of the named field.  Unset fields fall back
// to the schema default.
func (s *DimStyle) Get(name string) (any, error) {
	f, err := s.checkField(name)
	if err != nil {
		return nil, err
	}
	if f.get != nil {
		return f.get(s)
	}
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	if f.Default != nil {
		return f.Default, nil
	}
	return nil, dxf.Error("DIMSTYLE attribute " + strconv.Quote(name) + " is not set")
}

// GetDefault returns the value of the named field, or def if the
// field is not set.  Unlike [DimStyle.Get] the schema default is not
// consulted.
func (s *DimStyle) GetDefault(name string, def any) (any, error) {
	f, err := s.checkField(name)
	if err != nil {
		return nil, err
	}
	if f.get != nil {
		return f.get(s)
	}
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	return def, nil
}

// Set sets the named field.
func (s *DimStyle) Set(name string, value any) error {
	f, err := s.checkField(name)
	if err != nil {
		return err
	}
	if f.set != nil {
		return f.set(s, value)
	}
	v, err := coerceValue(f, value)
	if err != nil {
		return err
	}
	s.values[name] = v
	return nil
}

// coerceValue converts value to the Go type used to store the field,
// derived from the field's group code.
func coerceValue(f *Field, value any) (any, error) {
	switch f.Kind() {
	case dxf.KindFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case dxf.KindInt:
		if v, ok := value.(int); ok {
			return v, nil
		}
	case dxf.KindHandle:
		switch v := value.(type) {
		case dxf.Handle:
			return v, nil
		case int:
			return dxf.Handle(v), nil
		}
	default:
		if v, ok := value.(string); ok {
			return v, nil
		}
	}
	msg := fmt.Sprintf("DIMSTYLE attribute %q: invalid value type %T",
		f.Name, value)
	return nil, dxf.Error(msg)
}

// Has reports whether the named field is set.  A virtual field counts
// as set when its backing field is.
func (s *DimStyle) Has(name string) bool {
	f := DimStyleSchema.Lookup(name)
	if f == nil {
		return false
	}
	if f.get != nil {
		if _, ok := s.values[name+"_handle"]; ok {
			return true
		}
	}
	_, ok := s.values[name]
	return ok
}

// Discard removes the named field, so that the default applies again.
// Discarding an unset or unknown field is not an error.
func (s *DimStyle) Discard(name string) {
	f := DimStyleSchema.Lookup(name)
	if f == nil {
		return
	}
	if f.get != nil {
		delete(s.values, name+"_handle")
	}
	delete(s.values, name)
}

// Supports reports whether the named field exists and is available in
// the record's document version.
func (s *DimStyle) Supports(name string) bool {
	f := DimStyleSchema.Lookup(name)
	if f == nil {
		return false
	}
	if f.Since != 0 && s.doc != nil && s.doc.Version() < f.Since {
		return false
	}
	return true
}

// getArrow returns the arrowhead name stored in the given handle
// field.  An unset or dangling handle maps to the closed filled
// arrowhead, which is the implicit default.  Old files store the
// block name directly instead of a handle.
func (s *DimStyle) getArrow(name, handleName string) (any, error) {
	if h, ok := s.values[handleName].(dxf.Handle); ok {
		if s.doc != nil {
			if blockName, ok := s.doc.BlockName(h); ok {
				return arrows.ArrowName(blockName), nil
			}
		}
		return arrows.ClosedFilled, nil
	}
	if raw, ok := s.values[name].(string); ok {
		return arrows.Name(raw), nil
	}
	return arrows.ClosedFilled, nil
}

// setArrow stores an arrowhead selection.  Built-in arrowheads have
// their block created on first use; any other name must refer to an
// existing block.
func (s *DimStyle) setArrow(name, handleName string, value any) error {
	blockName, ok := value.(string)
	if !ok {
		msg := fmt.Sprintf("DIMSTYLE attribute %q: invalid value type %T",
			name, value)
		return dxf.Error(msg)
	}
	if arrows.IsClosedFilled(blockName) {
		// the closed filled arrowhead needs no block
		delete(s.values, handleName)
		delete(s.values, name)
		return nil
	}
	if s.doc == nil {
		s.values[name] = arrows.Name(blockName)
		return nil
	}

	var h dxf.Handle
	if arrows.IsBuiltin(blockName) {
		var err error
		h, err = s.doc.CreateArrowBlock(blockName)
		if err != nil {
			return err
		}
	} else {
		h, ok = s.doc.BlockHandle(blockName)
		if !ok {
			return dxf.Error(`Block "` + blockName + `" does not exist.`)
		}
	}
	s.values[handleName] = h
	delete(s.values, name)
	return nil
}

// getTextStyle returns the name of the text style referenced by
// dimtxsty_handle.  Rendering must be able to proceed even with a
// dangling reference, so failed lookups degrade to "Standard" with a
// warning.
func (s *DimStyle) getTextStyle() (any, error) {
	h, ok := s.values["dimtxsty_handle"].(dxf.Handle)
	if !ok {
		return "Standard", nil
	}
	if s.doc != nil {
		if name, ok := s.doc.TextStyleName(h); ok {
			return name, nil
		}
	}
	s.log().Warn("dangling text style handle",
		"dimstyle", s.Name(), "handle", h)
	return "Standard", nil
}

func (s *DimStyle) setTextStyle(value any) error {
	name, ok := value.(string)
	if !ok {
		msg := fmt.Sprintf("DIMSTYLE attribute \"dimtxsty\": invalid value type %T",
			value)
		return dxf.Error(msg)
	}
	if s.doc == nil {
		return errNoDocument
	}
	h, ok := s.doc.TextStyleHandle(name)
	if !ok {
		return &dxf.NotFoundError{Table: "STYLE", Name: name}
	}
	s.values["dimtxsty_handle"] = h
	return nil
}

// getLinetype returns the name of the linetype referenced by the
// given handle field.  Unset means "use the default linetype" and
// maps to the empty string; dangling handles degrade to the same with
// a warning.
func (s *DimStyle) getLinetype(handleName string) (any, error) {
	h, ok := s.values[handleName].(dxf.Handle)
	if !ok {
		return "", nil
	}
	if s.doc != nil {
		if name, ok := s.doc.LinetypeName(h); ok {
			return name, nil
		}
	}
	s.log().Warn("dangling linetype handle",
		"dimstyle", s.Name(), "handle", h)
	return "", nil
}

func (s *DimStyle) setLinetype(handleName string, value any) error {
	name, ok := value.(string)
	if !ok {
		attr := strings.TrimSuffix(handleName, "_handle")
		msg := fmt.Sprintf("DIMSTYLE attribute %q: invalid value type %T",
			attr, value)
		return dxf.Error(msg)
	}
	if s.doc == nil {
		return errNoDocument
	}
	h, ok := s.doc.LinetypeHandle(name)
	if !ok {
		return &dxf.NotFoundError{Table: "LTYPE", Name: name}
	}
	s.values[handleName] = h
	return nil
}

// Export writes the record to a tag stream.  The set of fields and
// their order depend on the writer's DXF version; fields which are
// not set are skipped.
func (s *DimStyle) Export(w *dxf.Writer) error {
	w.WriteStr(0, "DIMSTYLE")
	if w.Version > dxf.R12 {
		if s.Handle != 0 {
			w.WriteHandle(105, s.Handle)
		}
		if s.Owner != 0 {
			w.WriteHandle(330, s.Owner)
		}
		w.WriteStr(100, "AcDbSymbolTableRecord")
		w.WriteStr(100, "AcDbDimStyleTableRecord")

		// newer files must reference a text style
		if !s.Has("dimtxsty_handle") && s.doc != nil {
			if h, ok := s.doc.TextStyleHandle("Standard"); ok {
				s.values["dimtxsty_handle"] = h
			}
		}
	}
	for _, name := range exportList(w.Version) {
		f := DimStyleSchema.Lookup(name)
		if f.Since != 0 && f.Since > w.Version {
			continue
		}
		if f.get != nil {
			if !s.Has(name) {
				continue
			}
			v, err := f.get(s)
			if err != nil {
				return err
			}
			w.WriteStr(f.Code, v.(string))
			continue
		}
		v, ok := s.values[name]
		if !ok {
			continue
		}
		switch f.Kind() {
		case dxf.KindFloat:
			w.WriteFloat(f.Code, v.(float64))
		case dxf.KindInt:
			w.WriteInt(f.Code, v.(int))
		case dxf.KindHandle:
			w.WriteHandle(f.Code, v.(dxf.Handle))
		default:
			w.WriteStr(f.Code, v.(string))
		}
	}
	return w.Err
}

// dimCodeToField maps group codes to schema fields for loading.  The
// ambiguous code 70 is resolved positionally in LoadDimStyle, and the
// arrow name codes 5, 6, 7 are recognized through the corresponding
// virtual fields.
var dimCodeToField = func() map[int]*Field {
	m := make(map[int]*Field)
	for _, f := range DimStyleSchema.fields {
		if f.Code == 0 || f.Code == 70 {
			continue
		}
		m[f.Code] = f
	}
	return m
}()

// LoadDimStyle reads a DIMSTYLE record from its tags.  The argument
// holds all tags between the introducing "0 DIMSTYLE" tag and the
// next tag with group code 0.
func LoadDimStyle(tags []dxf.Tag, doc Document) (*DimStyle, error) {
	s := NewDimStyle("", doc)
	seenFlags := false
	for _, tag := range tags {
		switch tag.Code {
		case 0:
			return nil, dxf.Error("unexpected entity inside DIMSTYLE record")
		case 100, 102:
			// subclass markers and application groups carry no data
			continue
		case 105:
			h, err := tag.Handle()
			if err != nil {
				return nil, err
			}
			s.Handle = h
		case 330:
			h, err := tag.Handle()
			if err != nil {
				return nil, err
			}
			s.Owner = h
		case 70:
			// The code is used twice: the first occurrence is the
			// flags field, any later one is dimtfillclr.
			n, err := tag.Int()
			if err != nil {
				return nil, err
			}
			if !seenFlags {
				s.values["flags"] = n
				seenFlags = true
			} else {
				s.values["dimtfillclr"] = n
			}
		default:
			f := dimCodeToField[tag.Code]
			if f == nil {
				s.log().Debug("ignoring unknown DIMSTYLE group",
					"code", tag.Code, "value", tag.Value)
				continue
			}
			if f.get != nil {
				// an arrow block name stored directly, R12 style
				s.values[f.Name] = tag.Value
				continue
			}
			switch f.Kind() {
			case dxf.KindFloat:
				x, err := tag.Float()
				if err != nil {
					return nil, err
				}
				s.values[f.Name] = x
			case dxf.KindInt:
				n, err := tag.Int()
				if err != nil {
					return nil, err
				}
				s.values[f.Name] = n
			case dxf.KindHandle:
				h, err := tag.Handle()
				if err != nil {
					return nil, err
				}
				s.values[f.Name] = h
			default:
				s.values[f.Name] = tag.Value
			}
		}
	}
	return s, nil
}

// CopyToHeader copies all set fields to the document's $DIM... header
// variables, making this style the default for newly created
// dimensions.  Handle-valued fields are translated to the name form.
func (s *DimStyle) CopyToHeader(h Header) {
	if err := h.SetVar("$DIMSTYLE", s.Name()); err != nil {
		s.log().Debug("cannot set header variable", "name", "$DIMSTYLE")
	}
	names := maps.Keys(s.values)
	slices.Sort(names)
	for _, name := range names {
		if !strings.HasPrefix(name, "dim") {
			continue
		}
		value := s.values[name]
		varName := name
		if virtual, ok := strings.CutSuffix(name, "_handle"); ok {
			f := DimStyleSchema.Lookup(virtual)
			if f == nil || f.get == nil {
				continue
			}
			v, err := f.get(s)
			if err != nil {
				continue
			}
			varName = virtual
			value = v
		}
		err := h.SetVar("$"+strings.ToUpper(varName), value)
		if err != nil {
			s.log().Debug("cannot set header variable",
				"name", "$"+strings.ToUpper(varName))
		}
	}
}

// Dump writes all set dimension fields to w, one per line, for
// debugging.
func (s *DimStyle) Dump(w io.Writer) {
	names := maps.Keys(s.values)
	slices.Sort(names)
	for _, name := range names {
		if !strings.HasPrefix(name, "dim") {
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", name, s.values[name])
	}
}
