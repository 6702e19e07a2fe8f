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
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/arrows"
)

// Per-entity style overrides are stored in the extended data of the
// DIMENSION entity, as a list of (group code, value) pairs below the
// "DSTYLE" marker of the "ACAD" application:
//
//	1001 ACAD
//	1000 DSTYLE
//	1002 {
//	1070 <group code>
//	<value tag>
//	...
//	1002 }
//
// The value tag uses code 1040 for floats, 1070 for integers, 1005
// for handles and 1000 for strings.

// EncodeOverride converts a style override map into the extended data
// tags stored on a DIMENSION entity.  The map is keyed by field name;
// virtual fields are translated to their handle form using the
// document.  The entries are sorted by field name, so the output is
// deterministic.
func EncodeOverride(override map[string]any, doc Document) ([]dxf.Tag, error) {
	if len(override) == 0 {
		return nil, nil
	}

	// Applying the overrides to a scratch record validates the names
	// and values and resolves virtual fields into handles.
	scratch := NewDimStyle("", doc)
	var zeroHandles []string
	names := maps.Keys(override)
	slices.Sort(names)
	for _, name := range names {
		f := DimStyleSchema.Lookup(name)
		if f == nil {
			return nil, &dxf.AttributeError{Record: "DIMSTYLE", Attr: name}
		}
		if err := scratch.Set(name, override[name]); err != nil {
			return nil, err
		}
		if f.get != nil && !scratch.Has(name) {
			// An explicit closed filled arrowhead clears the backing
			// field; persist it as a zero handle.
			handleName := name + "_handle"
			if DimStyleSchema.Lookup(handleName) != nil {
				zeroHandles = append(zeroHandles, handleName)
			}
		}
	}

	tags := []dxf.Tag{
		{Code: 1001, Value: "ACAD"},
		{Code: 1000, Value: "DSTYLE"},
		{Code: 1002, Value: "{"},
	}
	stored := maps.Keys(scratch.values)
	slices.Sort(stored)
	for _, name := range stored {
		if !strings.HasPrefix(name, "dim") {
			continue
		}
		f := DimStyleSchema.Lookup(name)
		tags = append(tags,
			dxf.Tag{Code: 1070, Value: strconv.Itoa(f.Code)},
			overrideValueTag(scratch.values[name]))
	}
	for _, name := range zeroHandles {
		f := DimStyleSchema.Lookup(name)
		tags = append(tags,
			dxf.Tag{Code: 1070, Value: strconv.Itoa(f.Code)},
			dxf.Tag{Code: 1005, Value: "0"})
	}
	tags = append(tags, dxf.Tag{Code: 1002, Value: "}"})
	return tags, nil
}

// overrideValueTag encodes a stored field value, choosing the
// extended data group code by the value's type.
func overrideValueTag(v any) dxf.Tag {
	switch v := v.(type) {
	case float64:
		return dxf.Tag{Code: 1040, Value: dxf.FormatFloat(v)}
	case int:
		return dxf.Tag{Code: 1070, Value: strconv.Itoa(v)}
	case dxf.Handle:
		return dxf.Tag{Code: 1005, Value: v.String()}
	case string:
		return dxf.Tag{Code: 1000, Value: v}
	default:
		return dxf.Tag{Code: 1000, Value: fmt.Sprint(v)}
	}
}

// DecodeOverride extracts the style override map from the extended
// data tags of a DIMENSION entity.  Handle-valued fields are
// translated back to the name form, so that the returned map uses the
// same keys as the input of [EncodeOverride].  Tags belonging to
// other applications are ignored.
func DecodeOverride(tags []dxf.Tag, doc Document) (map[string]any, error) {
	i := 0
	for i < len(tags) {
		if tags[i].Code == 1001 && tags[i].Value == "ACAD" {
			break
		}
		i++
	}

	override := make(map[string]any)
	scratch := NewDimStyle("", doc)
	for i < len(tags) {
		t := tags[i]
		if t.Code == 1001 && t.Value != "ACAD" {
			break
		}
		if t.Code != 1000 || t.Value != "DSTYLE" ||
			i+1 >= len(tags) || tags[i+1].Code != 1002 {
			i++
			continue
		}

		i += 2
		for i < len(tags) && tags[i].Code != 1002 {
			if tags[i].Code != 1070 || i+1 >= len(tags) {
				return nil, dxf.Error("malformed DSTYLE override data")
			}
			code, err := tags[i].Int()
			if err != nil {
				return nil, err
			}
			name, value, err := decodeOverrideEntry(code, tags[i+1], scratch)
			if err != nil {
				return nil, err
			}
			if name != "" {
				override[name] = value
			}
			i += 2
		}
		return override, nil
	}
	return override, nil
}

// decodeOverrideEntry decodes one (group code, value) pair.  An empty
// name marks entries to be skipped.
func decodeOverrideEntry(code int, t dxf.Tag, scratch *DimStyle) (string, any, error) {
	var name string
	if code == 70 {
		// Group code 70 is ambiguous in DIMSTYLE records.  As an
		// override only dimtfillclr makes sense.
		name = "dimtfillclr"
	} else {
		f := dimCodeToField[code]
		if f == nil {
			slog.Default().Debug("ignoring unknown DSTYLE override group",
				"code", code)
			return "", nil, nil
		}
		name = f.Name
	}
	f := DimStyleSchema.Lookup(name)

	var value any
	var err error
	switch t.Code {
	case 1040:
		value, err = t.Float()
	case 1070:
		value, err = t.Int()
	case 1005:
		value, err = t.Handle()
	case 1000:
		value = t.Value
	default:
		err = dxf.Error("malformed DSTYLE override data")
	}
	if err != nil {
		return "", nil, err
	}

	if f.get != nil {
		// an arrow block name stored directly, R12 style
		s, ok := value.(string)
		if !ok {
			return "", nil, dxf.Error("malformed DSTYLE override data")
		}
		return name, arrows.Name(s), nil
	}
	if h, ok := value.(dxf.Handle); ok {
		if virtual, ok := strings.CutSuffix(name, "_handle"); ok {
			vf := DimStyleSchema.Lookup(virtual)
			if vf != nil && vf.get != nil {
				scratch.values[name] = h
				v, err := vf.get(scratch)
				if err != nil {
					return "", nil, err
				}
				return virtual, v, nil
			}
		}
	}
	return name, value, nil
}
