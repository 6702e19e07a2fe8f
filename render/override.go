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

package render

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/entity"
	"seehuhn.de/go/dxf/optional"
	"seehuhn.de/go/dxf/table"
)

// StyleOverride resolves dimension style attributes, layering
// per-entity overrides over a base style.
//
// The resolver caches results.  Callers must create a fresh resolver
// whenever the base style or the override map changes.
type StyleOverride struct {
	style    *table.DimStyle
	override map[string]any
	cache    map[string]any
}

// NewStyleOverride creates a resolver for the given base style.  The
// override map may be nil.
func NewStyleOverride(style *table.DimStyle, override map[string]any) *StyleOverride {
	return &StyleOverride{
		style:    style,
		override: override,
		cache:    make(map[string]any),
	}
}

// Get returns the effective value of a style attribute.  Values from
// the override map take precedence over the base style.  If the
// attribute is not set in either place, or if it requires a newer DXF
// version than the style's document provides, def is returned.
//
// Unknown attribute names return an error, regardless of the document
// version.
func (o *StyleOverride) Get(attr string, def any) (any, error) {
	if v, ok := o.cache[attr]; ok {
		return v, nil
	}
	if table.DimStyleSchema.Lookup(attr) == nil {
		return nil, &dxf.AttributeError{Record: "DIMSTYLE", Attr: attr}
	}

	value, ok := o.override[attr]
	if !ok {
		v, err := o.style.GetDefault(attr, def)
		if err != nil {
			var versionErr *dxf.VersionError
			if !errors.As(err, &versionErr) {
				return nil, err
			}
			v = def
		}
		value = v
	}
	o.cache[attr] = value
	return value, nil
}

// Set adds an override for a style attribute.
func (o *StyleOverride) Set(attr string, value any) error {
	if err := table.DimStyleSchema.Validate(attr); err != nil {
		return err
	}
	if o.override == nil {
		o.override = make(map[string]any)
	}
	o.override[attr] = value
	delete(o.cache, attr)
	return nil
}

// Float returns the effective value of a float valued attribute.
func (o *StyleOverride) Float(attr string, def float64) (float64, error) {
	v, err := o.Get(attr, def)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, typeError(attr, v)
}

// Int returns the effective value of an integer valued attribute.
func (o *StyleOverride) Int(attr string, def int) (int, error) {
	v, err := o.Get(attr, def)
	if err != nil {
		return 0, err
	}
	x, ok := v.(int)
	if !ok {
		return 0, typeError(attr, v)
	}
	return x, nil
}

// Str returns the effective value of a string valued attribute.
func (o *StyleOverride) Str(attr string, def string) (string, error) {
	v, err := o.Get(attr, def)
	if err != nil {
		return "", err
	}
	x, ok := v.(string)
	if !ok {
		return "", typeError(attr, v)
	}
	return x, nil
}

// optionalFloat reads a float valued attribute which may be unset.
func (o *StyleOverride) optionalFloat(attr string) (optional.Float, error) {
	v, err := o.Get(attr, nil)
	if err != nil || v == nil {
		return optional.Float{}, err
	}
	switch x := v.(type) {
	case float64:
		return optional.NewFloat(x), nil
	case int:
		return optional.NewFloat(float64(x)), nil
	}
	return optional.Float{}, typeError(attr, v)
}

// optionalInt reads an integer valued attribute which may be unset.
func (o *StyleOverride) optionalInt(attr string) (optional.Int, error) {
	v, err := o.Get(attr, nil)
	if err != nil || v == nil {
		return optional.Int{}, err
	}
	x, ok := v.(int)
	if !ok {
		return optional.Int{}, typeError(attr, v)
	}
	return optional.NewInt(x), nil
}

func typeError(attr string, v any) error {
	return dxf.Error(fmt.Sprintf("DIMSTYLE attribute %q: invalid value type %T", attr, v))
}

// CommitTo validates the override map and attaches it to dim.  On
// file output the overrides are stored in the entity's XDATA.
func (o *StyleOverride) CommitTo(dim *entity.Dimension) error {
	names := maps.Keys(o.override)
	slices.Sort(names)
	for _, attr := range names {
		if err := table.DimStyleSchema.Validate(attr); err != nil {
			return err
		}
	}
	if len(o.override) == 0 {
		dim.Override = nil
		return nil
	}
	dim.Override = maps.Clone(o.override)
	return nil
}
