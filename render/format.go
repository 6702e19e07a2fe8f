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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/optional"
)

// TextOptions controls the formatting of measurement text.
type TextOptions struct {
	// Round snaps the measurement to the nearest multiple of the
	// given value.  A value of zero rounds to whole numbers.
	Round optional.Float

	// Decimals is the number of decimal places.  If unset, the text
	// shows six decimal places with trailing zeros removed.
	Decimals optional.Int

	// SuppressLeading removes a zero digit before the decimal
	// separator.
	SuppressLeading bool

	// SuppressTrailing removes trailing zero digits after the decimal
	// separator.
	SuppressTrailing bool

	// Separator replaces the decimal point.  The zero value stands
	// for '.'.
	Separator rune

	// Template is the dimension text template.  The first "<>" in the
	// template is replaced by the measurement text.
	Template string

	// RaiseFractions, if non-nil, post-processes the formatted
	// number, e.g. to turn decimals into stacked fractions.
	RaiseFractions func(string) string
}

// FormatText converts a measurement value into dimension text.
//
// Ties in the rounding step are resolved away from zero.
func FormatText(value float64, o TextOptions) (string, error) {
	if r, ok := o.Round.Get(); ok {
		if r == 0 {
			value = math.Round(value)
		} else {
			value = math.Round(value/r) * r
		}
	}

	var text string
	suppressTrailing := o.SuppressTrailing
	if d, ok := o.Decimals.Get(); ok {
		text = strconv.FormatFloat(value, 'f', d, 64)
	} else {
		text = strconv.FormatFloat(value, 'f', 6, 64)
		suppressTrailing = true
	}
	text = suppressZeros(text, o.SuppressLeading, suppressTrailing)

	if o.RaiseFractions != nil {
		text = o.RaiseFractions(text)
	}
	if o.Separator != 0 && o.Separator != '.' {
		text = strings.ReplaceAll(text, ".", string(o.Separator))
	}

	if o.Template != "" {
		if !strings.Contains(o.Template, "<>") {
			return "", dxf.Error("Invalid dimpost string: " + strconv.Quote(o.Template))
		}
		text = strings.Replace(o.Template, "<>", text, 1)
	}
	return text, nil
}

// suppressZeros removes a leading zero digit and/or trailing zero
// digits from a formatted number.  The sign is preserved.
func suppressZeros(s string, leading, trailing bool) string {
	if !leading && !trailing {
		return s
	}

	if x, err := strconv.ParseFloat(s, 64); err == nil && x == 0 {
		return "0"
	}

	var sign string
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	if leading {
		s = strings.TrimLeft(s, "0")
	}
	if trailing && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return sign + s
}
