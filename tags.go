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

package dxf

import (
	"strconv"
	"strings"
)

// A Tag is a single group code/value pair, the atomic unit of a DXF
// file.  The value is kept in its string wire form; the typed accessors
// interpret it.
type Tag struct {
	Code  int
	Value string
}

// Int returns the tag value as an integer.
func (t Tag) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, Error("tag " + strconv.Itoa(t.Code) + ": invalid integer " + strconv.Quote(t.Value))
	}
	return n, nil
}

// Float returns the tag value as a floating point number.
func (t Tag) Float() (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, Error("tag " + strconv.Itoa(t.Code) + ": invalid number " + strconv.Quote(t.Value))
	}
	return x, nil
}

// Handle returns the tag value as a handle.
func (t Tag) Handle() (Handle, error) {
	return ParseHandle(t.Value)
}

// Kind describes the value type of a group code.
type Kind int

// The value type classes of DXF group codes.
const (
	KindString Kind = iota
	KindFloat
	KindInt
	KindHandle
	KindBinary
)

// GroupKind returns the value type for a group code.  The ranges follow
// the "Group Code Value Types" table of the DXF reference.
func GroupKind(code int) Kind {
	switch {
	case code >= 10 && code < 60:
		return KindFloat
	case code >= 60 && code < 80:
		return KindInt
	case code >= 90 && code < 100:
		return KindInt
	case code == 105:
		return KindHandle
	case code >= 110 && code < 150:
		return KindFloat
	case code >= 160 && code < 180:
		return KindInt
	case code >= 210 && code < 240:
		return KindFloat
	case code >= 270 && code < 300:
		return KindInt
	case code >= 310 && code < 320:
		return KindBinary
	case code >= 320 && code < 370:
		return KindHandle
	case code >= 370 && code < 390:
		return KindInt
	case code >= 390 && code < 400:
		return KindHandle
	case code >= 400 && code < 410:
		return KindInt
	case code >= 420 && code < 430:
		return KindInt
	case code >= 440 && code < 460:
		return KindInt
	case code >= 460 && code < 470:
		return KindFloat
	case code >= 480 && code < 482:
		return KindHandle
	case code >= 1010 && code < 1060:
		return KindFloat
	case code >= 1060 && code < 1072:
		return KindInt
	}
	return KindString
}
