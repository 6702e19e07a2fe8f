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

// A Handle identifies a table record, block or entity within a document.
// Handles are stored in DXF files as hexadecimal strings.  The zero
// handle marks an unset reference.
type Handle uint64

// ParseHandle parses the hexadecimal wire form of a handle.
func ParseHandle(s string) (Handle, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, Error("invalid handle " + strconv.Quote(s))
	}
	return Handle(n), nil
}

// String returns the wire form of h, uppercase hexadecimal without
// leading zeros.
func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}
