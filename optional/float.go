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

package optional

// Float represents an optional float64 value.
type Float struct {
	isSet bool
	val   float64
}

// NewFloat creates a new Float with the given value.
func NewFloat(v float64) Float {
	var f Float
	f.Set(v)
	return f
}

// Get returns the value and whether it is set.
func (f Float) Get() (float64, bool) {
	return f.val, f.isSet
}

// Set sets the value.
func (f *Float) Set(v float64) {
	f.isSet = true
	f.val = v
}

// Clear clears the value.
func (f *Float) Clear() {
	f.isSet = false
	f.val = 0
}

// Equal compares two Floats for equality.
func (f Float) Equal(other Float) bool {
	return f.isSet == other.isSet && f.val == other.val
}
